// Package input reads the railway planner file format and renders results.
//
// File layout, one record per line:
//
//	<target length>          non-negative integer
//	<connection count>       positive integer
//	<c1>,<c2>,...            exactly count single-character labels
//	<left>,<right>,<len>,<price>   one line per segment type
//
// Every validation failure is reported as a *LineError carrying the 1-based
// line number of the offending line.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/solatis/railplanner/internal/catalog"
	"github.com/solatis/railplanner/internal/planner"
	"github.com/solatis/railplanner/internal/types"
)

const (
	lineTargetLength = 1
	lineConnCount    = 2
	lineConnections  = 3
)

// Limits bounds the size of accepted input.
type Limits struct {
	MaxTargetLength int
	MaxSegments     int
	MaxLineLength   int
	MaxTableCells   int // cost cells one run may allocate, see planner.TableCells
}

// DefaultLimits returns the limits used when no configuration is loaded.
func DefaultLimits() Limits {
	return Limits{
		MaxTargetLength: types.DefaultMaxTargetLength,
		MaxSegments:     types.DefaultMaxSegments,
		MaxLineLength:   types.DefaultMaxLineLength,
		MaxTableCells:   types.DefaultMaxTableCells,
	}
}

// Plan is a fully validated planner request.
type Plan struct {
	TargetLength int
	Catalog      *catalog.Catalog
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, limits Limits) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFileNotFound, err)
	}
	defer f.Close()

	return Parse(f, limits)
}

// Parse reads a planner input from r.
func Parse(r io.Reader, limits Limits) (*Plan, error) {
	scanner := bufio.NewScanner(r)
	// +2 leaves room for a CRLF terminator on a maximum-length line.
	maxToken := limits.MaxLineLength + 2
	scanner.Buffer(make([]byte, 0, min(4096, maxToken)), maxToken)

	var (
		lineNo    int
		target    int
		count     int
		alphabet  *catalog.Alphabet
		segments  []types.Segment
		blankLine int // first blank segment line, 0 if none yet
	)

	for scanner.Scan() {
		lineNo++
		line := string(bytes.TrimRight(scanner.Bytes(), "\r"))
		if len(line) > limits.MaxLineLength {
			return nil, lineErr(lineNo, types.ErrLineTooLong)
		}

		var err error
		switch lineNo {
		case lineTargetLength:
			target, err = parseTargetLength(line, limits.MaxTargetLength)
		case lineConnCount:
			count, err = parseConnectionCount(line)
		case lineConnections:
			alphabet, err = parseConnections(line, count)
		default:
			if strings.TrimSpace(line) == "" {
				if blankLine == 0 {
					blankLine = lineNo
				}
				continue
			}
			if blankLine != 0 {
				// Blank lines are only tolerated at the end of the file.
				return nil, lineErr(blankLine, types.ErrInvalidSegment)
			}
			if len(segments) >= limits.MaxSegments {
				return nil, lineErr(lineNo, types.ErrTooManySegments)
			}
			var seg types.Segment
			seg, err = parseSegment(line, alphabet)
			segments = append(segments, seg)
		}
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, lineErr(lineNo+1, types.ErrLineTooLong)
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if lineNo == 0 {
		return nil, types.ErrEmptyInput
	}
	switch {
	case lineNo < lineConnCount:
		return nil, lineErr(lineConnCount, types.ErrInvalidConnectionCount)
	case lineNo < lineConnections:
		return nil, lineErr(lineConnections, types.ErrInvalidConnection)
	}

	c, err := catalog.New(alphabet, segments)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	// The target decides which segments are usable, so an oversized table
	// is reported against it.
	if err := checkTableSize(target, c, limits); err != nil {
		return nil, lineErr(lineTargetLength, err)
	}
	return &Plan{TargetLength: target, Catalog: c}, nil
}

func checkTableSize(target int, c *catalog.Catalog, limits Limits) error {
	if cells := planner.TableCells(target, c); cells > limits.MaxTableCells {
		return fmt.Errorf("%w: %d cells > %d", types.ErrTableTooLarge, cells, limits.MaxTableCells)
	}
	return nil
}

func parseTargetLength(line string, max int) (int, error) {
	n, err := parseDigits(line)
	if err != nil || n > max {
		return 0, types.ErrInvalidTargetLength
	}
	return n, nil
}

func parseConnectionCount(line string) (int, error) {
	n, err := parseDigits(line)
	if err != nil || n <= 0 || n > types.MaxConnections {
		return 0, types.ErrInvalidConnectionCount
	}
	return n, nil
}

func parseConnections(line string, count int) (*catalog.Alphabet, error) {
	labels := strings.Split(line, ",")
	if len(labels) != count {
		return nil, types.ErrInvalidConnection
	}
	symbols := make([]types.Symbol, count)
	for i, label := range labels {
		s, err := parseSymbol(label)
		if err != nil {
			return nil, types.ErrInvalidConnection
		}
		symbols[i] = s
	}
	return catalog.NewAlphabet(symbols)
}

func parseSegment(line string, alphabet *catalog.Alphabet) (types.Segment, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return types.Segment{}, types.ErrInvalidSegment
	}

	left, err := parseSymbol(fields[0])
	if err != nil {
		return types.Segment{}, err
	}
	right, err := parseSymbol(fields[1])
	if err != nil {
		return types.Segment{}, err
	}
	length, err := parseDigits(fields[2])
	if err != nil {
		return types.Segment{}, types.ErrInvalidSegment
	}
	price, err := parseDigits64(fields[3])
	if err != nil {
		return types.Segment{}, types.ErrInvalidSegment
	}

	seg := types.Segment{Length: length, Left: left, Right: right, Price: price}
	if err := catalog.ValidateSegment(alphabet, seg); err != nil {
		return types.Segment{}, err
	}
	return seg, nil
}

// parseSymbol accepts exactly one non-space byte.
func parseSymbol(field string) (types.Symbol, error) {
	if len(field) != 1 || field[0] == ' ' || field[0] == '\t' {
		return 0, types.ErrInvalidSegment
	}
	return types.Symbol(field[0]), nil
}

// parseDigits accepts ASCII digits only: no sign, no spaces, no exponent.
func parseDigits(s string) (int, error) {
	if !allDigits(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

func parseDigits64(s string) (int64, error) {
	if !allDigits(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
