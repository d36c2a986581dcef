// Package catalog holds the validated connection alphabet and segment types
// for one planner run.
//
// A Catalog is built once from validated input and never mutated. The planner
// receives it by pointer and only reads through the accessors below.
package catalog

import (
	"fmt"

	"github.com/solatis/railplanner/internal/types"
)

// Alphabet is an ordered set of distinct connection symbols.
// Order only defines cost table column indices.
type Alphabet struct {
	symbols []types.Symbol
	index   [types.MaxConnections]int16 // symbol -> column, -1 when absent
}

// NewAlphabet builds an alphabet from symbols in the given order.
func NewAlphabet(symbols []types.Symbol) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, types.ErrEmptyAlphabet
	}

	a := &Alphabet{symbols: make([]types.Symbol, len(symbols))}
	for i := range a.index {
		a.index[i] = -1
	}
	for i, s := range symbols {
		if a.index[s] >= 0 {
			return nil, fmt.Errorf("%w: %q", types.ErrDuplicateConnection, s.String())
		}
		a.index[s] = int16(i)
		a.symbols[i] = s
	}
	return a, nil
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns a copy of the symbols in column order.
func (a *Alphabet) Symbols() []types.Symbol {
	out := make([]types.Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// IndexOf returns the column index of s.
func (a *Alphabet) IndexOf(s types.Symbol) (int, bool) {
	i := a.index[s]
	return int(i), i >= 0
}

// Contains reports whether s belongs to the alphabet.
func (a *Alphabet) Contains(s types.Symbol) bool {
	return a.index[s] >= 0
}

// String renders the alphabet the way the input file declares it ("A,B,C").
func (a *Alphabet) String() string {
	buf := make([]byte, 0, 2*len(a.symbols))
	for i, s := range a.symbols {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, byte(s))
	}
	return string(buf)
}

// Catalog pairs an alphabet with the segment types drawn from it.
type Catalog struct {
	alphabet *Alphabet
	segments []types.Segment
}

// New validates segments against alphabet and returns an immutable catalog.
// Every segment must have positive length and price and both endpoints in
// the alphabet. The segment slice is copied.
func New(alphabet *Alphabet, segments []types.Segment) (*Catalog, error) {
	if alphabet == nil || alphabet.Size() == 0 {
		return nil, types.ErrEmptyAlphabet
	}

	owned := make([]types.Segment, len(segments))
	for i, seg := range segments {
		if err := ValidateSegment(alphabet, seg); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		owned[i] = seg
	}

	return &Catalog{alphabet: alphabet, segments: owned}, nil
}

// ValidateSegment checks a single segment against alphabet.
func ValidateSegment(alphabet *Alphabet, seg types.Segment) error {
	if seg.Length <= 0 || seg.Price <= 0 {
		return types.ErrNonPositiveValue
	}
	if !alphabet.Contains(seg.Left) {
		return fmt.Errorf("%w: %q", types.ErrUnknownConnection, seg.Left.String())
	}
	if !alphabet.Contains(seg.Right) {
		return fmt.Errorf("%w: %q", types.ErrUnknownConnection, seg.Right.String())
	}
	return nil
}

// Alphabet returns the connection alphabet.
func (c *Catalog) Alphabet() *Alphabet {
	return c.alphabet
}

// AlphabetSize returns N, the number of connection types.
func (c *Catalog) AlphabetSize() int {
	return c.alphabet.Size()
}

// Segments returns a copy of the segment types in input order.
func (c *Catalog) Segments() []types.Segment {
	out := make([]types.Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Len returns the number of segment types.
func (c *Catalog) Len() int {
	return len(c.segments)
}

// Each calls fn for every segment in input order without copying the list.
func (c *Catalog) Each(fn func(i int, seg types.Segment)) {
	for i, seg := range c.segments {
		fn(i, seg)
	}
}
