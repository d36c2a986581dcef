package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/solatis/railplanner/internal/planner"
	"github.com/solatis/railplanner/internal/types"
)

// Messages of the planner output file.
const (
	MsgUsage        = "Usage: railplanner plan <InputFile>"
	MsgFileNotFound = "File doesn't exists."
	MsgEmptyFile    = "File is empty."
	MsgInvalidInput = "Invalid input in line: "
	MsgResult       = "The minimal price is: "
)

// DefaultOutputFile is where results land when no configuration overrides it.
const DefaultOutputFile = "railway_planner_output.txt"

// FormatResult renders r as the one-line result message.
// Unreachable targets print -1.
func FormatResult(r planner.Result) string {
	return fmt.Sprintf("%s%d", MsgResult, r.Legacy())
}

// FormatError renders err as the one-line diagnostic of the output file.
func FormatError(err error) string {
	var le *LineError
	switch {
	case errors.As(err, &le):
		return fmt.Sprintf("%s%d.", MsgInvalidInput, le.Line)
	case errors.Is(err, types.ErrFileNotFound):
		return MsgFileNotFound
	case errors.Is(err, types.ErrEmptyInput):
		return MsgEmptyFile
	default:
		return err.Error()
	}
}

// Sink receives the outcome of one planner run.
type Sink interface {
	WriteResult(r planner.Result) error
	WriteMessage(msg string) error
}

// WriteError renders err through s.
func WriteError(s Sink, err error) error {
	return s.WriteMessage(FormatError(err))
}

// FileSink replaces the contents of Path with each message.
type FileSink struct {
	Path string
}

// NewFileSink returns a sink for path, or the default output file when empty.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultOutputFile
	}
	return &FileSink{Path: path}
}

// WriteResult implements Sink.
func (s *FileSink) WriteResult(r planner.Result) error {
	return s.WriteMessage(FormatResult(r))
}

// WriteMessage implements Sink.
func (s *FileSink) WriteMessage(msg string) error {
	if err := os.WriteFile(s.Path, []byte(msg), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// WriterSink writes newline-terminated messages to W.
type WriterSink struct {
	W io.Writer
}

// WriteResult implements Sink.
func (s WriterSink) WriteResult(r planner.Result) error {
	return s.WriteMessage(FormatResult(r))
}

// WriteMessage implements Sink.
func (s WriterSink) WriteMessage(msg string) error {
	_, err := fmt.Fprintln(s.W, msg)
	return err
}

// MultiSink fans each message out to every sink, stopping at the first error.
type MultiSink []Sink

// WriteResult implements Sink.
func (m MultiSink) WriteResult(r planner.Result) error {
	return m.WriteMessage(FormatResult(r))
}

// WriteMessage implements Sink.
func (m MultiSink) WriteMessage(msg string) error {
	for _, s := range m {
		if err := s.WriteMessage(msg); err != nil {
			return err
		}
	}
	return nil
}
