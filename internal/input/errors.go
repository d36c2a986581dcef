package input

import (
	"errors"
	"fmt"

	"github.com/solatis/railplanner/internal/types"
)

// LineError reports which input line failed validation.
// Line numbers start at 1.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(line int, err error) error {
	return &LineError{Line: line, Err: err}
}

// IsInputError reports whether err comes from malformed input rather than
// an I/O or internal failure.
func IsInputError(err error) bool {
	var le *LineError
	return errors.As(err, &le) ||
		errors.Is(err, types.ErrEmptyInput) ||
		errors.Is(err, types.ErrFileNotFound) ||
		errors.Is(err, types.ErrInvalidTargetLength) ||
		errors.Is(err, types.ErrInvalidConnection) ||
		errors.Is(err, types.ErrDuplicateConnection) ||
		errors.Is(err, types.ErrEmptyAlphabet) ||
		errors.Is(err, types.ErrUnknownConnection) ||
		errors.Is(err, types.ErrNonPositiveValue) ||
		errors.Is(err, types.ErrTooManySegments) ||
		errors.Is(err, types.ErrTableTooLarge) ||
		errors.Is(err, types.ErrInvalidSegment)
}
