package types

import "errors"

// Sentinel errors for railplanner operations.
var (
	// ErrFileNotFound indicates the input file could not be opened.
	ErrFileNotFound = errors.New("input file does not exist")

	// ErrEmptyInput indicates the input file has no content.
	ErrEmptyInput = errors.New("input file is empty")

	// ErrInvalidTargetLength indicates the target length is not a non-negative integer
	// or exceeds the configured maximum.
	ErrInvalidTargetLength = errors.New("invalid target length")

	// ErrInvalidConnectionCount indicates the connection count is not a positive integer.
	ErrInvalidConnectionCount = errors.New("invalid connection count")

	// ErrInvalidConnection indicates a connection label is not exactly one character,
	// or the number of labels does not match the declared count.
	ErrInvalidConnection = errors.New("invalid connection label")

	// ErrDuplicateConnection indicates the same label appears twice in the alphabet.
	ErrDuplicateConnection = errors.New("duplicate connection label")

	// ErrEmptyAlphabet indicates a catalog was built without connection types.
	ErrEmptyAlphabet = errors.New("connection alphabet is empty")

	// ErrInvalidSegment indicates a segment record does not have the
	// left,right,length,price shape.
	ErrInvalidSegment = errors.New("invalid segment record")

	// ErrUnknownConnection indicates a segment endpoint is not in the alphabet.
	ErrUnknownConnection = errors.New("segment uses unknown connection")

	// ErrNonPositiveValue indicates a segment length or price is zero or negative.
	ErrNonPositiveValue = errors.New("segment length and price must be positive")

	// ErrTooManySegments indicates the input exceeds the configured segment limit.
	ErrTooManySegments = errors.New("too many segment types")

	// ErrTableTooLarge indicates the cost table for a run would exceed the
	// configured cell limit.
	ErrTableTooLarge = errors.New("cost table exceeds configured size")

	// ErrLineTooLong indicates an input line exceeds the configured line length.
	ErrLineTooLong = errors.New("line exceeds maximum length")

	// ErrRunNotFound indicates a run ID has no recorded history entry.
	ErrRunNotFound = errors.New("planner run not found")
)
