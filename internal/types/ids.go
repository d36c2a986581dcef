package types

import "github.com/google/uuid"

// RunID represents a UUIDv7 planner run identifier.
// String alias enables type safety while keeping plain TEXT storage.
// UUIDv7 time-ordering keeps history listings naturally sorted by creation.
type RunID string

// NewRunID generates a UUIDv7 run identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRunID() RunID {
	return RunID(uuid.Must(uuid.NewV7()).String())
}

// ParseRunID validates and converts a string to RunID.
// Rejects malformed UUIDs to prevent invalid IDs from reaching storage queries.
func ParseRunID(s string) (RunID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return RunID(s), nil
}
