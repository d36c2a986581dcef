// Package types provides domain models shared across railplanner components.
//
// Zero-dependency design: track.go and errors.go use only the standard
// library so the catalog and planner packages stay import-light. ID
// utilities in ids.go import uuid but are only needed by run history.
package types

// Resource limits applied by the input layer when no configuration overrides them.
const (
	// DefaultMaxTargetLength bounds the number of fill iterations.
	DefaultMaxTargetLength = 1_000_000

	// DefaultMaxTableCells bounds the cost table of one run. The table holds
	// (longest usable segment + 1) x connections cells of 16 bytes each, so
	// the default caps a run at 64 MiB.
	DefaultMaxTableCells = 1 << 22

	// DefaultMaxSegments caps the number of segment type lines per input.
	DefaultMaxSegments = 100_000

	// DefaultMaxLineLength matches the fixed line buffer of the legacy file format.
	DefaultMaxLineLength = 1024

	// MaxConnections is the size of the single-byte symbol space.
	MaxConnections = 256
)
