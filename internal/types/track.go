// internal/types/track.go
package types

/*
 * Domain types for track planning.
 *
 * Provides Symbol and Segment, the values produced by the input layer,
 * collected by internal/catalog and consumed by internal/planner. These
 * types are wire-format agnostic: file parsing and gRPC decoding both
 * convert into them at the boundary.
 *
 * Direction convention: a chain is read left to right. Segment B may follow
 * segment A only when A.Right == B.Left. Swapping the convention yields a
 * different but structurally valid cost table, so every consumer must use
 * this one.
 */

// Symbol is a single-character connection type label (e.g. 'A').
type Symbol byte

// String renders the symbol as its one-character label.
func (s Symbol) String() string {
	return string([]byte{byte(s)})
}

// Segment is a reusable track piece.
// Length and Price are strictly positive once a segment reaches a catalog.
type Segment struct {
	Length int    // track units covered by one instance
	Left   Symbol // connection on the left end
	Right  Symbol // connection on the right end
	Price  int64  // cost of one instance
}

// Follows reports whether s may be appended directly after prev.
func (s Segment) Follows(prev Segment) bool {
	return prev.Right == s.Left
}
