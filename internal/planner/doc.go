// Package planner computes the cheapest railway track of an exact length.
//
// Given a catalog of reusable segment types, each with a length, a price and
// a connection type on either end, MinimumCost finds the cheapest ordered
// chain of segments whose lengths sum to the target and whose touching ends
// carry the same connection type:
//
//	a, _ := catalog.NewAlphabet([]types.Symbol{'A', 'B'})
//	c, _ := catalog.New(a, []types.Segment{
//	    {Length: 1, Left: 'A', Right: 'B', Price: 10},
//	    {Length: 1, Left: 'B', Right: 'A', Price: 5},
//	})
//	res := planner.MinimumCost(2, c) // 15
//
// The result is a tagged Result rather than a magic number; Unreachable
// means no chain covers the target exactly.
//
// MinimumCost is pure. Each call allocates its own cost table and keeps no
// state between calls, so concurrent calls on a shared catalog are safe.
// The table holds TableCells(target, c) cells; callers serving untrusted
// input bound it before calling.
package planner
