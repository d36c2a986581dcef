// internal/planner/engine.go
package planner

import (
	"math"

	"github.com/solatis/railplanner/internal/catalog"
)

/*
 * Cheapest-composition engine.
 *
 * Computes the minimum price of a chain of segments whose lengths sum to
 * exactly target and whose adjacent connections match. Segments may repeat.
 *
 * Recurrence, filled by increasing length i = 1..target:
 *
 *   T[0][*] = 0
 *   T[i][j] = min over segments k with k.length <= i and k.right == j of
 *             T[i - k.length][k.left] + k.price
 *
 * Matching contract: the segment appended last contributes its RIGHT
 * connection as the chain's new end, and its LEFT connection must equal the
 * end of the shorter chain it extends (previous.right == next.left).
 *
 * Row 0 being zero in every column makes a segment used alone
 * (k.length == i) a special case of the general recurrence, so no separate
 * first-row branch exists.
 *
 * Complexity: O(target * S) time for S compiled segments, O((M+1) * N)
 * memory for N connections and longest usable segment M: only the last M
 * rows are live, so the table is a ring of M+1 rows. Every transition
 * strictly decreases the remaining length, so self-looping segments
 * terminate without cycle checks.
 */

// MinimumCost returns the cheapest price of a chain of total length target
// built from c, or Unreachable when no chain sums to target exactly.
//
// target must be non-negative and c non-nil; violating either is a caller
// bug and panics.
func MinimumCost(target int, c *catalog.Catalog) Result {
	if target < 0 {
		panic("planner: negative target length")
	}
	if c == nil {
		panic("planner: nil catalog")
	}
	if target == 0 {
		return Reachable(0)
	}

	segs := compile(c, target)
	if len(segs) == 0 {
		return Unreachable()
	}

	// segs is sorted by length, so the last one is the longest
	table := newCostTable(segs[len(segs)-1].length+1, c.AlphabetSize())
	fill(table, target, segs)

	best := Unreachable()
	for _, r := range table.row(target) {
		if r.less(best) {
			best = r
		}
	}
	return best
}

// fill computes rows 1..target. segs must be sorted by ascending length.
func fill(t *costTable, target int, segs []compiledSegment) {
	for i := 1; i <= target; i++ {
		t.reset(i)
		for _, k := range segs {
			if k.length > i {
				break
			}
			prev := t.at(i-k.length, k.left)
			if !prev.reachable {
				continue
			}
			candidate := Reachable(saturatingAdd(prev.price, k.price))
			if candidate.less(t.at(i, k.right)) {
				t.set(i, k.right, candidate)
			}
		}
	}
}

// saturatingAdd adds two non-negative prices, clamping at math.MaxInt64.
func saturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
