// internal/planner/compile.go
package planner

import (
	"sort"

	"github.com/solatis/railplanner/internal/catalog"
	"github.com/solatis/railplanner/internal/types"
)

/*
 * Segment compilation.
 *
 * Resolves each catalog segment to column indices once per run so the fill
 * loop compares ints instead of scanning the alphabet for every cell.
 *
 * Compilation workflow:
 *   1. Drop segments longer than the target (they never match any row)
 *   2. Resolve left/right symbols to alphabet column indices
 *   3. Collapse duplicates sharing (length, left, right) to the cheapest price
 *   4. Order by length, then left, then right (stable for determinism)
 *
 * Step 3 does not change results: a more expensive duplicate can never win a
 * min over candidates that also contains its cheaper twin.
 */

// compiledSegment is a segment with endpoints resolved to table columns.
type compiledSegment struct {
	length int
	left   int
	right  int
	price  int64
}

type segmentKey struct {
	length      int
	left, right int
}

// compile prepares the segments of c for a fill up to target rows.
func compile(c *catalog.Catalog, target int) []compiledSegment {
	alphabet := c.Alphabet()
	cheapest := make(map[segmentKey]int64, c.Len())

	c.Each(func(_ int, seg types.Segment) {
		if seg.Length > target {
			return
		}
		left, okL := alphabet.IndexOf(seg.Left)
		right, okR := alphabet.IndexOf(seg.Right)
		if !okL || !okR {
			// catalog.New guarantees membership
			panic("planner: segment endpoint outside alphabet")
		}
		key := segmentKey{length: seg.Length, left: left, right: right}
		if p, ok := cheapest[key]; !ok || seg.Price < p {
			cheapest[key] = seg.Price
		}
	})

	out := make([]compiledSegment, 0, len(cheapest))
	for k, p := range cheapest {
		out = append(out, compiledSegment{length: k.length, left: k.left, right: k.right, price: p})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.length != b.length {
			return a.length < b.length
		}
		if a.left != b.left {
			return a.left < b.left
		}
		return a.right < b.right
	})
	return out
}
