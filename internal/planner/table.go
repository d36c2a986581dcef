package planner

import (
	"github.com/solatis/railplanner/internal/catalog"
	"github.com/solatis/railplanner/internal/types"
)

// costTable holds the cheapest prices of the most recent depth rows of the
// (target+1) x N grid, stored row-major in one contiguous ring buffer. Cell
// (i, j) is the cheapest chain of total length i whose rightmost connection
// is column j; row i lives in slot i % depth.
//
// Row i only reads rows i-maxLen .. i-1, so depth = maxLen+1 slots suffice
// and the slot of row i held row i-depth, which nothing reads any more.
type costTable struct {
	depth int
	cols  int
	cells []Result
}

// newCostTable allocates depth ring slots with row 0 set to zero cost:
// the empty prefix ends "at" every connection for free.
func newCostTable(depth, cols int) *costTable {
	t := &costTable{
		depth: depth,
		cols:  cols,
		cells: make([]Result, depth*cols),
	}
	for j := 0; j < cols; j++ {
		t.cells[j] = Reachable(0)
	}
	return t
}

func (t *costTable) at(i, j int) Result {
	return t.cells[(i%t.depth)*t.cols+j]
}

func (t *costTable) set(i, j int, r Result) {
	t.cells[(i%t.depth)*t.cols+j] = r
}

// row returns the cells of row i; the slice aliases the table and is only
// valid until row i+depth is reset.
func (t *costTable) row(i int) []Result {
	off := (i % t.depth) * t.cols
	return t.cells[off : off+t.cols]
}

// reset marks every cell of row i unreachable before the row is filled.
func (t *costTable) reset(i int) {
	clear(t.row(i))
}

// TableCells returns the number of cost cells MinimumCost allocates for
// target over c: (longest usable segment + 1) x connections, or 0 when no
// table is needed.
func TableCells(target int, c *catalog.Catalog) int {
	if target <= 0 || c == nil {
		return 0
	}
	return tableDepth(target, c) * c.AlphabetSize()
}

// tableDepth is one more than the longest segment not exceeding target,
// or 0 when no segment fits.
func tableDepth(target int, c *catalog.Catalog) int {
	longest := 0
	c.Each(func(_ int, seg types.Segment) {
		if seg.Length <= target && seg.Length > longest {
			longest = seg.Length
		}
	})
	if longest == 0 {
		return 0
	}
	return longest + 1
}
