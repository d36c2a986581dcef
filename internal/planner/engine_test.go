package planner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solatis/railplanner/internal/catalog"
	"github.com/solatis/railplanner/internal/planner"
	"github.com/solatis/railplanner/internal/types"
)

func newCatalog(t testing.TB, labels string, segs ...types.Segment) *catalog.Catalog {
	t.Helper()
	symbols := make([]types.Symbol, len(labels))
	for i := range labels {
		symbols[i] = types.Symbol(labels[i])
	}
	a, err := catalog.NewAlphabet(symbols)
	require.NoError(t, err)
	c, err := catalog.New(a, segs)
	require.NoError(t, err)
	return c
}

func seg(length int, left, right byte, price int64) types.Segment {
	return types.Segment{Length: length, Left: types.Symbol(left), Right: types.Symbol(right), Price: price}
}

func requirePrice(t *testing.T, want int64, got planner.Result) {
	t.Helper()
	price, ok := got.Price()
	require.True(t, ok, "expected reachable result, got %v", got)
	assert.Equal(t, want, price)
}

func TestMinimumCost_ZeroTarget(t *testing.T) {
	// Zero target is free whatever the catalog holds.
	requirePrice(t, 0, planner.MinimumCost(0, newCatalog(t, "A")))
	requirePrice(t, 0, planner.MinimumCost(0, newCatalog(t, "AB", seg(3, 'A', 'B', 9))))
}

func TestMinimumCost_EmptyCatalog(t *testing.T) {
	res := planner.MinimumCost(4, newCatalog(t, "ABC"))
	assert.False(t, res.IsReachable())
	assert.Equal(t, int64(-1), res.Legacy())
}

func TestMinimumCost_AlternatingConnections(t *testing.T) {
	c := newCatalog(t, "AB",
		seg(1, 'A', 'B', 10),
		seg(1, 'B', 'A', 5),
	)
	requirePrice(t, 15, planner.MinimumCost(2, c))
	requirePrice(t, 5, planner.MinimumCost(1, c))
	// A->B->A->B = 10+5+10, B->A->B->A = 5+10+5
	requirePrice(t, 20, planner.MinimumCost(3, c))
}

func TestMinimumCost_SingleSelfLoop(t *testing.T) {
	c := newCatalog(t, "A", seg(3, 'A', 'A', 7))

	requirePrice(t, 7, planner.MinimumCost(3, c))
	requirePrice(t, 14, planner.MinimumCost(6, c))
	assert.False(t, planner.MinimumCost(4, c).IsReachable())
}

func TestMinimumCost_NoDecomposition(t *testing.T) {
	c := newCatalog(t, "ABC",
		seg(2, 'A', 'B', 1),
		seg(4, 'B', 'C', 1),
		seg(2, 'C', 'A', 1),
	)
	assert.False(t, planner.MinimumCost(5, c).IsReachable(), "only even lengths exist")
}

func TestMinimumCost_DirectionMatters(t *testing.T) {
	// A->B followed by A->B does not connect: the chain end is B, the next left is A.
	c := newCatalog(t, "AB", seg(1, 'A', 'B', 1))
	requirePrice(t, 1, planner.MinimumCost(1, c))
	assert.False(t, planner.MinimumCost(2, c).IsReachable())

	// Adding the reverse piece enables the chain, and only through it.
	c = newCatalog(t, "AB", seg(1, 'A', 'B', 1), seg(1, 'B', 'A', 100))
	requirePrice(t, 101, planner.MinimumCost(2, c))
}

func TestMinimumCost_PrefersCheaperLongerPiece(t *testing.T) {
	c := newCatalog(t, "A",
		seg(1, 'A', 'A', 10),
		seg(3, 'A', 'A', 12),
	)
	requirePrice(t, 12, planner.MinimumCost(3, c))
	requirePrice(t, 22, planner.MinimumCost(4, c))
	requirePrice(t, 24, planner.MinimumCost(6, c))
}

func TestMinimumCost_MixedLengths(t *testing.T) {
	c := newCatalog(t, "ABC",
		seg(2, 'A', 'B', 4),
		seg(3, 'B', 'C', 6),
		seg(1, 'C', 'A', 1),
		seg(5, 'A', 'C', 20),
	)
	// A-B(2)+B-C(3) = 10 beats the single 5-length piece at 20.
	requirePrice(t, 10, planner.MinimumCost(5, c))
	// ...then C-A(1) = 11 for length 6.
	requirePrice(t, 11, planner.MinimumCost(6, c))
}

func TestMinimumCost_DuplicateKeepsCheapest(t *testing.T) {
	c := newCatalog(t, "AB",
		seg(2, 'A', 'B', 9),
		seg(2, 'A', 'B', 4),
		seg(2, 'A', 'B', 6),
	)
	requirePrice(t, 4, planner.MinimumCost(2, c))
}

func TestMinimumCost_SegmentsLongerThanTarget(t *testing.T) {
	c := newCatalog(t, "A", seg(10, 'A', 'A', 1))
	assert.False(t, planner.MinimumCost(9, c).IsReachable())
	requirePrice(t, 1, planner.MinimumCost(10, c))
}

func TestMinimumCost_SaturatesInsteadOfWrapping(t *testing.T) {
	c := newCatalog(t, "A", seg(1, 'A', 'A', math.MaxInt64-1))
	res := planner.MinimumCost(3, c)
	requirePrice(t, math.MaxInt64, res)
}

func TestMinimumCost_Idempotent(t *testing.T) {
	c := newCatalog(t, "AB",
		seg(1, 'A', 'B', 3),
		seg(2, 'B', 'B', 2),
		seg(1, 'B', 'A', 7),
	)
	first := planner.MinimumCost(11, c)
	second := planner.MinimumCost(11, c)
	assert.Equal(t, first, second)
}

func TestMinimumCost_Preconditions(t *testing.T) {
	c := newCatalog(t, "A")
	assert.Panics(t, func() { planner.MinimumCost(-1, c) })
	assert.Panics(t, func() { planner.MinimumCost(1, nil) })
}

func TestResult(t *testing.T) {
	r := planner.Reachable(42)
	assert.True(t, r.IsReachable())
	assert.Equal(t, "42", r.String())
	assert.Equal(t, int64(42), r.Legacy())

	u := planner.Unreachable()
	assert.False(t, u.IsReachable())
	assert.Equal(t, "unreachable", u.String())
	assert.Equal(t, int64(-1), u.Legacy())
	assert.Equal(t, u, planner.Result{}, "zero value is Unreachable")
}

func BenchmarkMinimumCost(b *testing.B) {
	c := newCatalog(b, "ABCD",
		seg(1, 'A', 'B', 3),
		seg(2, 'B', 'C', 5),
		seg(3, 'C', 'D', 7),
		seg(4, 'D', 'A', 11),
		seg(5, 'A', 'A', 13),
		seg(7, 'B', 'D', 17),
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = planner.MinimumCost(10_000, c)
	}
}
