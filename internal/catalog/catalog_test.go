package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solatis/railplanner/internal/catalog"
	"github.com/solatis/railplanner/internal/types"
)

func mustAlphabet(t *testing.T, labels string) *catalog.Alphabet {
	t.Helper()
	symbols := make([]types.Symbol, len(labels))
	for i := range labels {
		symbols[i] = types.Symbol(labels[i])
	}
	a, err := catalog.NewAlphabet(symbols)
	require.NoError(t, err)
	return a
}

func TestNewAlphabet(t *testing.T) {
	a := mustAlphabet(t, "ABC")
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, "A,B,C", a.String())

	idx, ok := a.IndexOf('B')
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = a.IndexOf('Z')
	assert.False(t, ok, "Z is not part of the alphabet")
}

func TestNewAlphabet_Errors(t *testing.T) {
	_, err := catalog.NewAlphabet(nil)
	assert.ErrorIs(t, err, types.ErrEmptyAlphabet)

	_, err = catalog.NewAlphabet([]types.Symbol{'A', 'B', 'A'})
	assert.ErrorIs(t, err, types.ErrDuplicateConnection)
}

func TestAlphabet_SymbolsIsCopy(t *testing.T) {
	a := mustAlphabet(t, "AB")
	syms := a.Symbols()
	syms[0] = 'Z'
	assert.Equal(t, "A,B", a.String(), "mutating the returned slice must not change the alphabet")
}

func TestNew(t *testing.T) {
	a := mustAlphabet(t, "AB")
	segs := []types.Segment{
		{Length: 1, Left: 'A', Right: 'B', Price: 10},
		{Length: 1, Left: 'B', Right: 'A', Price: 5},
	}

	c, err := catalog.New(a, segs)
	require.NoError(t, err)
	assert.Equal(t, 2, c.AlphabetSize())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, segs, c.Segments())

	// Catalog owns its copy.
	segs[0].Price = 1
	assert.Equal(t, int64(10), c.Segments()[0].Price)
}

func TestNew_EmptySegments(t *testing.T) {
	c, err := catalog.New(mustAlphabet(t, "A"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Segments())
}

func TestNew_Errors(t *testing.T) {
	a := mustAlphabet(t, "AB")

	tests := []struct {
		name    string
		seg     types.Segment
		wantErr error
	}{
		{"zero length", types.Segment{Length: 0, Left: 'A', Right: 'B', Price: 1}, types.ErrNonPositiveValue},
		{"negative price", types.Segment{Length: 1, Left: 'A', Right: 'B', Price: -3}, types.ErrNonPositiveValue},
		{"unknown left", types.Segment{Length: 1, Left: 'X', Right: 'B', Price: 1}, types.ErrUnknownConnection},
		{"unknown right", types.Segment{Length: 1, Left: 'A', Right: 'Y', Price: 1}, types.ErrUnknownConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(a, []types.Segment{tt.seg})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := catalog.New(nil, nil)
	assert.ErrorIs(t, err, types.ErrEmptyAlphabet)
}

func TestCatalog_Each(t *testing.T) {
	a := mustAlphabet(t, "A")
	c, err := catalog.New(a, []types.Segment{
		{Length: 1, Left: 'A', Right: 'A', Price: 2},
		{Length: 2, Left: 'A', Right: 'A', Price: 3},
	})
	require.NoError(t, err)

	var lengths []int
	c.Each(func(_ int, seg types.Segment) {
		lengths = append(lengths, seg.Length)
	})
	assert.Equal(t, []int{1, 2}, lengths)
}
