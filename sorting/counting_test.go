package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/sorting"
)

func TestCounting_RejectsNegative(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	vals := element.FromInts([]int{-1, 2, 3})
	err := sorting.Counting(vals, cmp, metrics.NewCounter())
	assert.ErrorIs(t, err, sorting.ErrNegativeValue)

	// rejected before any mutation
	got, _ := element.Floats(vals)
	assert.Equal(t, []float64{-1, 2, 3}, got)
}

func TestCounting_RejectsFractional(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	vals := element.FromFloats([]float64{1, 2.5, 3})
	err := sorting.Counting(vals, cmp, metrics.NewCounter())
	assert.ErrorIs(t, err, sorting.ErrNonIntegerValue)
}

func TestCounting_RejectsWideRange(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	// 3 elements but a range of 1e6 keys dwarfs the input
	vals := element.FromInts([]int{1, 2, 1000000})
	err := sorting.Counting(vals, cmp, metrics.NewCounter())
	assert.ErrorIs(t, err, sorting.ErrRangeTooWide)
}

func TestCounting_BoundedRangeAccepted(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	// max+1 = 16·n exactly sits on the allowed boundary
	vals := element.FromInts([]int{47, 0, 13})
	m := metrics.NewCounter()
	require.NoError(t, sorting.Counting(vals, cmp, m))

	got, err := element.Floats(vals)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 13, 47}, got)
	assert.Zero(t, m.Comparisons())
	assert.Greater(t, m.Moves(), uint64(0))
}

func TestCounting_EmptyAndSingle(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)

	empty := element.FromInts(nil)
	require.NoError(t, sorting.Counting(empty, cmp, metrics.NewCounter()))

	single := element.FromInts([]int{7})
	require.NoError(t, sorting.Counting(single, cmp, metrics.NewCounter()))
	assert.Equal(t, float64(7), single[0].Num())
}
