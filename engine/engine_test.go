package engine_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/trace"
)

func TestRunSort_EveryAlgorithm(t *testing.T) {
	input := element.FromInts([]int{5, 2, 4, 1, 3})
	for _, d := range engine.ListAlgorithms(engine.Sort) {
		t.Run(d.Name, func(t *testing.T) {
			res, err := engine.RunSort(input, d.Name, element.Ordinal)
			require.NoError(t, err)

			got, convErr := element.Floats(res.Values)
			require.NoError(t, convErr)
			assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
			assert.NotNil(t, res.Metrics)
			assert.Nil(t, res.Trace, "untraced run must carry no trace")
		})
	}
}

func TestRunSort_InputStaysUntouched(t *testing.T) {
	input := element.FromInts([]int{3, 1, 2})
	res, err := engine.RunSort(input, sorting.NameQuick, element.Ordinal)
	require.NoError(t, err)

	original, _ := element.Floats(input)
	assert.Equal(t, []float64{3, 1, 2}, original, "engine must sort its own copy")

	sorted, _ := element.Floats(res.Values)
	assert.Equal(t, []float64{1, 2, 3}, sorted)
}

func TestRunSortTraced_TraceContract(t *testing.T) {
	input := element.FromInts([]int{5, 2, 4, 1})
	res, err := engine.RunSortTraced(input, sorting.NameBubble, element.Ordinal)
	require.NoError(t, err)

	require.GreaterOrEqual(t, res.Trace.Len(), 2)
	assert.Equal(t, trace.Init, res.Trace.First().Kind)
	assert.Equal(t, input, res.Trace.First().Snapshot)
	assert.Equal(t, trace.Complete, res.Trace.Last().Kind)
	assert.Equal(t, res.Values, res.Trace.Last().Snapshot)
}

func TestRunSortTraced_Ceiling(t *testing.T) {
	big := make([]int, engine.MaxTracedElements+1)
	_, err := engine.RunSortTraced(element.FromInts(big), sorting.NameBubble, element.Ordinal)
	assert.ErrorIs(t, err, engine.ErrTooLarge)

	// untraced runs have no engine-side limit
	_, err = engine.RunSort(element.FromInts(big), sorting.NameBubble, element.Ordinal)
	assert.NoError(t, err)
}

func TestRunSort_Errors(t *testing.T) {
	vals := element.FromInts([]int{1, 2})

	_, err := engine.RunSort(vals, "bogo", element.Ordinal)
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)

	// declared domain disagrees with the values
	_, err = engine.RunSort(vals, sorting.NameBubble, element.Lexical)
	assert.ErrorIs(t, err, element.ErrDomainMismatch)

	// Ordinal-only algorithm on a Lexical run
	words := element.FromStrings([]string{"b", "a"})
	_, err = engine.RunSort(words, sorting.NameHeap, element.Lexical)
	assert.ErrorIs(t, err, sorting.ErrUnsupportedDomain)
}

func TestRunSearch_FoundAndMissing(t *testing.T) {
	vals := element.FromInts([]int{1, 3, 5, 7, 9})

	res, err := engine.RunSearch(vals, searching.NameBinary, element.Ordinal, element.NewOrdinal(7))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 3, res.Index)

	res, err = engine.RunSearch(vals, searching.NameLinear, element.Ordinal, element.NewOrdinal(4))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, searching.NotFound, res.Index)
}

func TestRunSearch_GraphAlgorithms(t *testing.T) {
	vals := element.FromInts([]int{5, 6, 9, 9, 8})

	res, err := engine.RunSearch(vals, searching.NameDepthFirst, element.Ordinal, element.NewOrdinal(9))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Index, "pre-order meets the left subtree first")

	res, err = engine.RunSearch(vals, searching.NameBreadthFirst, element.Ordinal, element.NewOrdinal(9))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Index, "level order meets the shallower match first")
}

func TestRunSearchTraced_Endpoints(t *testing.T) {
	vals := element.FromStrings([]string{"apple", "kiwi", "pear"})

	res, err := engine.RunSearchTraced(vals, searching.NameTrie, element.Lexical, element.NewLexical("kiwi"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, trace.Init, res.Trace.First().Kind)
	assert.Equal(t, trace.Found, res.Trace.Last().Kind)

	res, err = engine.RunSearchTraced(vals, searching.NameTrie, element.Lexical, element.NewLexical("plum"))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, trace.NotFound, res.Trace.Last().Kind)
}

func TestRunSearch_Errors(t *testing.T) {
	vals := element.FromInts([]int{3, 1, 2})

	_, err := engine.RunSearch(vals, "hash", element.Ordinal, element.NewOrdinal(1))
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)

	// binary demands a pre-sorted copy; the engine never sorts for you
	_, err = engine.RunSearch(vals, searching.NameBinary, element.Ordinal, element.NewOrdinal(1))
	assert.ErrorIs(t, err, searching.ErrUnsorted)

	// trie is text-only
	_, err = engine.RunSearch(vals, searching.NameTrie, element.Ordinal, element.NewOrdinal(1))
	assert.ErrorIs(t, err, searching.ErrUnsupportedDomain)
}

func TestListAlgorithms_Catalogs(t *testing.T) {
	sorts := engine.ListAlgorithms(engine.Sort)
	require.Len(t, sorts, 8)
	for _, d := range sorts {
		assert.Equal(t, engine.Sort, d.Kind)
		assert.NotEmpty(t, d.Time)
		assert.NotEmpty(t, d.Domains)
	}

	searches := engine.ListAlgorithms(engine.Search)
	require.Len(t, searches, 5)

	binary, ok := engine.Describe(engine.Search, searching.NameBinary)
	require.True(t, ok)
	assert.True(t, binary.RequiresSorted)

	merge, ok := engine.Describe(engine.Sort, sorting.NameMerge)
	require.True(t, ok)
	assert.True(t, merge.Stable)
	assert.True(t, merge.Supports(element.Lexical))

	_, ok = engine.Describe(engine.Sort, "bogo")
	assert.False(t, ok)
}

// TestRuns_ShareNothing runs many sorts concurrently over one shared
// source dataset; each call owns its copy, counter, and recorder, so
// the race detector must stay quiet and every result must agree.
func TestRuns_ShareNothing(t *testing.T) {
	source := element.FromInts([]int{9, 3, 7, 1, 8, 2, 6, 4, 5, 0})
	want := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := []string{sorting.NameQuick, sorting.NameMerge, sorting.NameHeap, sorting.NameShell}[n%4]
			res, err := engine.RunSortTraced(source, name, element.Ordinal)
			assert.NoError(t, err)
			got, _ := element.Floats(res.Values)
			assert.Equal(t, want, got)
		}(i)
	}
	wg.Wait()

	original, _ := element.Floats(source)
	assert.Equal(t, []float64{9, 3, 7, 1, 8, 2, 6, 4, 5, 0}, original)
}
