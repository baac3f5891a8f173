package searching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/arrayview"
	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/trace"
)

// TestBinary_TraceShape pins the concrete scenario: searching 7 in
// [1,3,5,7,9] records the full window [0..4] with midpoint 2 before
// narrowing, and ends on FOUND at index 3.
func TestBinary_TraceShape(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	vals := element.FromInts([]int{1, 3, 5, 7, 9})
	rec := trace.NewRecorder()

	idx, err := searching.Binary(vals, element.NewOrdinal(7), cmp, metrics.NewCounter(),
		searching.WithRecorder(rec))
	require.NoError(t, err)
	require.Equal(t, 3, idx)

	tr := rec.Trace()
	require.GreaterOrEqual(t, tr.Len(), 2)
	assert.Equal(t, trace.Init, tr.First().Kind)
	assert.Equal(t, trace.Found, tr.Last().Kind)

	// the first window must be [0..4] probing mid 2
	var firstRange *trace.Step
	for i := range tr {
		if tr[i].Kind == trace.Range {
			firstRange = &tr[i]
			break
		}
	}
	require.NotNil(t, firstRange, "trace must contain a RANGE step")
	lo, hi, ok := firstRange.ActiveRange()
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 4, hi)
	assert.Contains(t, firstRange.Highlights, trace.Highlight{Index: 2, Role: trace.RolePivot})
}

// TestSearches_TraceEndpoints verifies the search trace contract across
// algorithms: INIT first, FOUND or NOT_FOUND last, snapshots owned.
func TestSearches_TraceEndpoints(t *testing.T) {
	cmp := element.ComparatorFor(element.Ordinal)
	vals := element.FromInts([]int{1, 3, 5, 7, 9})
	original := element.CloneValues(vals)

	cases := []struct {
		name   string
		target int
		found  bool
		run    func(rec *trace.Recorder, target element.Value) (int, error)
	}{
		{"linear found", 5, true, func(rec *trace.Recorder, target element.Value) (int, error) {
			return searching.Linear(vals, target, cmp, metrics.NewCounter(), searching.WithRecorder(rec))
		}},
		{"linear missing", 6, false, func(rec *trace.Recorder, target element.Value) (int, error) {
			return searching.Linear(vals, target, cmp, metrics.NewCounter(), searching.WithRecorder(rec))
		}},
		{"binary missing", 2, false, func(rec *trace.Recorder, target element.Value) (int, error) {
			return searching.Binary(vals, target, cmp, metrics.NewCounter(), searching.WithRecorder(rec))
		}},
		{"dfs found", 9, true, func(rec *trace.Recorder, target element.Value) (int, error) {
			return searching.DepthFirst(arrayview.NewTreeView(vals), target, cmp, metrics.NewCounter(), searching.WithRecorder(rec))
		}},
		{"bfs missing", 4, false, func(rec *trace.Recorder, target element.Value) (int, error) {
			return searching.BreadthFirst(arrayview.NewTreeView(vals), target, cmp, metrics.NewCounter(), searching.WithRecorder(rec))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := trace.NewRecorder()
			idx, err := tc.run(rec, element.NewOrdinal(float64(tc.target)))
			require.NoError(t, err)

			tr := rec.Trace()
			require.GreaterOrEqual(t, tr.Len(), 2)
			assert.Equal(t, trace.Init, tr.First().Kind)
			assert.Equal(t, original, tr.First().Snapshot)

			if tc.found {
				assert.Equal(t, trace.Found, tr.Last().Kind)
				assert.Equal(t, trace.Highlight{Index: idx, Role: trace.RoleFound}, tr.Last().Highlights[0])
			} else {
				assert.Equal(t, searching.NotFound, idx)
				assert.Equal(t, trace.NotFound, tr.Last().Kind)
			}
			assert.Equal(t, original, tr.Last().Snapshot, "searches never mutate the array")
		})
	}
}
