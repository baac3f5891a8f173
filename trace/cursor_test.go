package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/trace"
)

// buildTrace records n+1 steps: Init followed by n Set steps.
func buildTrace(t *testing.T, n int) trace.Trace {
	t.Helper()
	vals := element.FromInts([]int{0, 0, 0})
	rec := trace.NewRecorder()
	rec.RecordInit(vals, "init")
	for i := 0; i < n; i++ {
		vals[i%len(vals)] = element.NewOrdinal(float64(i + 1))
		rec.RecordSet(vals, i%len(vals), "set")
	}

	return rec.Trace()
}

func TestNewCursor_EmptyTrace(t *testing.T) {
	_, err := trace.NewCursor(nil)
	assert.ErrorIs(t, err, trace.ErrEmptyTrace)
}

func TestCursor_ForwardBackRoundTrip(t *testing.T) {
	tr := buildTrace(t, 6)
	cur, err := trace.NewCursor(tr)
	require.NoError(t, err)

	start := cur.Current()
	for k := 1; k < tr.Len(); k++ {
		// forward k times
		for i := 0; i < k; i++ {
			_, ok := cur.Forward()
			require.True(t, ok)
		}
		// back k times lands exactly on step 0
		for i := 0; i < k; i++ {
			_, ok := cur.Back()
			require.True(t, ok)
		}
		assert.Equal(t, 0, cur.Pos())
		assert.Equal(t, start.Snapshot, cur.Current().Snapshot,
			"k=%d round trip must restore the step-0 snapshot", k)
	}
}

func TestCursor_Bounds(t *testing.T) {
	tr := buildTrace(t, 1)
	cur, err := trace.NewCursor(tr)
	require.NoError(t, err)

	// back at step 0 stays put
	s, ok := cur.Back()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Seq)

	// forward past the last step stays put
	_, ok = cur.Forward()
	require.True(t, ok)
	s, ok = cur.Forward()
	assert.False(t, ok)
	assert.Equal(t, tr.Len()-1, s.Seq)
}

func TestCursor_SeekAndRewind(t *testing.T) {
	tr := buildTrace(t, 4)
	cur, err := trace.NewCursor(tr)
	require.NoError(t, err)

	s, err := cur.Seek(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Seq)
	assert.Equal(t, 3, cur.Pos())

	_, err = cur.Seek(tr.Len())
	assert.ErrorIs(t, err, trace.ErrStepOutOfRange)
	_, err = cur.Seek(-1)
	assert.ErrorIs(t, err, trace.ErrStepOutOfRange)

	s = cur.Rewind()
	assert.Equal(t, 0, s.Seq)
	assert.Equal(t, 0, cur.Pos())
}
