package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/trace"
)

// Merge sorts values ascending in place (via temporary buffers) with
// classic top-down merge sort: split at the midpoint, recursively sort
// both halves, then linearly merge. On ties the left-half element is
// taken first, so Merge is stable.
//
// Supports Ordinal and Lexical domains. Stable.
//
// Complexity: O(n log n) time always. Space: O(n) buffers.
func Merge(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
	o, err := parseOptions(opts)
	if err != nil {
		return err
	}
	if err = validateRun(values, cmp, element.Ordinal, element.Lexical); err != nil {
		return err
	}
	rec := o.Recorder

	m.Start()
	defer m.Stop()

	rec.RecordInit(values, "merge sort: initial state")

	ms := &mergeSorter{values: values, cmp: cmp, m: m, rec: rec}
	ms.sort(0, len(values)-1)

	rec.RecordComplete(values, "merge sort: sorted")

	return nil
}

// mergeSorter encapsulates per-run merge-sort state.
type mergeSorter struct {
	values []element.Value
	cmp    element.Comparator
	m      *metrics.Counter
	rec    *trace.Recorder
}

// sort recursively sorts the inclusive sub-range [lo, hi].
func (ms *mergeSorter) sort(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	ms.rec.RecordRegion(ms.values, lo, hi, []int{mid},
		fmt.Sprintf("split [%d..%d] at %d", lo, hi, mid))

	ms.sort(lo, mid)
	ms.sort(mid+1, hi)
	ms.merge(lo, mid, hi)
}

// merge linearly merges the sorted halves [lo, mid] and [mid+1, hi]
// using temporary buffers, taking the left element on ties.
func (ms *mergeSorter) merge(lo, mid, hi int) {
	left := element.CloneValues(ms.values[lo : mid+1])
	right := element.CloneValues(ms.values[mid+1 : hi+1])
	ms.m.AddAccesses(len(left) + len(right))

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		ms.m.AddComparisons(1)
		if ms.cmp.Compare(left[i], right[j]) != element.Greater {
			// left first on ties: stability
			setAt(ms.values, ms.m, k, left[i])
			i++
		} else {
			setAt(ms.values, ms.m, k, right[j])
			j++
		}
		ms.rec.RecordSet(ms.values, k,
			fmt.Sprintf("merge %s into position %d", ms.values[k], k))
		k++
	}
	for i < len(left) {
		setAt(ms.values, ms.m, k, left[i])
		ms.rec.RecordSet(ms.values, k,
			fmt.Sprintf("drain left half: %s to position %d", ms.values[k], k))
		i++
		k++
	}
	for j < len(right) {
		setAt(ms.values, ms.m, k, right[j])
		ms.rec.RecordSet(ms.values, k,
			fmt.Sprintf("drain right half: %s to position %d", ms.values[k], k))
		j++
		k++
	}
}
