package sorting

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/trace"
)

// Quick sorts values ascending in place with randomized-pivot quicksort:
// the pivot is drawn uniformly from the current sub-range, swapped to
// the end, and the range is partitioned Lomuto-style — elements ordering
// at or below the pivot move left (the <= test keeps ties on the left
// side) — before the pivot lands on the partition boundary and both
// sides recurse.
//
// The pivot RNG is seeded via WithSeed; seed 0 selects the fixed default
// stream, so back-to-back runs reproduce the same trace unless the
// caller injects entropy.
//
// Supports Ordinal and Lexical domains. Not stable.
//
// Complexity: O(n log n) expected, O(n^2) worst. Space: O(log n) stack.
func Quick(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
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

	rec.RecordInit(values, "quick sort: initial state")

	q := &quickSorter{values: values, cmp: cmp, m: m, rec: rec, rng: rngFromSeed(o.Seed)}
	q.sort(0, len(values)-1)

	rec.RecordComplete(values, "quick sort: sorted")

	return nil
}

// quickSorter encapsulates per-run quicksort state.
type quickSorter struct {
	values []element.Value
	cmp    element.Comparator
	m      *metrics.Counter
	rec    *trace.Recorder
	rng    *rand.Rand
}

// sort recursively sorts the inclusive sub-range [lo, hi].
func (q *quickSorter) sort(lo, hi int) {
	if lo >= hi {
		return
	}
	q.rec.RecordRegion(q.values, lo, hi, nil,
		fmt.Sprintf("quicksort sub-range [%d..%d]", lo, hi))

	p := q.partition(lo, hi)
	q.sort(lo, p-1)
	q.sort(p+1, hi)
}

// partition picks a random pivot, moves it to hi, runs a Lomuto pass,
// and returns the pivot's final index.
func (q *quickSorter) partition(lo, hi int) int {
	pIdx := lo + q.rng.Intn(hi-lo+1)
	swapAt(q.values, q.m, pIdx, hi)
	q.rec.RecordSwap(q.values, pIdx, hi,
		fmt.Sprintf("move pivot %s to end of sub-range", q.values[hi]))

	pivot := readAt(q.values, q.m, hi)
	boundary := lo
	for j := lo; j < hi; j++ {
		ord := compareWith(q.values, q.cmp, q.m, j, pivot)
		q.rec.RecordCompare(q.values, j, hi,
			fmt.Sprintf("compare %s against pivot %s", q.values[j], pivot))
		if ord != element.Greater { // <= pivot goes left, ties included
			swapAt(q.values, q.m, boundary, j)
			q.rec.RecordSwap(q.values, boundary, j,
				fmt.Sprintf("move %s into the left partition", q.values[boundary]))
			boundary++
		}
	}

	swapAt(q.values, q.m, boundary, hi)
	q.rec.RecordSwap(q.values, boundary, hi,
		fmt.Sprintf("place pivot %s at position %d", q.values[boundary], boundary))

	return boundary
}
