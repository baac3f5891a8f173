package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/trace"
)

// Heap sorts values ascending in place: build a max-heap by sifting
// down from the last internal node to the root, then repeatedly swap
// the root to the end of the shrinking heap and re-heapify.
//
// Ordinal domain only. Not stable.
//
// Complexity: O(n log n) time always. Space: O(1).
func Heap(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
	o, err := parseOptions(opts)
	if err != nil {
		return err
	}
	if err = validateRun(values, cmp, element.Ordinal); err != nil {
		return err
	}
	rec := o.Recorder

	m.Start()
	defer m.Stop()

	rec.RecordInit(values, "heap sort: initial state")

	hs := &heapSorter{values: values, cmp: cmp, m: m, rec: rec}
	n := len(values)

	// build phase: heapify from the last internal node up
	for i := n/2 - 1; i >= 0; i-- {
		hs.siftDown(i, n)
	}

	// extraction phase: root is the max of the live heap
	for end := n - 1; end > 0; end-- {
		swapAt(values, m, 0, end)
		rec.RecordSwap(values, 0, end,
			fmt.Sprintf("move heap maximum %s to position %d", values[end], end))
		hs.siftDown(0, end)
	}

	rec.RecordComplete(values, "heap sort: sorted")

	return nil
}

// heapSorter encapsulates per-run heap-sort state.
type heapSorter struct {
	values []element.Value
	cmp    element.Comparator
	m      *metrics.Counter
	rec    *trace.Recorder
}

// siftDown restores the max-heap property for the subtree rooted at
// root, within the live heap [0, size).
func (hs *heapSorter) siftDown(root, size int) {
	for {
		largest := root
		left := 2*root + 1
		right := 2*root + 2

		if left < size {
			ord := compareAt(hs.values, hs.cmp, hs.m, left, largest)
			hs.rec.RecordCompare(hs.values, left, largest,
				fmt.Sprintf("compare child %s against %s", hs.values[left], hs.values[largest]))
			if ord == element.Greater {
				largest = left
			}
		}
		if right < size {
			ord := compareAt(hs.values, hs.cmp, hs.m, right, largest)
			hs.rec.RecordCompare(hs.values, right, largest,
				fmt.Sprintf("compare child %s against %s", hs.values[right], hs.values[largest]))
			if ord == element.Greater {
				largest = right
			}
		}
		if largest == root {
			return
		}

		swapAt(hs.values, hs.m, root, largest)
		hs.rec.RecordSwap(hs.values, root, largest,
			fmt.Sprintf("sift %s down to position %d", hs.values[largest], largest))
		root = largest
	}
}
