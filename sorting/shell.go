package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// Shell sorts values ascending in place with the classic gap sequence
// n/2, n/4, …, 1; each pass is a gapped insertion sort. The final
// gap-1 pass is a plain insertion sort over an almost-ordered array.
//
// Ordinal domain only. Not stable: gapped shifts jump over equals.
//
// Complexity: roughly O(n^1.5) with this gap sequence, O(n^2) worst.
// Space: O(1).
func Shell(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
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

	rec.RecordInit(values, "shell sort: initial state")

	n := len(values)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			key := readAt(values, m, i)
			j := i
			for j >= gap {
				ord := compareWith(values, cmp, m, j-gap, key)
				rec.RecordCompare(values, j-gap, i,
					fmt.Sprintf("gap %d: compare %s against key %s", gap, values[j-gap], key))
				if ord != element.Greater {
					break
				}
				setAt(values, m, j, values[j-gap])
				rec.RecordSet(values, j,
					fmt.Sprintf("gap %d: shift %s right to position %d", gap, values[j], j))
				j -= gap
			}
			if j != i {
				setAt(values, m, j, key)
				rec.RecordSet(values, j,
					fmt.Sprintf("gap %d: insert key %s at position %d", gap, key, j))
			}
		}
	}

	rec.RecordComplete(values, "shell sort: sorted")

	return nil
}
