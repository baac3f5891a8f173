package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// Insertion sorts values ascending in place by shift-and-insert: each
// element is lifted out, strictly-greater left neighbors shift right one
// slot, and the element drops into the gap. Shifting stops at the first
// non-greater neighbor, which is exactly what makes Insertion stable —
// an equal element is never crossed.
//
// Supports Ordinal and Lexical domains. Stable.
//
// Complexity: O(n^2) worst, O(n) on sorted input. Space: O(1).
func Insertion(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
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

	rec.RecordInit(values, "insertion sort: initial state")

	n := len(values)
	for i := 1; i < n; i++ {
		key := readAt(values, m, i)
		j := i - 1
		for j >= 0 {
			ord := compareWith(values, cmp, m, j, key)
			rec.RecordCompare(values, j, i,
				fmt.Sprintf("compare %s against key %s", values[j], key))
			if ord != element.Greater {
				// equal stops the shift: stability
				break
			}
			setAt(values, m, j+1, values[j])
			rec.RecordSet(values, j+1,
				fmt.Sprintf("shift %s right to position %d", values[j+1], j+1))
			j--
		}
		setAt(values, m, j+1, key)
		rec.RecordSet(values, j+1,
			fmt.Sprintf("insert key %s at position %d", key, j+1))
	}

	rec.RecordComplete(values, "insertion sort: sorted")

	return nil
}
