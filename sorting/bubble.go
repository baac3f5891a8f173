package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// Bubble sorts values ascending in place by repeated adjacent-pair
// passes. A pass that performs no swap terminates the sort early; the
// early exit changes step count, never correctness.
//
// Supports Ordinal and Lexical domains.
//
// Complexity: O(n^2) worst, O(n) on sorted input. Space: O(1).
func Bubble(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
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

	rec.RecordInit(values, "bubble sort: initial state")

	n := len(values)
	for end := n - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			ord := compareAt(values, cmp, m, i, i+1)
			rec.RecordCompare(values, i, i+1,
				fmt.Sprintf("compare %s and %s", values[i], values[i+1]))
			if ord == element.Greater {
				swapAt(values, m, i, i+1)
				rec.RecordSwap(values, i, i+1,
					fmt.Sprintf("swap positions %d and %d", i, i+1))
				swapped = true
			}
		}
		// a clean pass proves the prefix is already ordered
		if !swapped {
			break
		}
	}

	rec.RecordComplete(values, "bubble sort: sorted")

	return nil
}
