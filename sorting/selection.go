package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// Selection sorts values ascending in place: for each position, scan the
// remainder for the minimum and swap it into place. The scan uses strict
// less-than only, so among equal candidates the first occurrence wins,
// and no swap is performed (or recorded) when the position already holds
// its minimum.
//
// Supports Ordinal and Lexical domains. Not stable: long-range swaps can
// carry an element past its equals.
//
// Complexity: O(n^2) comparisons always. Space: O(1).
func Selection(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
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

	rec.RecordInit(values, "selection sort: initial state")

	n := len(values)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			ord := compareAt(values, cmp, m, j, minIdx)
			rec.RecordCompare(values, j, minIdx,
				fmt.Sprintf("compare %s against current minimum %s", values[j], values[minIdx]))
			if ord == element.Less {
				minIdx = j
			}
		}
		if minIdx != i {
			swapAt(values, m, i, minIdx)
			rec.RecordSwap(values, i, minIdx,
				fmt.Sprintf("move minimum %s into position %d", values[i], i))
		}
	}

	rec.RecordComplete(values, "selection sort: sorted")

	return nil
}
