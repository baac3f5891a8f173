package searching

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// Linear scans values left to right, one comparison per element, and
// returns the index of the first match or NotFound. No ordering
// precondition.
//
// Supports Ordinal and Lexical domains.
//
// Complexity: O(n) time, O(1) space.
func Linear(values []element.Value, target element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) (int, error) {
	o, err := parseOptions(opts)
	if err != nil {
		return NotFound, err
	}
	if err = validateRun(values, target, cmp, element.Ordinal, element.Lexical); err != nil {
		return NotFound, err
	}
	rec := o.Recorder

	m.Start()
	defer m.Stop()

	rec.RecordInit(values, fmt.Sprintf("linear search for %s", target))

	for i := range values {
		ord := probe(values, cmp, m, i, target)
		rec.RecordCheck(values, i,
			fmt.Sprintf("check position %d: %s", i, values[i]))
		if ord == element.Equal {
			rec.RecordFound(values, i,
				fmt.Sprintf("found %s at position %d", target, i))

			return i, nil
		}
	}

	rec.RecordNotFound(values, fmt.Sprintf("%s is not present", target))

	return NotFound, nil
}
