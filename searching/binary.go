package searching

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// Binary halves a shrinking [lo, hi] window over ascending input,
// probing the midpoint with one three-way comparison per step, and
// returns the matched index or NotFound once the window collapses.
//
// The ascending precondition is verified before the run starts and
// violations return ErrUnsorted; the check's comparisons are a
// precondition probe and are not tallied as algorithm work. The engine
// never sorts on the caller's behalf — a pre-sorted copy is the
// caller's statement that Binary's metrics are meaningful.
//
// Supports Ordinal and Lexical domains.
//
// Complexity: O(log n) probes after the O(n) precondition check.
func Binary(values []element.Value, target element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) (int, error) {
	o, err := parseOptions(opts)
	if err != nil {
		return NotFound, err
	}
	if err = validateRun(values, target, cmp, element.Ordinal, element.Lexical); err != nil {
		return NotFound, err
	}
	if !element.IsSorted(values, cmp) {
		return NotFound, fmt.Errorf("%w: input must be ascending", ErrUnsorted)
	}
	rec := o.Recorder

	m.Start()
	defer m.Stop()

	rec.RecordInit(values, fmt.Sprintf("binary search for %s", target))

	lo, hi := 0, len(values)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		rec.RecordRange(values, lo, hi, mid,
			fmt.Sprintf("window [%d..%d], probe midpoint %d", lo, hi, mid))

		switch probe(values, cmp, m, mid, target) {
		case element.Equal:
			rec.RecordFound(values, mid,
				fmt.Sprintf("found %s at position %d", target, mid))

			return mid, nil
		case element.Less:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	rec.RecordNotFound(values, fmt.Sprintf("window collapsed, %s is not present", target))

	return NotFound, nil
}
