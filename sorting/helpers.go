package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// parseOptions applies opts over defaults and surfaces option errors.
func parseOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// validateRun performs the shared entry checks: ordering capability
// present, domain supported by the algorithm, input homogeneous in the
// comparator's domain. Runs before any mutation or tallying.
func validateRun(values []element.Value, cmp element.Comparator, supported ...element.Domain) error {
	if cmp == nil {
		return ErrNilComparator
	}
	ok := false
	for _, d := range supported {
		if cmp.Domain() == d {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedDomain, cmp.Domain())
	}

	return element.Homogeneous(values, cmp.Domain())
}

// compareAt routes one comparison of values[i] vs values[j] through the
// ordering capability and the counter (2 accesses, 1 comparison).
func compareAt(values []element.Value, cmp element.Comparator, m *metrics.Counter, i, j int) element.Ordering {
	m.AddAccesses(2)
	m.AddComparisons(1)

	return cmp.Compare(values[i], values[j])
}

// compareWith routes one comparison of values[i] vs an out-of-array key
// (1 access, 1 comparison).
func compareWith(values []element.Value, cmp element.Comparator, m *metrics.Counter, i int, key element.Value) element.Ordering {
	m.AddAccesses(1)
	m.AddComparisons(1)

	return cmp.Compare(values[i], key)
}

// swapAt exchanges values[i] and values[j] (2 accesses, 2 moves).
func swapAt(values []element.Value, m *metrics.Counter, i, j int) {
	values[i], values[j] = values[j], values[i]
	m.AddAccesses(2)
	m.AddMoves(2)
}

// setAt writes v into values[i] (1 access, 1 move).
func setAt(values []element.Value, m *metrics.Counter, i int, v element.Value) {
	values[i] = v
	m.AddAccesses(1)
	m.AddMoves(1)
}

// readAt reads values[i] (1 access).
func readAt(values []element.Value, m *metrics.Counter, i int) element.Value {
	m.AddAccesses(1)

	return values[i]
}
