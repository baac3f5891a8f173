package searching

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
// present and of a supported domain, input and target homogeneous in
// that domain. Runs before any probing or tallying.
func validateRun(values []element.Value, target element.Value, cmp element.Comparator, supported ...element.Domain) error {
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
	if target.Domain() != cmp.Domain() {
		return fmt.Errorf("%w: target is %s, want %s",
			element.ErrDomainMismatch, target.Domain(), cmp.Domain())
	}

	return element.Homogeneous(values, cmp.Domain())
}

// probe routes one comparison of values[i] against the target through
// the ordering capability and the counter (1 access, 1 comparison).
func probe(values []element.Value, cmp element.Comparator, m *metrics.Counter, i int, target element.Value) element.Ordering {
	m.AddAccesses(1)
	m.AddComparisons(1)

	return cmp.Compare(values[i], target)
}
