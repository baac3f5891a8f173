package sorting

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// maxRangeFactor bounds Counting's frequency table: the table may hold
// at most maxRangeFactor entries per input element. A sparse range past
// that threshold would allocate far more than it sorts.
const maxRangeFactor = 16

// Counting sorts values ascending in place without comparisons: tally a
// frequency table over the value range, prefix-sum it into positions,
// then place elements back-to-front so equal values keep their input
// order.
//
// Ordinal domain only, and further restricted to non-negative integral
// values whose range stays proportionate to the input size. Violations
// are rejected before any mutation:
//
//   - fractional value           → ErrNonIntegerValue
//   - negative value             → ErrNegativeValue
//   - max+1 > 16·len(values)     → ErrRangeTooWide
//
// Stable. Records no Compare steps — Counting performs no comparisons,
// which is the point of visualizing it next to the comparison sorts.
//
// Complexity: O(n + k) time and space, k = max value + 1.
func Counting(values []element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) error {
	o, err := parseOptions(opts)
	if err != nil {
		return err
	}
	if err = validateRun(values, cmp, element.Ordinal); err != nil {
		return err
	}
	rec := o.Recorder

	n := len(values)
	maxKey := 0
	for i, v := range values {
		f := v.Num()
		if f != math.Trunc(f) {
			return fmt.Errorf("%w: %s at index %d", ErrNonIntegerValue, v, i)
		}
		if f < 0 {
			return fmt.Errorf("%w: %s at index %d", ErrNegativeValue, v, i)
		}
		if k := int(f); k > maxKey {
			maxKey = k
		}
	}
	if n > 0 && maxKey+1 > maxRangeFactor*n {
		return fmt.Errorf("%w: range %d for %d elements", ErrRangeTooWide, maxKey+1, n)
	}

	m.Start()
	defer m.Stop()

	rec.RecordInit(values, "counting sort: initial state")

	if n > 0 {
		// frequency table over [0, maxKey]
		counts := make([]int, maxKey+1)
		for i := 0; i < n; i++ {
			counts[int(readAt(values, m, i).Num())]++
		}
		// prefix sums: counts[k] = number of elements <= k
		for k := 1; k <= maxKey; k++ {
			counts[k] += counts[k-1]
		}

		// back-to-front placement keeps equal keys in input order
		out := make([]element.Value, n)
		for i := n - 1; i >= 0; i-- {
			k := int(readAt(values, m, i).Num())
			counts[k]--
			out[counts[k]] = values[i]
			m.AddMoves(1)
		}

		for i := 0; i < n; i++ {
			setAt(values, m, i, out[i])
			rec.RecordSet(values, i,
				fmt.Sprintf("place %s at position %d", values[i], i))
		}
	}

	rec.RecordComplete(values, "counting sort: sorted")

	return nil
}
