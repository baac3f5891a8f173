package element

import "fmt"

// FromInts wraps each int as an Ordinal value.
func FromInts(nums []int) []Value {
	out := make([]Value, len(nums))
	for i, n := range nums {
		out[i] = NewOrdinal(float64(n))
	}

	return out
}

// FromFloats wraps each float64 as an Ordinal value.
func FromFloats(nums []float64) []Value {
	out := make([]Value, len(nums))
	for i, n := range nums {
		out[i] = NewOrdinal(n)
	}

	return out
}

// FromStrings wraps each string as a Lexical value.
func FromStrings(strs []string) []Value {
	out := make([]Value, len(strs))
	for i, s := range strs {
		out[i] = NewLexical(s)
	}

	return out
}

// Floats unwraps an Ordinal slice back to float64s.
// Returns ErrDomainMismatch if any value is not Ordinal.
func Floats(values []Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if v.domain != Ordinal {
			return nil, fmt.Errorf("%w: index %d is %s", ErrDomainMismatch, i, v.domain)
		}
		out[i] = v.num
	}

	return out, nil
}

// Strings unwraps a Lexical slice back to strings.
// Returns ErrDomainMismatch if any value is not Lexical.
func Strings(values []Value) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		if v.domain != Lexical {
			return nil, fmt.Errorf("%w: index %d is %s", ErrDomainMismatch, i, v.domain)
		}
		out[i] = v.text
	}

	return out, nil
}

// CloneValues returns an owned copy of values. Value is an immutable
// value type, so a slice copy is a deep copy; each run works on its own
// clone and never aliases caller memory.
func CloneValues(values []Value) []Value {
	if values == nil {
		return nil
	}
	out := make([]Value, len(values))
	copy(out, values)

	return out
}

// Homogeneous verifies every value belongs to domain d.
// It is the boundary check that rejects mixed-domain input before any
// algorithm runs; the first offending index is reported.
func Homogeneous(values []Value, d Domain) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDomain, int(d))
	}
	for i, v := range values {
		if v.domain != d {
			return fmt.Errorf("%w: index %d is %s, want %s", ErrDomainMismatch, i, v.domain, d)
		}
	}

	return nil
}

// IsSorted reports whether values are non-decreasing under cmp.
// Used as the Binary search precondition check and by tests; these
// comparisons are a precondition probe and are not tallied as algorithm
// work.
func IsSorted(values []Value, cmp Comparator) bool {
	for i := 1; i < len(values); i++ {
		if cmp.Compare(values[i-1], values[i]) == Greater {
			return false
		}
	}

	return true
}
