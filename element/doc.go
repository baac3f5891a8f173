// Package element defines the value model shared by every algorithm in
// algoviz: element domains, a tagged Value representation, and the
// ordering capability algorithms compare through.
//
// What
//
//   - Domain: the element kind of a run — Ordinal (numeric) or Lexical (text).
//   - Value: a tagged variant holding either a float64 or a string, so
//     recorders and algorithms have one code path regardless of domain.
//   - Comparator: the ordering capability. Algorithms never compare
//     values with built-in operators; they route every decision through
//     Comparator.Compare, which reports Less, Equal, or Greater.
//   - Converters: FromInts / FromFloats / FromStrings build value slices;
//     Floats / Strings read them back out.
//   - CloneValues / Homogeneous / IsSorted: ownership and precondition
//     helpers used at run boundaries.
//
// Why
//
//	A run is homogeneous in domain; mixing numeric and text elements is
//	rejected at the boundary, not discovered mid-sort. Binding the
//	comparison rule to a Domain (numeric order vs. code-point order)
//	keeps algorithm bodies generic and keeps instrumentation honest:
//	one comparison routed = one comparison tallied.
//
// Determinism
//
//	Comparators are stateless and total within their domain, so the same
//	input and seed always produce the same comparison sequence.
//
// Complexity
//
//	All helpers are O(n) over the slice they touch; Compare is O(1) for
//	Ordinal and O(len) for Lexical (byte-wise string comparison).
//
// Usage
//
//	vals := element.FromInts([]int{5, 2, 4, 1})
//	cmp := element.ComparatorFor(element.Ordinal)
//	if err := element.Homogeneous(vals, element.Ordinal); err != nil {
//	    // element.ErrDomainMismatch
//	}
//	sorted := element.IsSorted(vals, cmp) // false
package element
