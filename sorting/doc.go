// Package sorting implements the eight instrumented, in-place sorting
// algorithms of the algoviz engine: Bubble, Selection, Insertion, Quick,
// Merge, Heap, Shell, and Counting.
//
// What
//
//   - Each algorithm sorts a []element.Value ascending, in place, routing
//     every comparison through the supplied element.Comparator and
//     tallying comparisons, moves, and accesses into a metrics.Counter.
//   - Passing trace recording via WithRecorder appends a replayable step
//     sequence: INIT, then COMPARE/SWAP/SET/REGION steps, then COMPLETE.
//   - Catalog() returns the static Descriptor for every algorithm:
//     complexity strings, stability, supported domains.
//
// Behavioral fidelity
//
//	Each algorithm keeps its textbook-defining quirks:
//	  - Bubble: adjacent passes with early exit when a pass swaps nothing.
//	  - Selection: strict less-than scan (ties keep first occurrence),
//	    no swap when the minimum is already in place.
//	  - Insertion: stable; shifting stops at the first non-greater left
//	    neighbor, so equal elements never reorder.
//	  - Quick: pivot drawn uniformly at random from the sub-range,
//	    swapped to the end, Lomuto partition with a <= test, recursion on
//	    both sides. Seed the RNG via WithSeed for reproducible traces.
//	  - Merge: midpoint split, temporary buffers, left half first on
//	    ties — stable.
//	  - Heap: sift-down max-heap build, then repeated root↔end swaps.
//	  - Shell: gap sequence n/2, n/4, …, 1; each pass a gapped insertion.
//	  - Counting: Ordinal only; non-negative integral values with a
//	    bounded range; frequency table + prefix sums, back-to-front
//	    placement — stable.
//
// Domains
//
//	Bubble, Selection, Insertion, Quick, and Merge accept Ordinal and
//	Lexical elements. Heap, Shell, and Counting are Ordinal-only and
//	return ErrUnsupportedDomain for a Lexical comparator before touching
//	the input.
//
// Errors
//
//   - ErrNilComparator       nil ordering capability
//   - ErrUnsupportedDomain   algorithm does not support the run's domain
//   - ErrNonIntegerValue     Counting on fractional values
//   - ErrNegativeValue       Counting on negative values
//   - ErrRangeTooWide        Counting on a range dwarfing the input size
//   - ErrOptionViolation     invalid functional option
//   - element.ErrDomainMismatch  mixed-domain input rejected at entry
//
// Complexity (n = len(values))
//
//	Bubble/Selection/Insertion  O(n^2) time, O(1) space
//	Quick                       O(n log n) expected, O(log n) stack
//	Merge                       O(n log n) time, O(n) space
//	Heap                        O(n log n) time, O(1) space
//	Shell                       O(n^1.5) time (gap-sequence dependent), O(1) space
//	Counting                    O(n + k) time and space, k = value range
//
// Usage
//
//	vals := element.FromInts([]int{5, 2, 4, 1})
//	cmp := element.ComparatorFor(element.Ordinal)
//	m := metrics.NewCounter()
//	rec := trace.NewRecorder()
//	if err := sorting.Bubble(vals, cmp, m, sorting.WithRecorder(rec)); err != nil {
//	    // handle error
//	}
//	// vals is now ascending; rec.Trace() holds INIT … COMPLETE.
package sorting
