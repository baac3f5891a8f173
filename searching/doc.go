// Package searching implements the five instrumented searching
// algorithms of the algoviz engine: Linear, Binary, DepthFirst,
// BreadthFirst, and Trie.
//
// What
//
//   - Each algorithm looks up a target among []element.Value elements,
//     routing every comparison through the supplied element.Comparator
//     and tallying into a metrics.Counter, and returns the index of the
//     first match in the original array — or NotFound.
//   - Not-found is a first-class outcome, not an error: the index is
//     NotFound (-1) and the returned error is nil.
//   - WithRecorder captures a replayable trace: INIT, then CHECK/RANGE
//     probes, then FOUND or NOT_FOUND.
//   - Catalog() returns the static Descriptor for every algorithm,
//     including the RequiresSorted precondition flag.
//
// Preconditions
//
//   - Binary requires ascending input. The precondition is verified
//     eagerly (an unsorted array would produce a silently wrong answer)
//     and violations return ErrUnsorted; the engine never auto-sorts,
//     because doing so would misrepresent the algorithm's own metrics.
//     Verification comparisons are a probe, not algorithm work, and are
//     not tallied.
//   - DepthFirst and BreadthFirst traverse an arrayview.View built by
//     the caller from the working array; node identifiers are original
//     indices, so results need no translation.
//   - Trie is Lexical-only: it builds an internal prefix structure over
//     the element texts and resolves exact-match membership.
//
// Errors
//
//   - ErrNilComparator       nil ordering capability
//   - ErrNilView             nil view passed to a graph-style search
//   - ErrUnsupportedDomain   algorithm does not support the run's domain
//   - ErrUnsorted            Binary on unsorted input
//   - ErrOptionViolation     invalid functional option
//   - element.ErrDomainMismatch  mixed-domain input or target
//
// Complexity (n = len(values))
//
//	Linear / DepthFirst / BreadthFirst  O(n) time
//	Binary                              O(log n) time (after O(n) check)
//	Trie                                O(total text length) build, O(len(target)) lookup
//
// Usage
//
//	vals := element.FromInts([]int{1, 3, 5, 7, 9})
//	cmp := element.ComparatorFor(element.Ordinal)
//	m := metrics.NewCounter()
//	idx, err := searching.Binary(vals, element.NewOrdinal(7), cmp, m)
//	// idx == 3
package searching
