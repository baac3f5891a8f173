// Package engine is the boundary façade collaborators call: run one
// algorithm by name over one owned copy of a dataset, and read back the
// result, its metrics, and — for traced runs — the full step sequence.
//
// What
//
//   - RunSort / RunSortTraced: sort a copy of the input with a named
//     algorithm, returning the sorted values and a fresh Counter
//     (plus the Trace for the traced variant).
//   - RunSearch / RunSearchTraced: symmetric for searching; not-found is
//     a valid outcome (Found=false, Index=NotFound, nil error).
//   - ListAlgorithms(kind): the static descriptor catalog.
//
// Ownership
//
//	The engine never retains or mutates caller memory: every run clones
//	the input into a private working copy and returns only owned results.
//	Concurrent callers may share one source dataset freely, because each
//	call owns its copy, its Counter, and its Recorder — there is nothing
//	to lock.
//
// Trace ceiling
//
//	Traced runs are meant for human-paced playback; quadratic algorithms
//	produce O(n^2) steps. Traced variants reject inputs larger than
//	MaxTracedElements with ErrTooLarge. Untraced runs have no engine-side
//	limit.
//
// Errors
//
//   - ErrUnknownAlgorithm      name not in the catalog for that kind
//   - ErrTooLarge              traced run over the element ceiling
//   - sorting.* / searching.*  domain and precondition failures, passed
//     through unwrapped so errors.Is matches the originating sentinel
//
// Usage
//
//	res, err := engine.RunSortTraced(element.FromInts(data), "quick", element.Ordinal)
//	if err != nil { … }
//	cur, _ := trace.NewCursor(res.Trace)
//	for s, ok := cur.Current(), true; ok; s, ok = cur.Forward() {
//	    render(s)
//	}
package engine
