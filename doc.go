// Package algoviz is your in-memory playground for running, measuring,
// and replaying classic sorting and searching algorithms — step by step.
//
// 🚀 What is algoviz?
//
//	A small, pure-Go engine that executes comparison-based algorithms over
//	numeric (Ordinal) or text (Lexical) elements while capturing:
//		• Metrics: comparison / move / access counters + monotonic timing
//		• Traces: an ordered, replayable sequence of immutable snapshots
//		  with semantic highlights (compared, swapped, pivot, boundary…)
//
// ✨ Why choose algoviz?
//
//   - Faithful textbook behavior – each algorithm keeps its defining
//     quirks (Bubble's early exit, Insertion's stability, Quick's random
//     pivot with Lomuto partition, Counting's back-to-front placement)
//   - Deterministic when you need it – randomized pivots take an
//     injectable seed, so traces are reproducible in tests
//   - Ownership-safe – every run operates on its own copy; traces never
//     alias the live working array
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under focused subpackages:
//
//	element/   — element domains, tagged values, ordering capability
//	metrics/   — passive per-run counters and timing
//	trace/     — step model, recorder, replay cursor
//	sorting/   — Bubble, Selection, Insertion, Quick, Merge, Heap, Shell, Counting
//	searching/ — Linear, Binary, DepthFirst, BreadthFirst, Trie
//	arrayview/ — array → tree/list views consumed by DFS/BFS search
//	engine/    — name-keyed façade: RunSort / RunSearch (+Traced), catalog
//
// Quick example:
//
//	vals := element.FromInts([]int{5, 2, 4, 1})
//	res, err := engine.RunSortTraced(vals, "bubble", element.Ordinal)
//	// res.Values  → 1 2 4 5
//	// res.Metrics → comparisons, moves, accesses, elapsed time
//	// res.Trace   → INIT … COMPARE/SWAP … COMPLETE
//
// See each package's doc.go for contracts, complexity, and usage.
package algoviz
