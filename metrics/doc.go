// Package metrics provides the passive per-run instrument every algoviz
// algorithm writes into: comparison, move, and access tallies plus a
// monotonic run timer.
//
// What
//
//   - Counter: a mutable accumulator created fresh per run, written only
//     by the running algorithm, read after the run completes (Elapsed may
//     also be read mid-run).
//   - One comparison routed through the ordering capability equals one
//     AddComparisons(1). One element written into the working array
//     equals one move, so a swap tallies two moves. One element read or
//     written equals one access.
//
// Why
//
//	No algorithm inspects its own metrics; the Counter is an external
//	observer. Keeping it passive (purely additive state, no I/O, no
//	callbacks) means instrumentation can never change an algorithm's
//	behavior or step sequence.
//
// Concurrency
//
//	A Counter belongs to exactly one run and is not synchronized; runs
//	that execute in parallel each own their own Counter, so there is
//	nothing to lock.
//
// Usage
//
//	m := metrics.NewCounter()
//	m.Start()
//	// ... algorithm tallies via AddComparisons / AddMoves / AddAccesses
//	m.Stop()
//	fmt.Println(m.Comparisons(), m.Moves(), m.Accesses(), m.Elapsed())
package metrics
