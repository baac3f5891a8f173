// Package trace captures a deterministic, replayable sequence of
// visualization-grade execution steps for one algorithm run.
//
// What
//
//   - Step: one immutable moment — an owned snapshot of the working
//     array, an operation kind (Init, Compare, Swap, Set, Check, Range,
//     Found, NotFound, Complete, Region), highlighted indices with
//     semantic roles, an optional active sub-range, and narration.
//   - Recorder: append-only collector. Every Record* method deep-copies
//     the array argument before storing it, so no Step ever aliases the
//     live working array. All methods are nil-safe no-ops on a nil
//     receiver: an uninstrumented run passes a nil *Recorder and the
//     algorithm body stays branch-free.
//   - Trace: the finished ordered step sequence.
//   - Cursor: deterministic forward/backward navigation over a Trace.
//
// Why
//
//	Because every snapshot is an owned point-in-time copy, stepping
//	backward is as safe as stepping forward — replay never reconstructs
//	state by inverting operations, it just reads the stored snapshot.
//
// Recording convention
//
//	RecordSwap and RecordSet must be called after the corresponding
//	mutation, so the stored snapshot reflects post-state. The recorder
//	cannot verify mutation occurred; the convention is enforced by the
//	algorithm implementations and their tests.
//
// Invariants of a well-formed Trace
//
//   - step 0 is Init over the original unmodified input
//   - the last step is Complete (sort) or Found / NotFound (search)
//   - the last snapshot equals the run's actual final output
//   - sequence numbers run 0, 1, 2, … with no gaps
//
// Usage
//
//	rec := trace.NewRecorder()
//	rec.RecordInit(vals, "initial state")
//	// ... algorithm records steps ...
//	rec.RecordComplete(vals, "sorted")
//
//	cur, _ := trace.NewCursor(rec.Trace())
//	for s, ok := cur.Current(), true; ok; s, ok = cur.Forward() {
//	    fmt.Println(s.Seq, s.Kind, s.Note)
//	}
package trace
