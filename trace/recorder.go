package trace

import (
	"github.com/katalvlaran/algoviz/element"
)

// noRange marks the absence of an active sub-range on a step.
const noRange = -1

// Recorder is the append-only step collector for one run.
//
// A nil *Recorder is valid and records nothing, so algorithm bodies call
// Record* unconditionally; an uninstrumented (benchmark) run simply
// passes nil. Every method deep-copies the array argument before
// storing it — the stored snapshot never shares storage with the live
// working array.
type Recorder struct {
	steps []Step
}

// NewRecorder returns an empty Recorder for one instrumented run.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Len returns the number of steps recorded so far (0 on nil).
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}

	return len(r.steps)
}

// Trace returns the recorded step sequence. The returned slice shares
// the recorder's backing store; recording further steps may reallocate
// but never mutates already-returned steps.
func (r *Recorder) Trace() Trace {
	if r == nil {
		return nil
	}

	return Trace(r.steps)
}

// append snapshots values and stores one new step with the next Seq.
func (r *Recorder) append(kind StepKind, values []element.Value, hl []Highlight, lo, hi int, note string) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, Step{
		Seq:        len(r.steps),
		Kind:       kind,
		Snapshot:   element.CloneValues(values),
		Highlights: hl,
		Lo:         lo,
		Hi:         hi,
		Note:       note,
	})
}

// RecordInit records the mandatory first step over the untouched input.
func (r *Recorder) RecordInit(values []element.Value, note string) {
	r.append(Init, values, nil, noRange, noRange, note)
}

// RecordCompare records one routed comparison of positions i and j.
func (r *Recorder) RecordCompare(values []element.Value, i, j int, note string) {
	r.append(Compare, values,
		[]Highlight{{Index: i, Role: RoleCompared}, {Index: j, Role: RoleCompared}},
		noRange, noRange, note)
}

// RecordSwap records an exchange of positions i and j.
// Call after the mutation: the snapshot must reflect post-state.
func (r *Recorder) RecordSwap(values []element.Value, i, j int, note string) {
	r.append(Swap, values,
		[]Highlight{{Index: i, Role: RoleSwapped}, {Index: j, Role: RoleSwapped}},
		noRange, noRange, note)
}

// RecordSet records a single-position write at i.
// Call after the mutation: the snapshot must reflect post-state.
func (r *Recorder) RecordSet(values []element.Value, i int, note string) {
	r.append(Set, values,
		[]Highlight{{Index: i, Role: RoleSet}},
		noRange, noRange, note)
}

// RecordCheck records a search probe of position i.
func (r *Recorder) RecordCheck(values []element.Value, i int, note string) {
	r.append(Check, values,
		[]Highlight{{Index: i, Role: RoleChecked}},
		noRange, noRange, note)
}

// RecordRange records a narrowing search window [lo, hi] with its
// probed midpoint.
func (r *Recorder) RecordRange(values []element.Value, lo, hi, mid int, note string) {
	r.append(Range, values,
		[]Highlight{
			{Index: lo, Role: RoleBoundary},
			{Index: hi, Role: RoleBoundary},
			{Index: mid, Role: RolePivot},
		},
		lo, hi, note)
}

// RecordRegion frames a divide-and-conquer sub-problem over
// [activeLo, activeHi]; indices outside the range are inactive.
// Extra highlighted indices (e.g. a split point) carry RoleBoundary.
func (r *Recorder) RecordRegion(values []element.Value, activeLo, activeHi int, highlighted []int, note string) {
	hl := make([]Highlight, 0, len(highlighted))
	for _, idx := range highlighted {
		hl = append(hl, Highlight{Index: idx, Role: RoleBoundary})
	}
	r.append(Region, values, hl, activeLo, activeHi, note)
}

// RecordFound records the terminal step of a successful search at i.
func (r *Recorder) RecordFound(values []element.Value, i int, note string) {
	r.append(Found, values,
		[]Highlight{{Index: i, Role: RoleFound}},
		noRange, noRange, note)
}

// RecordNotFound records the terminal step of an exhausted search.
func (r *Recorder) RecordNotFound(values []element.Value, note string) {
	r.append(NotFound, values, nil, noRange, noRange, note)
}

// RecordComplete records the terminal step of a sort; every index is
// marked final.
func (r *Recorder) RecordComplete(values []element.Value, note string) {
	hl := make([]Highlight, len(values))
	for i := range values {
		hl[i] = Highlight{Index: i, Role: RoleFinal}
	}
	r.append(Complete, values, hl, noRange, noRange, note)
}
