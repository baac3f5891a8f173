// Package trace defines the step model: kinds, highlight roles, the
// immutable Step value, and the Trace sequence.
package trace

import (
	"errors"

	"github.com/katalvlaran/algoviz/element"
)

// Sentinel errors for trace navigation.
var (
	// ErrEmptyTrace is returned when a Cursor is built over zero steps.
	ErrEmptyTrace = errors.New("trace: trace has no steps")

	// ErrStepOutOfRange is returned by Seek for an index outside [0, Len).
	ErrStepOutOfRange = errors.New("trace: step index out of range")
)

// StepKind classifies what happened at one recorded moment.
type StepKind int

const (
	// Init is the mandatory first step: the untouched input.
	Init StepKind = iota
	// Compare marks one routed comparison between two positions.
	Compare
	// Swap marks an exchange of two positions (snapshot is post-swap).
	Swap
	// Set marks a single-position write (snapshot is post-write).
	Set
	// Check marks a search probe of one position.
	Check
	// Range marks a binary-search-style narrowing window with its probe.
	Range
	// Found is the terminal step of a successful search.
	Found
	// NotFound is the terminal step of an exhausted search.
	NotFound
	// Complete is the terminal step of a sort.
	Complete
	// Region frames a divide-and-conquer sub-problem; indices outside
	// the active range are considered inactive.
	Region
)

// String returns the canonical upper-case kind name.
func (k StepKind) String() string {
	switch k {
	case Init:
		return "INIT"
	case Compare:
		return "COMPARE"
	case Swap:
		return "SWAP"
	case Set:
		return "SET"
	case Check:
		return "CHECK"
	case Range:
		return "RANGE"
	case Found:
		return "FOUND"
	case NotFound:
		return "NOT_FOUND"
	case Complete:
		return "COMPLETE"
	case Region:
		return "REGION"
	default:
		return "UNKNOWN"
	}
}

// Role is the semantic meaning of a highlighted index.
type Role int

const (
	// RoleCompared marks a position taking part in a comparison.
	RoleCompared Role = iota
	// RoleSwapped marks a position that was just exchanged.
	RoleSwapped
	// RoleSet marks a position that was just written.
	RoleSet
	// RoleChecked marks a position probed by a search.
	RoleChecked
	// RoleBoundary marks a range endpoint (lo/hi) or region frame.
	RoleBoundary
	// RolePivot marks a pivot or probed midpoint.
	RolePivot
	// RoleFound marks the position where a search succeeded.
	RoleFound
	// RoleFinal marks every position of a terminal snapshot.
	RoleFinal
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleCompared:
		return "compared"
	case RoleSwapped:
		return "swapped"
	case RoleSet:
		return "set"
	case RoleChecked:
		return "checked"
	case RoleBoundary:
		return "boundary"
	case RolePivot:
		return "pivot"
	case RoleFound:
		return "found"
	case RoleFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Highlight pairs an index with the role it plays in a step.
type Highlight struct {
	Index int
	Role  Role
}

// Step is one immutable moment of a run. Fields are exported for
// consumers (renderers, exporters) but must be treated as read-only;
// Snapshot is owned by the Step and never aliases the live array.
type Step struct {
	// Seq is the 0-based, strictly increasing step number.
	Seq int

	// Kind classifies the operation this step records.
	Kind StepKind

	// Snapshot is the full owned copy of the array at this instant.
	Snapshot []element.Value

	// Highlights lists the indices involved and their roles.
	Highlights []Highlight

	// Lo and Hi bound the active sub-range for divide-and-conquer and
	// range-narrowing steps. Both are -1 when no range applies.
	Lo, Hi int

	// Note is free-text narration for human-paced playback.
	Note string
}

// ActiveRange returns the step's active sub-range, if any.
func (s Step) ActiveRange() (lo, hi int, ok bool) {
	if s.Lo < 0 || s.Hi < 0 {
		return 0, 0, false
	}

	return s.Lo, s.Hi, true
}

// Terminal reports whether the step is a legal last step of a trace.
func (s Step) Terminal() bool {
	return s.Kind == Complete || s.Kind == Found || s.Kind == NotFound
}

// Trace is the finished ordered step sequence of one instrumented run.
type Trace []Step

// Len returns the number of recorded steps.
func (t Trace) Len() int { return len(t) }

// First returns step 0. Valid only for non-empty traces.
func (t Trace) First() Step { return t[0] }

// Last returns the final step. Valid only for non-empty traces.
func (t Trace) Last() Step { return t[len(t)-1] }
