// Package sorting defines options, sentinel errors, and descriptors for
// the instrumented sorting algorithms.
package sorting

import (
	"errors"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/trace"
)

// Sentinel errors for sorting execution.
var (
	// ErrNilComparator is returned when no ordering capability is supplied.
	ErrNilComparator = errors.New("sorting: comparator is nil")

	// ErrUnsupportedDomain is returned when an algorithm is invoked on an
	// element domain it does not support.
	ErrUnsupportedDomain = errors.New("sorting: algorithm does not support this element domain")

	// ErrNonIntegerValue is returned by Counting for fractional values.
	ErrNonIntegerValue = errors.New("sorting: counting sort requires integral values")

	// ErrNegativeValue is returned by Counting for negative values.
	ErrNegativeValue = errors.New("sorting: counting sort requires non-negative values")

	// ErrRangeTooWide is returned by Counting when the value range would
	// dwarf the element count.
	ErrRangeTooWide = errors.New("sorting: counting sort value range too wide for input size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

// Option configures optional run behavior via functional arguments.
type Option func(*Options)

// Options holds per-run parameters: trace recording and, for the
// randomized algorithms, the RNG seed.
type Options struct {
	// Recorder, if non-nil, receives one step per recorded operation.
	// A nil Recorder disables tracing (benchmark mode).
	Recorder *trace.Recorder

	// Seed drives randomized pivot selection in Quick.
	// Seed 0 selects the fixed default seed, so runs are reproducible
	// unless the caller injects entropy explicitly.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with tracing disabled and the
// deterministic default seed.
func DefaultOptions() Options {
	return Options{Recorder: nil, Seed: 0, err: nil}
}

// WithRecorder enables trace recording into rec.
func WithRecorder(rec *trace.Recorder) Option {
	return func(o *Options) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}

// WithSeed sets the RNG seed for randomized pivot selection.
// Seed 0 keeps the deterministic default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// Descriptor is the static catalog entry for one sorting algorithm.
// Never mutated after construction.
type Descriptor struct {
	// Name is the registry key, lower-case ("bubble", "quick", …).
	Name string

	// Time and Space are the declared complexity strings.
	Time  string
	Space string

	// Stable reports whether equal elements keep their input order.
	Stable bool

	// Domains lists the element domains the algorithm supports.
	Domains []element.Domain
}

// Supports reports whether the algorithm accepts domain d.
func (d Descriptor) Supports(dom element.Domain) bool {
	for _, s := range d.Domains {
		if s == dom {
			return true
		}
	}

	return false
}
