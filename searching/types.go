// Package searching defines options, sentinel errors, and descriptors
// for the instrumented searching algorithms.
package searching

import (
	"errors"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/trace"
)

// NotFound is the index reported when the target is absent.
// Not-found is a valid outcome: the accompanying error is nil.
const NotFound = -1

// Sentinel errors for searching execution.
var (
	// ErrNilComparator is returned when no ordering capability is supplied.
	ErrNilComparator = errors.New("searching: comparator is nil")

	// ErrNilView is returned when a graph-style search receives a nil view.
	ErrNilView = errors.New("searching: view is nil")

	// ErrUnsupportedDomain is returned when an algorithm is invoked on an
	// element domain it does not support.
	ErrUnsupportedDomain = errors.New("searching: algorithm does not support this element domain")

	// ErrUnsorted is returned by Binary when the input is not ascending.
	ErrUnsorted = errors.New("searching: binary search requires sorted input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("searching: invalid option supplied")
)

// Option configures optional run behavior via functional arguments.
type Option func(*Options)

// Options holds per-run parameters.
type Options struct {
	// Recorder, if non-nil, receives one step per recorded operation.
	Recorder *trace.Recorder

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Recorder: nil, err: nil}
}

// WithRecorder enables trace recording into rec.
func WithRecorder(rec *trace.Recorder) Option {
	return func(o *Options) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}

// Descriptor is the static catalog entry for one searching algorithm.
// Never mutated after construction.
type Descriptor struct {
	// Name is the registry key, lower-case ("linear", "binary", …).
	Name string

	// Time and Space are the declared complexity strings.
	Time  string
	Space string

	// RequiresSorted reports whether the algorithm demands ascending input.
	RequiresSorted bool

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
