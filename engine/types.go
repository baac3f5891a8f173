// Package engine defines the boundary façade's kinds, results, and
// sentinel errors.
package engine

import (
	"errors"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/trace"
)

// MaxTracedElements is the element ceiling for traced runs. Trace size
// grows with comparisons and swaps — O(n^2) steps for the quadratic
// algorithms — and traces exist for human-paced playback, not bulk work.
const MaxTracedElements = 100

// Sentinel errors for the engine boundary.
var (
	// ErrUnknownAlgorithm is returned when the named algorithm is not in
	// the catalog for the requested kind.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrTooLarge is returned when a traced run exceeds MaxTracedElements.
	ErrTooLarge = errors.New("engine: input too large for a traced run")
)

// Kind selects one of the two algorithm catalogs.
type Kind int

const (
	// Sort selects the sorting catalog.
	Sort Kind = iota
	// Search selects the searching catalog.
	Search
)

// String returns "sort" or "search".
func (k Kind) String() string {
	if k == Search {
		return "search"
	}

	return "sort"
}

// Descriptor is the engine-level catalog entry: the per-package
// descriptors unified under one shape. Static, never mutated.
type Descriptor struct {
	// Name is the registry key passed to Run*.
	Name string

	// Kind reports which catalog the algorithm belongs to.
	Kind Kind

	// Time and Space are the declared complexity strings.
	Time  string
	Space string

	// Stable is meaningful for sorting algorithms only.
	Stable bool

	// RequiresSorted is meaningful for searching algorithms only.
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

// SortResult is the owned outcome of one sorting run.
type SortResult struct {
	// Values is the sorted working copy.
	Values []element.Value

	// Metrics is the run's counter, final at return.
	Metrics *metrics.Counter

	// Trace is the recorded step sequence; nil for untraced runs.
	Trace trace.Trace
}

// SearchResult is the owned outcome of one searching run.
type SearchResult struct {
	// Index is the matched position in the original array order, or
	// searching.NotFound.
	Index int

	// Found reports whether the target was present.
	Found bool

	// Metrics is the run's counter, final at return.
	Metrics *metrics.Counter

	// Trace is the recorded step sequence; nil for untraced runs.
	Trace trace.Trace
}
