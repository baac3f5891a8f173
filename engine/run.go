package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/trace"
)

// RunSort sorts an owned copy of values with the named algorithm,
// without tracing. Used by comparison/benchmark collaborators.
func RunSort(values []element.Value, algorithm string, domain element.Domain) (*SortResult, error) {
	return runSort(values, algorithm, domain, nil)
}

// RunSortTraced sorts an owned copy of values with the named algorithm
// and records the full step sequence. Inputs over MaxTracedElements are
// rejected with ErrTooLarge.
func RunSortTraced(values []element.Value, algorithm string, domain element.Domain) (*SortResult, error) {
	if len(values) > MaxTracedElements {
		return nil, fmt.Errorf("%w: %d elements, ceiling %d", ErrTooLarge, len(values), MaxTracedElements)
	}

	return runSort(values, algorithm, domain, trace.NewRecorder())
}

// runSort is the shared sorting path: validate, clone, dispatch.
func runSort(values []element.Value, algorithm string, domain element.Domain, rec *trace.Recorder) (*SortResult, error) {
	name := strings.ToLower(algorithm)
	fn, ok := sortRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: sort %q", ErrUnknownAlgorithm, algorithm)
	}
	if err := element.Homogeneous(values, domain); err != nil {
		return nil, err
	}

	working := element.CloneValues(values)
	cmp := element.ComparatorFor(domain)
	m := metrics.NewCounter()

	var opts []sorting.Option
	if rec != nil {
		opts = append(opts, sorting.WithRecorder(rec))
	}
	if err := fn(working, cmp, m, opts...); err != nil {
		return nil, err
	}

	res := &SortResult{Values: working, Metrics: m}
	if rec != nil {
		res.Trace = rec.Trace()
	}

	return res, nil
}

// RunSearch looks up target in an owned copy of values with the named
// algorithm, without tracing. Not-found is a valid outcome, not an
// error.
func RunSearch(values []element.Value, algorithm string, domain element.Domain, target element.Value) (*SearchResult, error) {
	return runSearch(values, algorithm, domain, target, nil)
}

// RunSearchTraced looks up target and records the full step sequence.
// Inputs over MaxTracedElements are rejected with ErrTooLarge.
func RunSearchTraced(values []element.Value, algorithm string, domain element.Domain, target element.Value) (*SearchResult, error) {
	if len(values) > MaxTracedElements {
		return nil, fmt.Errorf("%w: %d elements, ceiling %d", ErrTooLarge, len(values), MaxTracedElements)
	}

	return runSearch(values, algorithm, domain, target, trace.NewRecorder())
}

// runSearch is the shared searching path: validate, clone, dispatch.
func runSearch(values []element.Value, algorithm string, domain element.Domain, target element.Value, rec *trace.Recorder) (*SearchResult, error) {
	name := strings.ToLower(algorithm)
	fn, ok := searchRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: search %q", ErrUnknownAlgorithm, algorithm)
	}
	if err := element.Homogeneous(values, domain); err != nil {
		return nil, err
	}

	working := element.CloneValues(values)
	cmp := element.ComparatorFor(domain)
	m := metrics.NewCounter()

	var opts []searching.Option
	if rec != nil {
		opts = append(opts, searching.WithRecorder(rec))
	}
	idx, err := fn(working, target, cmp, m, opts...)
	if err != nil {
		return nil, err
	}

	res := &SearchResult{Index: idx, Found: idx != searching.NotFound, Metrics: m}
	if rec != nil {
		res.Trace = rec.Trace()
	}

	return res, nil
}
