package engine

import (
	"github.com/katalvlaran/algoviz/arrayview"
	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/sorting"
)

// sortFunc is the uniform sorting entry the registry dispatches to.
type sortFunc func([]element.Value, element.Comparator, *metrics.Counter, ...sorting.Option) error

// searchFunc is the uniform searching entry the registry dispatches to.
// The graph-style searches are adapted here: the registry builds the
// tree view over the working copy before handing off.
type searchFunc func([]element.Value, element.Value, element.Comparator, *metrics.Counter, ...searching.Option) (int, error)

// sortRegistry maps catalog names to sorting implementations.
var sortRegistry = map[string]sortFunc{
	sorting.NameBubble:    sorting.Bubble,
	sorting.NameSelection: sorting.Selection,
	sorting.NameInsertion: sorting.Insertion,
	sorting.NameQuick:     sorting.Quick,
	sorting.NameMerge:     sorting.Merge,
	sorting.NameHeap:      sorting.Heap,
	sorting.NameShell:     sorting.Shell,
	sorting.NameCounting:  sorting.Counting,
}

// searchRegistry maps catalog names to searching implementations.
var searchRegistry = map[string]searchFunc{
	searching.NameLinear: searching.Linear,
	searching.NameBinary: searching.Binary,
	searching.NameDepthFirst: func(values []element.Value, target element.Value, cmp element.Comparator, m *metrics.Counter, opts ...searching.Option) (int, error) {
		return searching.DepthFirst(arrayview.NewTreeView(values), target, cmp, m, opts...)
	},
	searching.NameBreadthFirst: func(values []element.Value, target element.Value, cmp element.Comparator, m *metrics.Counter, opts ...searching.Option) (int, error) {
		return searching.BreadthFirst(arrayview.NewTreeView(values), target, cmp, m, opts...)
	},
	searching.NameTrie: searching.Trie,
}

// ListAlgorithms returns the static catalog for kind, in registration
// order.
func ListAlgorithms(kind Kind) []Descriptor {
	if kind == Search {
		src := searching.Catalog()
		out := make([]Descriptor, len(src))
		for i, d := range src {
			out[i] = Descriptor{
				Name:           d.Name,
				Kind:           Search,
				Time:           d.Time,
				Space:          d.Space,
				RequiresSorted: d.RequiresSorted,
				Domains:        d.Domains,
			}
		}

		return out
	}

	src := sorting.Catalog()
	out := make([]Descriptor, len(src))
	for i, d := range src {
		out[i] = Descriptor{
			Name:    d.Name,
			Kind:    Sort,
			Time:    d.Time,
			Space:   d.Space,
			Stable:  d.Stable,
			Domains: d.Domains,
		}
	}

	return out
}

// Describe returns the engine-level descriptor for one algorithm name.
func Describe(kind Kind, name string) (Descriptor, bool) {
	for _, d := range ListAlgorithms(kind) {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}
