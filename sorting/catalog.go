package sorting

import "github.com/katalvlaran/algoviz/element"

// Algorithm names as registered in the catalog.
const (
	NameBubble    = "bubble"
	NameSelection = "selection"
	NameInsertion = "insertion"
	NameQuick     = "quick"
	NameMerge     = "merge"
	NameHeap      = "heap"
	NameShell     = "shell"
	NameCounting  = "counting"
)

// bothDomains is the domain set of the generic comparison sorts.
var bothDomains = []element.Domain{element.Ordinal, element.Lexical}

// ordinalOnly is the domain set of the numeric-restricted sorts.
var ordinalOnly = []element.Domain{element.Ordinal}

// catalog is the static descriptor table; never mutated after init.
var catalog = []Descriptor{
	{Name: NameBubble, Time: "O(n^2)", Space: "O(1)", Stable: false, Domains: bothDomains},
	{Name: NameSelection, Time: "O(n^2)", Space: "O(1)", Stable: false, Domains: bothDomains},
	{Name: NameInsertion, Time: "O(n^2)", Space: "O(1)", Stable: true, Domains: bothDomains},
	{Name: NameQuick, Time: "O(n log n)", Space: "O(log n)", Stable: false, Domains: bothDomains},
	{Name: NameMerge, Time: "O(n log n)", Space: "O(n)", Stable: true, Domains: bothDomains},
	{Name: NameHeap, Time: "O(n log n)", Space: "O(1)", Stable: false, Domains: ordinalOnly},
	{Name: NameShell, Time: "O(n^1.5)", Space: "O(1)", Stable: false, Domains: ordinalOnly},
	{Name: NameCounting, Time: "O(n + k)", Space: "O(n + k)", Stable: true, Domains: ordinalOnly},
}

// Catalog returns a copy of the static descriptor table.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)

	return out
}

// Describe returns the descriptor for name, if registered.
func Describe(name string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}
