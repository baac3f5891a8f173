package searching

import "github.com/katalvlaran/algoviz/element"

// Algorithm names as registered in the catalog.
const (
	NameLinear       = "linear"
	NameBinary       = "binary"
	NameDepthFirst   = "dfs"
	NameBreadthFirst = "bfs"
	NameTrie         = "trie"
)

// bothDomains is the domain set of the generic searches.
var bothDomains = []element.Domain{element.Ordinal, element.Lexical}

// lexicalOnly is the domain set of the text-restricted searches.
var lexicalOnly = []element.Domain{element.Lexical}

// catalog is the static descriptor table; never mutated after init.
var catalog = []Descriptor{
	{Name: NameLinear, Time: "O(n)", Space: "O(1)", RequiresSorted: false, Domains: bothDomains},
	{Name: NameBinary, Time: "O(log n)", Space: "O(1)", RequiresSorted: true, Domains: bothDomains},
	{Name: NameDepthFirst, Time: "O(n)", Space: "O(n)", RequiresSorted: false, Domains: bothDomains},
	{Name: NameBreadthFirst, Time: "O(n)", Space: "O(n)", RequiresSorted: false, Domains: bothDomains},
	{Name: NameTrie, Time: "O(L)", Space: "O(total text)", RequiresSorted: false, Domains: lexicalOnly},
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
