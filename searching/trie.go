package searching

import (
	"fmt"

	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// trieNode is one prefix-tree node. sampleIndex remembers the first
// original array index whose text passes through the node, so probes
// can highlight a representative element while descending.
type trieNode struct {
	children    map[rune]*trieNode
	sampleIndex int
	terminal    bool
	termIndex   int
}

func newTrieNode(sample int) *trieNode {
	return &trieNode{children: make(map[rune]*trieNode), sampleIndex: sample, termIndex: NotFound}
}

// Trie resolves exact-match membership for a text target: it builds a
// prefix tree over all element texts, then walks the target rune by
// rune. On a full match it returns the index of the first element equal
// to the target; a missing branch or a non-terminal final node reports
// NotFound.
//
// Lexical domain only — a prefix structure has no meaning for numeric
// elements — so an Ordinal comparator returns ErrUnsupportedDomain.
//
// Each rune descent counts as one comparison and one access; building
// the tree counts one access per element.
//
// Complexity: O(total text length) build, O(len(target)) lookup.
func Trie(values []element.Value, target element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) (int, error) {
	o, err := parseOptions(opts)
	if err != nil {
		return NotFound, err
	}
	if err = validateRun(values, target, cmp, element.Lexical); err != nil {
		return NotFound, err
	}
	rec := o.Recorder

	m.Start()
	defer m.Stop()

	rec.RecordInit(values, fmt.Sprintf("prefix-tree search for %q", target.Text()))

	// build phase: insert every element, keeping first-occurrence indices
	root := newTrieNode(NotFound)
	for i, v := range values {
		m.AddAccesses(1)
		node := root
		if node.sampleIndex == NotFound {
			node.sampleIndex = i
		}
		for _, r := range v.Text() {
			next, ok := node.children[r]
			if !ok {
				next = newTrieNode(i)
				node.children[r] = next
			}
			node = next
		}
		if !node.terminal {
			node.terminal = true
			node.termIndex = i
		}
	}

	// lookup phase: walk the target rune by rune
	node := root
	prefix := make([]rune, 0, len(target.Text()))
	for _, r := range target.Text() {
		m.AddComparisons(1)
		m.AddAccesses(1)
		next, ok := node.children[r]
		if !ok {
			rec.RecordNotFound(values,
				fmt.Sprintf("no element continues prefix %q with %q", string(prefix), r))

			return NotFound, nil
		}
		node = next
		prefix = append(prefix, r)
		rec.RecordCheck(values, node.sampleIndex,
			fmt.Sprintf("prefix %q matches, e.g. %s", string(prefix), values[node.sampleIndex]))
	}

	if !node.terminal {
		rec.RecordNotFound(values,
			fmt.Sprintf("%q is a prefix of stored text but not a full element", target.Text()))

		return NotFound, nil
	}

	rec.RecordFound(values, node.termIndex,
		fmt.Sprintf("found %q at position %d", target.Text(), node.termIndex))

	return node.termIndex, nil
}
