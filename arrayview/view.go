// Package arrayview converts flat value arrays into traversable
// tree and list shapes for graph-style search.
package arrayview

import "github.com/katalvlaran/algoviz/element"

// NoNode is the identifier returned by Root for an empty view.
const NoNode = -1

// View exposes an array as a traversable node structure. Node
// identifiers are the original array indices.
type View interface {
	// Len returns the number of nodes.
	Len() int

	// Root returns the entry node, or NoNode for an empty view.
	Root() int

	// Children returns the child node identifiers of i, in traversal
	// order. Out-of-range identifiers have no children.
	Children(i int) []int

	// Values returns the backing array. Read-only for traversers.
	Values() []element.Value
}

// TreeView presents the array as an implicit complete binary tree:
// node i's children are 2i+1 and 2i+2 (heap numbering), the root is
// index 0. Every index is reachable, so a traversal visits the whole
// array exactly once.
type TreeView struct {
	values []element.Value
}

// NewTreeView wraps values in a complete-binary-tree view.
// The view aliases values; it does not copy.
func NewTreeView(values []element.Value) *TreeView {
	return &TreeView{values: values}
}

// Len returns the number of nodes.
func (t *TreeView) Len() int { return len(t.values) }

// Root returns index 0, or NoNode when the view is empty.
func (t *TreeView) Root() int {
	if len(t.values) == 0 {
		return NoNode
	}

	return 0
}

// Children returns the in-range heap children of i, left before right.
func (t *TreeView) Children(i int) []int {
	if i < 0 || i >= len(t.values) {
		return nil
	}
	kids := make([]int, 0, 2)
	if left := 2*i + 1; left < len(t.values) {
		kids = append(kids, left)
	}
	if right := 2*i + 2; right < len(t.values) {
		kids = append(kids, right)
	}

	return kids
}

// Values returns the backing array.
func (t *TreeView) Values() []element.Value { return t.values }

// ListView presents the array as a singly linked chain: node i's only
// child is i+1. Traversing it, depth-first or breadth-first alike,
// reproduces left-to-right array order.
type ListView struct {
	values []element.Value
}

// NewListView wraps values in a linked-chain view.
// The view aliases values; it does not copy.
func NewListView(values []element.Value) *ListView {
	return &ListView{values: values}
}

// Len returns the number of nodes.
func (l *ListView) Len() int { return len(l.values) }

// Root returns index 0, or NoNode when the view is empty.
func (l *ListView) Root() int {
	if len(l.values) == 0 {
		return NoNode
	}

	return 0
}

// Children returns the successor of i, if any.
func (l *ListView) Children(i int) []int {
	if next := i + 1; next > 0 && next < len(l.values) {
		return []int{next}
	}

	return nil
}

// Values returns the backing array.
func (l *ListView) Values() []element.Value { return l.values }
