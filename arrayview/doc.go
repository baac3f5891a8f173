// Package arrayview derives traversable node structures from a flat
// value array, for the graph-style searching algorithms that do not
// walk the array directly.
//
// What
//
//   - View: the minimal traversal contract — a root node, per-node
//     children, and access to the backing values. Node identifiers are
//     the original array indices, so a search over a view reports
//     positions in the caller's array with no translation step.
//   - TreeView: the implicit complete-binary-tree shape (node i has
//     children 2i+1 and 2i+2), the same numbering a binary heap uses.
//   - ListView: a singly linked chain (node i's only child is i+1).
//
// Why
//
//	Depth-first and breadth-first search are defined over node
//	structures, not flat arrays. Rather than duplicating the algorithms
//	per shape, the conversion lives here and the searchers consume any
//	View — the same convert-then-traverse split gridworld problems use.
//
// Ownership
//
//	A View wraps the slice it is given; it does not copy. The engine
//	hands views its own working copy, so callers building views directly
//	must not mutate the slice mid-traversal.
//
// Complexity
//
//	Construction is O(1); Children is O(1) per node; a full traversal
//	touches each of the n nodes once.
//
// Usage
//
//	view := arrayview.NewTreeView(vals)
//	idx, err := searching.DepthFirst(view, target, cmp, m)
package arrayview
