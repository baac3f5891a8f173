package searching

import (
	"fmt"

	"github.com/katalvlaran/algoviz/arrayview"
	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// DepthFirst searches a derived tree/list view of the array using an
// explicit stack of node identifiers, visiting each node pre-order with
// children in declared order (left before right on a tree view). It
// returns the original-array index of the first matching value, or
// NotFound once every reachable node is exhausted.
//
// The traversal order is fully deterministic: children are pushed in
// reverse so the first-declared child pops first.
//
// Supports Ordinal and Lexical domains.
//
// Complexity: O(n) time, O(n) stack worst case.
func DepthFirst(view arrayview.View, target element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) (int, error) {
	o, err := parseOptions(opts)
	if err != nil {
		return NotFound, err
	}
	if view == nil {
		return NotFound, ErrNilView
	}
	values := view.Values()
	if err = validateRun(values, target, cmp, element.Ordinal, element.Lexical); err != nil {
		return NotFound, err
	}
	rec := o.Recorder

	m.Start()
	defer m.Stop()

	rec.RecordInit(values, fmt.Sprintf("depth-first search for %s", target))

	root := view.Root()
	if root == arrayview.NoNode {
		rec.RecordNotFound(values, "view is empty")

		return NotFound, nil
	}

	visited := make([]bool, view.Len())
	stack := []int{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true

		ord := probe(values, cmp, m, node, target)
		rec.RecordCheck(values, node,
			fmt.Sprintf("visit node %d: %s", node, values[node]))
		if ord == element.Equal {
			rec.RecordFound(values, node,
				fmt.Sprintf("found %s at position %d", target, node))

			return node, nil
		}

		// push in reverse so the first child pops first
		kids := view.Children(node)
		for i := len(kids) - 1; i >= 0; i-- {
			if !visited[kids[i]] {
				stack = append(stack, kids[i])
			}
		}
	}

	rec.RecordNotFound(values, fmt.Sprintf("traversal exhausted, %s is not present", target))

	return NotFound, nil
}
