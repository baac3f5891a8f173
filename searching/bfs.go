package searching

import (
	"fmt"

	"github.com/katalvlaran/algoviz/arrayview"
	"github.com/katalvlaran/algoviz/element"
	"github.com/katalvlaran/algoviz/metrics"
)

// BreadthFirst searches a derived tree/list view of the array level by
// level using an explicit queue of node identifiers. It returns the
// original-array index of the first matching value in level order, or
// NotFound once every reachable node is exhausted.
//
// Supports Ordinal and Lexical domains.
//
// Complexity: O(n) time, O(n) queue worst case.
func BreadthFirst(view arrayview.View, target element.Value, cmp element.Comparator, m *metrics.Counter, opts ...Option) (int, error) {
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

	rec.RecordInit(values, fmt.Sprintf("breadth-first search for %s", target))

	root := view.Root()
	if root == arrayview.NoNode {
		rec.RecordNotFound(values, "view is empty")

		return NotFound, nil
	}

	visited := make([]bool, view.Len())
	visited[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		ord := probe(values, cmp, m, node, target)
		rec.RecordCheck(values, node,
			fmt.Sprintf("visit node %d: %s", node, values[node]))
		if ord == element.Equal {
			rec.RecordFound(values, node,
				fmt.Sprintf("found %s at position %d", target, node))

			return node, nil
		}

		for _, kid := range view.Children(node) {
			if !visited[kid] {
				visited[kid] = true
				queue = append(queue, kid)
			}
		}
	}

	rec.RecordNotFound(values, fmt.Sprintf("traversal exhausted, %s is not present", target))

	return NotFound, nil
}
