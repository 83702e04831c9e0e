// Package dfs implements depth-first search (single-source and forest)
// over any core.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// stackItem carries a pending node together with the link that discovered it.
type stackItem[N comparable] struct {
	node      N
	depth     int
	parent    N
	hasParent bool
}

// walker encapsulates state during DFS. One walker may serve several
// traversal roots (DFSAll) while sharing a single visited set.
type walker[N comparable] struct {
	graph core.Graph[N]
	opts  Options[N]
	res   *Result[N]
}

// DFS performs depth-first search on graph g starting from start.
//
// The default engine is iterative (explicit stack) so traversal depth is
// never limited by the call stack; WithRecursive switches to a recursive
// engine with identical visitation order. Nodes are emitted in pre-order,
// and sibling neighbors are visited in the graph's native left-to-right
// order.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input, ErrNeighbors
// for graph failures, or any user-supplied hook or context error.
func DFS[N comparable](g core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	// Validate the start node via the graph's own lookup.
	if _, err = g.Neighbors(start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, err)
	}

	if err = w.traverse(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// DFSAll performs depth-first search over every component of g: it scans
// g.Nodes() in native order and launches a fresh traversal from each node
// not yet visited by a prior one, sharing a single visited set.
// Every node is visited exactly once.
func DFSAll[N comparable](g core.Graph[N], opts ...Option[N]) (*Result[N], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	for _, n := range g.Nodes() {
		if w.res.Visited[n] {
			continue
		}
		if err = w.traverse(n); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// newWalker validates g, applies opts, and prepares shared traversal state.
func newWalker[N comparable](g core.Graph[N], opts []Option[N]) (*walker[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}

	n := len(g.Nodes())
	res := &Result[N]{
		Order:   make([]N, 0, n),
		Depth:   make(map[N]int, n),
		Parent:  make(map[N]N, n),
		Visited: make(map[N]bool, n),
	}

	return &walker[N]{graph: g, opts: o, res: res}, nil
}

// traverse runs one traversal tree rooted at root with the selected engine.
func (w *walker[N]) traverse(root N) error {
	if w.opts.Recursive {
		var zero N
		return w.recurse(root, 0, zero, false)
	}

	return w.iterate(root)
}

// iterate is the default engine: an explicit LIFO stack seeded with root.
// Neighbors are pushed in reverse so that, after LIFO reversal, they are
// visited in the graph's native left-to-right order.
func (w *walker[N]) iterate(root N) error {
	stack := []stackItem[N]{{node: root, depth: 0}}

	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A node may sit on the stack several times; only its first pop counts.
		if w.res.Visited[item.node] {
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}

		nbs, err := w.neighbors(item.node)
		if err != nil {
			return err
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			nbr := nbs[i]
			if !w.descend(item, nbr) {
				continue
			}
			stack = append(stack, stackItem[N]{
				node:      nbr,
				depth:     item.depth + 1,
				parent:    item.node,
				hasParent: true,
			})
		}
	}

	return nil
}

// recurse is the opt-in engine with visitation order identical to iterate.
// Recursion depth is bounded by the depth of the traversal tree.
func (w *walker[N]) recurse(n N, depth int, parent N, hasParent bool) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.res.Visited[n] {
		return nil
	}
	item := stackItem[N]{node: n, depth: depth, parent: parent, hasParent: hasParent}
	if err := w.visit(item); err != nil {
		return err
	}

	nbs, err := w.neighbors(n)
	if err != nil {
		return err
	}
	for _, nbr := range nbs {
		if !w.descend(item, nbr) {
			continue
		}
		if err = w.recurse(nbr, depth+1, n, true); err != nil {
			return err
		}
	}

	return nil
}

// visit marks the node visited, records depth/parent/order, and fires OnVisit.
func (w *walker[N]) visit(item stackItem[N]) error {
	w.res.Visited[item.node] = true
	w.res.Depth[item.node] = item.depth
	if item.hasParent {
		w.res.Parent[item.node] = item.parent
	}
	w.res.Order = append(w.res.Order, item.node)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", item.node, err)
		}
	}

	return nil
}

// neighbors fetches the outbound neighbors of n, wrapping lookup failures.
func (w *walker[N]) neighbors(n N) ([]N, error) {
	nbs, err := w.graph.Neighbors(n)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, n, err)
	}

	return nbs, nil
}

// descend reports whether traversal should continue from item into nbr,
// applying the visited set, the neighbor filter, and the depth limit.
func (w *walker[N]) descend(item stackItem[N], nbr N) bool {
	if w.res.Visited[nbr] {
		return false
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(item.node, nbr) {
		return false
	}
	if w.opts.MaxDepth >= 0 && item.depth+1 > w.opts.MaxDepth {
		return false
	}

	return true
}
