// Package bfs provides breadth-first search over any core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state. One walker may serve several
// traversal roots (BFSAll) while sharing a single visited set.
type walker[N comparable] struct {
	graph   core.Graph[N]
	opts    Options[N]
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// The visitor (OnVisit) fires exactly once per reachable node, in
// non-decreasing distance from start; ties between equal-depth nodes
// follow the graph's native neighbor order.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS[N comparable](g core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	// Validate the start node via the graph's own lookup.
	if _, err = g.Neighbors(start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, err)
	}

	// Seed queue with the start node (no parent) and drain it.
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// BFSAll runs breadth-first search over every component of g: it scans
// g.Nodes() in native order and launches a fresh traversal from each node
// not yet visited by a prior one, sharing a single visited set.
// Every node is visited exactly once.
func BFSAll[N comparable](g core.Graph[N], opts ...Option[N]) (*Result[N], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	for _, n := range g.Nodes() {
		if w.visited[n] {
			continue
		}
		// Each component root restarts at depth 0 with no parent.
		w.enqueue(n, 0, n, false)
		if err = w.loop(); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// newWalker validates g and opts and prepares shared traversal state.
func newWalker[N comparable](g core.Graph[N], opts []Option[N]) (*walker[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(g.Nodes())

	return &walker[N]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}, nil
}

// enqueue marks n visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. Marking at enqueue time prevents duplicate
// enqueuing of a node reachable along several frontier edges.
func (w *walker[N]) enqueue(n N, d int, parent N, hasParent bool) {
	w.visited[n] = true
	w.res.Depth[n] = d
	if hasParent {
		w.res.Parent[n] = parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	neighbors, err := w.graph.Neighbors(item.node)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.node, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.node, true)
		}
	}

	return nil
}
