package core

import (
	"fmt"
	"sync"
)

// AdjacencyList is an in-memory, insertion-ordered Graph[N] implementation.
//
// Nodes() yields nodes in the order they were first added; Neighbors(n)
// yields arcs in the order AddEdge recorded them. Both orders are stable
// across calls, which makes every traversal over an AdjacencyList
// reproducible.
//
// All methods are safe for concurrent use. Mutations (AddNode, AddEdge)
// take the write lock; queries take the read lock.
type AdjacencyList[N comparable] struct {
	mu sync.RWMutex

	undirected bool

	nodes   []N              // insertion order
	present map[N]struct{}   // membership
	adj     map[N][]N        // node → outbound neighbors, insertion order
	arcs    int              // arcs recorded via AddEdge (mirror counts once)
}

// New creates an empty AdjacencyList with the given options.
// By default the graph is directed.
// Complexity: O(1).
func New[N comparable](opts ...Option[N]) *AdjacencyList[N] {
	g := &AdjacencyList[N]{
		present: make(map[N]struct{}),
		adj:     make(map[N][]N),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode inserts n into the graph. Adding an existing node is a no-op,
// so the insertion order of the first add is preserved.
// Complexity: O(1) amortized.
func (g *AdjacencyList[N]) AddNode(n N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(n)
}

// AddEdge records the arc from→to, inserting either endpoint first if it
// is not yet present. In undirected mode the reverse arc is mirrored.
// Parallel arcs are kept as-is; traversals deduplicate via their visited set.
// Complexity: O(1) amortized.
func (g *AdjacencyList[N]) AddEdge(from, to N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(from)
	g.addNodeLocked(to)

	g.adj[from] = append(g.adj[from], to)
	if g.undirected && from != to {
		g.adj[to] = append(g.adj[to], from)
	}
	g.arcs++
}

// HasNode reports whether n is part of the graph.
// Complexity: O(1).
func (g *AdjacencyList[N]) HasNode(n N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.present[n]

	return ok
}

// NodeCount returns the number of distinct nodes.
// Complexity: O(1).
func (g *AdjacencyList[N]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges recorded via AddEdge.
// An undirected edge counts once even though both arcs are stored.
// Complexity: O(1).
func (g *AdjacencyList[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs
}

// Nodes returns all nodes in insertion order. The slice is a fresh copy.
// Complexity: O(V).
func (g *AdjacencyList[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Neighbors returns the outbound neighbors of n in edge-insertion order.
// The slice is a fresh copy. Unknown nodes yield ErrNodeNotFound.
// Complexity: O(deg(n)).
func (g *AdjacencyList[N]) Neighbors(n N) ([]N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.present[n]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}
	nbs := g.adj[n]
	out := make([]N, len(nbs))
	copy(out, nbs)

	return out, nil
}

// addNodeLocked inserts n if absent. Callers must hold the write lock.
func (g *AdjacencyList[N]) addNodeLocked(n N) {
	if _, ok := g.present[n]; ok {
		return
	}
	g.present[n] = struct{}{}
	g.nodes = append(g.nodes, n)
}
