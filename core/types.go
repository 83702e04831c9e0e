// This file declares the Graph contract, sentinel errors, and the
// construction options for AdjacencyList.

package core

import "errors"

// ErrNodeNotFound indicates a neighbor lookup referenced a node that is
// not part of the graph.
var ErrNodeNotFound = errors.New("core: node not found")

// Graph is the read-only capability set traversals operate on.
//
// N is the node identifier type; it must be comparable so traversals can
// track visitation in a set.
type Graph[N comparable] interface {
	// Nodes returns every node of the graph in its native order.
	// The returned slice is owned by the caller.
	Nodes() []N

	// Neighbors returns the outbound neighbors of n in deterministic
	// order. Implementations report unknown nodes with an error wrapping
	// ErrNodeNotFound. The returned slice is owned by the caller.
	Neighbors(n N) ([]N, error)
}

// Option configures an AdjacencyList before first use.
type Option[N comparable] func(*AdjacencyList[N])

// WithUndirected mirrors every future AddEdge(from, to) with the reverse
// arc to→from. By default the adjacency list is directed.
func WithUndirected[N comparable]() Option[N] {
	return func(g *AdjacencyList[N]) { g.undirected = true }
}
