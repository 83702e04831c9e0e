// Package dfs defines types and options for depth-first search traversal,
// including cancellation, a pre-order visit hook, depth limiting, neighbor
// filtering, and an opt-in recursive engine.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or DFSAll.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node's neighbor lookup
	// failed; it wraps the graph's own lookup error.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...) or DFSAll(g, opts...).
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n N, depth int) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor
	// before descending. Return true to descend, false to skip it.
	FilterNeighbor func(curr, neighbor N) bool

	// Recursive, if true, runs the recursive engine instead of the explicit
	// stack. Visitation order is identical; recursion depth is bounded by
	// the graph depth. Default is false (iterative).
	Recursive bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Iterative engine (Recursive = false)
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		Recursive:      false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called exactly once per reachable node, when it is first
// discovered.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges curr→neighbor.
// If fn returns false, that neighbor is not descended into.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		o.FilterNeighbor = fn
	}
}

// WithRecursive returns an Option that switches to the recursive engine.
// The visitation order is identical to the iterative default; prefer the
// default when the graph depth may exceed the call-stack budget.
func WithRecursive[N comparable]() Option[N] {
	return func(o *Options[N]) {
		o.Recursive = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N comparable] struct {
	// Order records nodes in the sequence they were discovered (pre-order).
	Order []N

	// Depth maps each node to its distance (#edges) from its traversal root.
	Depth map[N]int

	// Parent maps each node to the node from which it was first discovered.
	// Traversal roots carry no entry.
	Parent map[N]N

	// Visited flags which nodes were reached during the traversal.
	Visited map[N]bool
}
