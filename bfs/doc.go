// Package bfs provides breadth-first search over any core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from its traversal root
//   - Parent: map from node → its predecessor in the BFS tree
//   - BFSAll covers every component: it scans the node set in native order
//     and restarts from each node a prior traversal did not reach, sharing
//     one visited set, so every node is visited exactly once.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Foundation for reachability, matching, and other graph algorithms.
//
// Determinism
//
//	BFS enqueues neighbors in the exact order the Graph yields them, and a
//	node is marked visited the moment it is enqueued, so the visit sequence
//	is fully reproducible and free of duplicates.
//
// Contract
//
//	The visitor may carry arbitrary side effects but must not mutate the
//	graph's topology mid-traversal; the graph is borrowed read-only for the
//	duration of the call.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(g, start)
//		if err != nil {
//	      // handle one of:
//	      // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ErrNeighbors, or hook errors
//		}
//
//		// Whole graph, including disconnected components:
//		result, err := bfs.BFSAll(g)
//
//		// With functional options:
//		result, err := bfs.BFS(
//		    g, start,
//		    bfs.WithContext[string](ctx),
//		    bfs.WithMaxDepth[string](3),
//		    bfs.WithOnVisit(func(n string, depth int) error { /* ... */ return nil }),
//		)
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrStartNotFound     if the start node's neighbor lookup fails.
//   - ErrOptionViolation   if an invalid Option was supplied (e.g. negative MaxDepth).
//   - ErrNeighbors         if core.Graph.Neighbors fails mid-traversal.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
