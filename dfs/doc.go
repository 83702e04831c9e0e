// Package dfs implements depth-first search (single-source and forest) over
// any core.Graph, with cancellation, a pre-order hook, depth and neighbor
// limits, and a choice of iterative or recursive engine.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root; DFSAll(g, opts...)
//     covers every disconnected component with one shared visited set
//   - Iterative by default: an explicit stack, so traversal depth is never
//     limited by the call stack
//   - WithRecursive(): recursive engine with identical visitation order
//     (recursion depth bounded by graph depth)
//   - Hooks: OnVisit (pre-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor
//   - Cancellation via context.Context
//
// Determinism:
//
//	Nodes are emitted in pre-order. The iterative engine pushes neighbors in
//	reverse, so after LIFO reversal siblings are visited in the graph's
//	native left-to-right order — the same order the recursive engine
//	produces. For the diamond 0→1, 0→2, 1→3, 1→4 both engines emit
//	[0 1 3 4 2].
//
// Complexity:
//
//   - Time:   O(V + E) for traversal (V = nodes, E = edges), plus hook and
//     filter overhead.
//   - Memory: O(V) for the stack (or recursion) and metadata maps.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on node discovery; error aborts traversal.
//   - WithMaxDepth(limit)       stops descending beyond the given depth (>=0).
//   - WithFilterNeighbor(fn)    filters edges curr→neighbor; return false to skip.
//   - WithRecursive()           switches to the recursive engine.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartNotFound          if the start node's neighbor lookup fails.
//   - ErrNeighbors              if a neighbor lookup fails mid-traversal.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
