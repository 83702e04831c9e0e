// Package core defines the graph contract consumed by the traversal
// packages, plus a deterministic in-memory adjacency list implementing it.
//
// What
//
//   - Graph[N] is the minimal read-only capability set every traversal
//     needs: the set of all nodes, and the outbound neighbors of a node.
//   - Node identifiers are any comparable Go type (ints, strings, small
//     structs) — whatever your domain already uses as a key.
//   - AdjacencyList[N] is a ready-made Graph[N]: nodes iterate in insertion
//     order, neighbors in edge-insertion order, so every traversal over it
//     is fully reproducible.
//
// Why
//
//   - Algorithms stay decoupled from storage: bfs and dfs accept any
//     Graph[N], so you can traverse your own structures (grids, tries,
//     dependency tables) without copying them into ours.
//   - Determinism is a contract, not an accident: the tie-break order of a
//     traversal is exactly the order your Graph yields neighbors.
//
// Concurrency
//
//	AdjacencyList guards its state with a sync.RWMutex, so concurrent
//	readers (multiple traversals) never contend with each other. Callers
//	must not mutate the graph while a traversal borrows it.
//
// Errors:
//
//   - ErrNodeNotFound — Neighbors was asked about a node the graph does
//     not contain. Custom Graph implementations should wrap this sentinel
//     so traversals can classify the failure.
package core
