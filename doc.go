// Package algokit is a compact library of classic, textbook algorithms —
// graph traversal, searching, sorting, and linear recurrences — written
// with generics over caller-supplied data structures.
//
// 🚀 What is algokit?
//
//	A small, dependency-free library that brings together:
//		• Graph traversal: BFS & DFS, single-source or across all components
//		• Searching: linear scan, binary search, equal-range
//		• Sorting: bubble sort (stable, adaptive) & merge sort (stable)
//		• Sequence generation: Fibonacci-style linear recurrences
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Generic – algorithms operate on your node and element types
//   - Deterministic – traversal order is fully reproducible
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	core/      — the Graph contract plus a deterministic adjacency list
//	bfs/       — breadth-first traversal with hooks and depth limits
//	dfs/       — depth-first traversal, iterative and recursive
//	search/    — linear search, binary search, equal-range
//	sorting/   — bubble sort and merge sort
//	fibonacci/ — iterative linear-recurrence terms
//
// Quick ASCII example:
//
//	    0 ─→ 1 ─→ 3
//	    │    └──→ 4
//	    └──→ 2
//
//	BFS from 0 visits [0 1 2 3 4]; DFS from 0 visits [0 1 3 4 2].
//
// Dive into each package's doc.go for contracts, complexity tables, and
// runnable examples.
//
//	go get github.com/katalvlaran/algokit
package algokit
