package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

// buildTree creates a complete binary tree of the given depth (2^depth−1 nodes).
func buildTree(depth int) *core.AdjacencyList[int] {
	g := core.New[int]()
	maxD := (1 << depth) - 1
	for i := 1; i <= maxD; i++ {
		g.AddNode(i)
		if i > 1 {
			g.AddEdge(i/2, i)
		}
	}

	return g
}

// BenchmarkDFS_Chain measures iterative DFS on a deep linear chain —
// the shape the recursive engine is worst at.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	g := core.New[string]()
	for i := 0; i < N; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "v0")
	}
}

// BenchmarkDFS_Engines compares the iterative and recursive engines on a
// balanced tree, where both are safe.
func BenchmarkDFS_Engines(b *testing.B) {
	g := buildTree(12) // 4095 nodes

	b.Run("Iterative", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = dfs.DFS(g, 1)
		}
	})

	b.Run("Recursive", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = dfs.DFS(g, 1, dfs.WithRecursive[int]())
		}
	})
}

// BenchmarkDFSAll_Components measures forest traversal over many small components.
func BenchmarkDFSAll_Components(b *testing.B) {
	g := core.New[int]()
	for c := 0; c < 1000; c++ {
		base := c * 3
		g.AddEdge(base, base+1)
		g.AddEdge(base+1, base+2)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFSAll(g)
	}
}
