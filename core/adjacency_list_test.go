package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
)

func TestAdjacencyList_AddNodeIdempotent(t *testing.T) {
	g := core.New[string]()
	g.AddNode("A")
	g.AddNode("B")
	g.AddNode("A") // duplicate must not reorder or duplicate

	assert.Equal(t, []string{"A", "B"}, g.Nodes())
	assert.Equal(t, 2, g.NodeCount())
}

func TestAdjacencyList_AddEdgeCreatesEndpoints(t *testing.T) {
	g := core.New[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	assert.True(t, g.HasNode(1))
	assert.True(t, g.HasNode(3))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, nbs, "neighbors must keep edge-insertion order")
}

func TestAdjacencyList_DirectedByDefault(t *testing.T) {
	g := core.New[int]()
	g.AddEdge(1, 2)

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Empty(t, nbs, "directed graph must not mirror arcs")
}

func TestAdjacencyList_Undirected(t *testing.T) {
	g := core.New(core.WithUndirected[string]())
	g.AddEdge("A", "B")

	nbsA, err := g.Neighbors("A")
	require.NoError(t, err)
	nbsB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbsA)
	assert.Equal(t, []string{"A"}, nbsB)
	assert.Equal(t, 1, g.EdgeCount(), "mirrored arc counts as one edge")
}

func TestAdjacencyList_SelfLoopNotMirrored(t *testing.T) {
	g := core.New(core.WithUndirected[int]())
	g.AddEdge(7, 7)

	nbs, err := g.Neighbors(7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, nbs, "self-loop must appear exactly once")
}

func TestAdjacencyList_NeighborsUnknownNode(t *testing.T) {
	g := core.New[string]()
	g.AddNode("A")

	_, err := g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAdjacencyList_ReturnedSlicesAreCopies(t *testing.T) {
	g := core.New[int]()
	g.AddEdge(1, 2)

	nodes := g.Nodes()
	nodes[0] = 99
	assert.Equal(t, []int{1, 2}, g.Nodes(), "mutating the returned slice must not affect the graph")

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	nbs[0] = 99
	fresh, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, fresh)
}

// TestAdjacencyList_ConcurrentReads ensures concurrent queries do not race.
func TestAdjacencyList_ConcurrentReads(t *testing.T) {
	g := core.New[int]()
	for i := 0; i < 100; i++ {
		g.AddEdge(i, i+1)
	}

	done := make(chan struct{}, 4)
	for w := 0; w < 4; w++ {
		go func() {
			for i := 0; i < 100; i++ {
				_, _ = g.Neighbors(i)
				_ = g.Nodes()
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}
}
