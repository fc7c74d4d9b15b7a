package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjacencyMatrix(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	want := [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}
	assert.Equal(t, want, g.AdjacencyMatrix())
}

func TestAdjacencyMatrix_Empty(t *testing.T) {
	assert.Empty(t, New().AdjacencyMatrix())
}

func TestIncidenceMatrix(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(1, 3, 1)

	// Edges: (1,2), (1,3), (2,3)
	want := [][]int{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	}
	assert.Equal(t, want, g.IncidenceMatrix())
}

func TestAdjacencyList_DeepCopy(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, 1)

	l := g.AdjacencyList()
	assert.Equal(t, map[int][]int{1: {2}, 2: {1}}, l)

	l[1][0] = 5
	n, _ := g.Neighbors(1)
	assert.Equal(t, []int{2}, n)
}

func TestIncidenceList(t *testing.T) {
	g := New()
	g.AddEdge(4, 5, 1)
	g.AddEdge(5, 6, 1)

	assert.Equal(t, map[int]Pair{0: {4, 5}, 1: {5, 6}}, g.IncidenceList())
}
