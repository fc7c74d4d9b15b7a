package graph

import (
	"maps"
	"slices"
)

// AdjacencyMatrix returns a dense 0/1 matrix indexed by the current
// [Graph.Vertices] order: m[i][j] is 1 when vertex i appears in vertex j's
// neighbor list. Parallel edges and weights are not reflected.
//
// The index order follows the current enumeration; callers must not rely on
// it across mutations.
func (g *Graph) AdjacencyMatrix() [][]int {
	n := len(g.order)
	m := make([][]int, n)
	for i, u := range g.order {
		m[i] = make([]int, n)
		for j, v := range g.order {
			if slices.Contains(g.adjacency[v], u) {
				m[i][j] = 1
			}
		}
	}
	return m
}

// IncidenceMatrix returns a dense 0/1 matrix with one row per vertex (in
// [Graph.Vertices] order) and one column per edge (in [Graph.Edges] order).
// m[i][j] is 1 when vertex i is an endpoint of edge j.
func (g *Graph) IncidenceMatrix() [][]int {
	edges := g.Edges()
	m := make([][]int, len(g.order))
	for i, u := range g.order {
		m[i] = make([]int, len(edges))
		for j, e := range edges {
			if e.Has(u) {
				m[i][j] = 1
			}
		}
	}
	return m
}

// AdjacencyList returns a deep copy of the neighbor lists keyed by vertex.
func (g *Graph) AdjacencyList() map[int][]int {
	out := maps.Clone(g.adjacency)
	for id, n := range out {
		out[id] = slices.Clone(n)
	}
	return out
}

// IncidenceList maps each edge index (in [Graph.Edges] order) to its pair.
func (g *Graph) IncidenceList() map[int]Pair {
	edges := g.Edges()
	out := make(map[int]Pair, len(edges))
	for i, e := range edges {
		out[i] = e
	}
	return out
}
