// Package graph provides the in-memory undirected graph that graphwalk
// searches.
//
// # Overview
//
// A [Graph] is a weighted multigraph keyed by integer vertex IDs. It is a
// pure data structure: vertices appear the first time they are named by
// [Graph.AddEdge] and disappear through [Graph.RemoveVertex]. There is no
// separate "create vertex" operation.
//
//	g := graph.New()
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(2, 3, 2)
//	g.AddEdge(1, 3, 5)
//
// # Ordering
//
// Neighbor lists keep edge insertion order and vertices keep first-appearance
// order. Search algorithms discover neighbors in this order, so a fixed
// construction sequence always yields the same traversal trace.
//
// # Weights
//
// Weights live in a table keyed by ordered [Pair]. The table is symmetric:
// adding u-v records both (u, v) and (v, u), and every removal deletes both
// entries. Search algorithms in this module ignore weights while exploring
// and only sum them afterwards to report a path cost.
//
// # Matrices
//
// [Graph.AdjacencyMatrix] and [Graph.IncidenceMatrix] are indexed by the
// current [Graph.Vertices] and [Graph.Edges] enumeration. The order is stable
// for a given graph but changes as the graph is mutated.
//
// # Errors
//
// Lookups on a missing vertex or edge return errors wrapping [ErrNotFound]:
// [ErrVertexNotFound] or [ErrEdgeNotFound].
package graph
