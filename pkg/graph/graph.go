package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNotFound is the parent of every lookup failure in this package.
	// Use errors.Is(err, ErrNotFound) to branch on any missing vertex or edge.
	ErrNotFound = errors.New("not found")

	// ErrVertexNotFound is returned by [Graph.RemoveEdge], [Graph.RemoveVertex],
	// [Graph.Neighbors] and [Graph.Degree] when the vertex does not exist.
	ErrVertexNotFound = fmt.Errorf("vertex %w", ErrNotFound)

	// ErrEdgeNotFound is returned by [Graph.RemoveEdge] when both endpoints
	// exist but are not adjacent.
	ErrEdgeNotFound = fmt.Errorf("edge %w", ErrNotFound)
)

// DefaultWeight is the weight used by [Graph.AddUnitEdge].
const DefaultWeight = 1.0

// Pair is an ordered pair of vertex IDs. It keys the weight table and is
// the element type returned by [Graph.Edges].
type Pair struct {
	U, V int
}

// Reverse returns the pair with its endpoints swapped.
func (p Pair) Reverse() Pair { return Pair{U: p.V, V: p.U} }

// Has reports whether id is one of the pair's endpoints.
func (p Pair) Has(id int) bool { return p.U == id || p.V == id }

// String formats the pair as "(u, v)".
func (p Pair) String() string { return fmt.Sprintf("(%d, %d)", p.U, p.V) }

// Graph is an undirected, weighted multigraph keyed by integer vertex IDs.
//
// Vertices are created implicitly by [Graph.AddEdge]. Neighbor lists keep
// edge insertion order and may contain duplicates when the same edge is
// added more than once. The weight table is symmetric: whenever (u, v) is
// recorded, (v, u) is recorded with the same weight.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	adjacency map[int][]int
	weights   map[Pair]float64
	order     []int // vertex enumeration order (first appearance)
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[int][]int),
		weights:   make(map[Pair]float64),
	}
}

// AddEdge adds an undirected edge between u and v with the given weight,
// creating either vertex if absent. v is appended to u's neighbor list and
// u to v's. Calling AddEdge twice for the same pair creates a parallel edge;
// the weight table keeps the most recent weight for the pair.
//
// Self loops and negative weights are accepted without validation.
func (g *Graph) AddEdge(u, v int, weight float64) {
	g.ensureVertex(u)
	g.ensureVertex(v)
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.weights[Pair{u, v}] = weight
	g.weights[Pair{v, u}] = weight
}

// AddUnitEdge adds an edge of [DefaultWeight].
func (g *Graph) AddUnitEdge(u, v int) { g.AddEdge(u, v, DefaultWeight) }

func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = []int{}
	g.order = append(g.order, id)
}

// RemoveEdge removes one occurrence of the edge u-v.
//
// Returns ErrVertexNotFound if u or v is absent and ErrEdgeNotFound if they
// are not adjacent. Exactly one occurrence of v is removed from u's list and
// one of u from v's.
//
// Unlike a plain removal, the weight entries survive while a parallel
// occurrence of u-v remains, so HasEdge and Weight always agree. Both
// entries are deleted with the last occurrence. Callers of Weights see
// a removed parallel edge's pair until then.
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("remove edge (%d, %d): %w: %d", u, v, ErrVertexNotFound, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("remove edge (%d, %d): %w: %d", u, v, ErrVertexNotFound, v)
	}
	i := slices.Index(g.adjacency[u], v)
	if i < 0 {
		return fmt.Errorf("remove edge (%d, %d): %w", u, v, ErrEdgeNotFound)
	}
	g.adjacency[u] = slices.Delete(g.adjacency[u], i, i+1)
	if j := slices.Index(g.adjacency[v], u); j >= 0 {
		g.adjacency[v] = slices.Delete(g.adjacency[v], j, j+1)
	}
	if !slices.Contains(g.adjacency[u], v) {
		delete(g.weights, Pair{u, v})
		delete(g.weights, Pair{v, u})
	}
	return nil
}

// RemoveVertex deletes u, every occurrence of u in other neighbor lists and
// both weight entries of every incident edge.
// Returns ErrVertexNotFound if u is absent.
func (g *Graph) RemoveVertex(u int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("remove vertex %d: %w", u, ErrVertexNotFound)
	}
	delete(g.adjacency, u)
	g.order = slices.DeleteFunc(g.order, func(id int) bool { return id == u })
	for _, id := range g.order {
		if !slices.Contains(g.adjacency[id], u) {
			continue
		}
		g.adjacency[id] = slices.DeleteFunc(g.adjacency[id], func(n int) bool { return n == u })
		delete(g.weights, Pair{id, u})
		delete(g.weights, Pair{u, id})
	}
	delete(g.weights, Pair{u, u})
	return nil
}

// HasVertex reports whether id is a vertex of the graph.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	return slices.Contains(g.adjacency[u], v)
}

// Weight returns the weight recorded for the pair (u, v).
func (g *Graph) Weight(u, v int) (float64, bool) {
	w, ok := g.weights[Pair{u, v}]
	return w, ok
}

// Weights returns a copy of the weight table. Both orientations of every
// edge are present.
func (g *Graph) Weights() map[Pair]float64 { return maps.Clone(g.weights) }

// Vertices returns the vertex IDs in first-appearance order. The order is
// stable for a given sequence of mutations.
func (g *Graph) Vertices() []int { return slices.Clone(g.order) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns len(g.Edges()).
func (g *Graph) EdgeCount() int { return len(g.Edges()) }

// Edges returns every undirected edge once, oriented as first encountered
// while walking vertices and their neighbor lists in order. A pair is
// skipped when its reverse has already been emitted.
func (g *Graph) Edges() []Pair {
	var edges []Pair
	emitted := make(map[Pair]bool)
	for _, u := range g.order {
		for _, v := range g.adjacency[u] {
			p := Pair{u, v}
			if emitted[p.Reverse()] {
				continue
			}
			emitted[p] = true
			edges = append(edges, p)
		}
	}
	return edges
}

// Neighbors returns a copy of u's neighbor list in edge insertion order.
// Returns ErrVertexNotFound if u is absent.
func (g *Graph) Neighbors(u int) ([]int, error) {
	n, ok := g.adjacency[u]
	if !ok {
		return nil, fmt.Errorf("neighbors of %d: %w", u, ErrVertexNotFound)
	}
	return slices.Clone(n), nil
}

// Degree returns the length of u's neighbor list, counting parallel edges.
// Returns ErrVertexNotFound if u is absent.
func (g *Graph) Degree(u int) (int, error) {
	n, ok := g.adjacency[u]
	if !ok {
		return 0, fmt.Errorf("degree of %d: %w", u, ErrVertexNotFound)
	}
	return len(n), nil
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adjacency: make(map[int][]int, len(g.adjacency)),
		weights:   maps.Clone(g.weights),
		order:     slices.Clone(g.order),
	}
	for id, n := range g.adjacency {
		c.adjacency[id] = slices.Clone(n)
	}
	return c
}
