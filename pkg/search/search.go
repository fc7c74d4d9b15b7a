package search

import (
	"fmt"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// Result bundles everything a single traversal produced.
//
// Path runs from start to end inclusive and is empty when end could not be
// reached. Cost is the sum of edge weights along Path.
type Result struct {
	Algorithm Algorithm
	Start     int
	End       int
	History   *History
	Visited   map[int]bool
	Path      []int
	Cost      float64
}

// Reachable reports whether a path to the end vertex was found.
func (r *Result) Reachable() bool { return len(r.Path) > 0 }

// Expansions returns the number of frontier removals performed.
func (r *Result) Expansions() int { return r.History.Len() - 1 }

// Traverse runs alg over g from start, stopping as soon as end is removed
// from the frontier.
//
// Neighbors are discovered in stored neighbor order, so the trace is
// deterministic for a fixed edge-insertion sequence. The history holds one
// step for the initial frontier plus one per frontier removal.
//
// Traverse fails if alg is nil or start is not a vertex of g. An end vertex
// that is absent or disconnected is not an error: the result then has an
// empty path and zero cost.
func Traverse(g *graph.Graph, start, end int, alg Algorithm) (*Result, error) {
	if alg == nil {
		return nil, &InvalidAlgorithmError{}
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("traverse from %d: %w", start, graph.ErrVertexNotFound)
	}

	n := g.VertexCount()
	visited := make(map[int]bool, n)
	for _, v := range g.Vertices() {
		visited[v] = false
	}

	var (
		history   = &History{}
		pred      = newPredecessors(start, n)
		frontier  = alg.newFrontier(n)
		generated = make([]int, 0, n)
		inspected = make([]int, 0, n)
	)

	visited[start] = true
	frontier.push(start)
	generated = append(generated, start)
	history.Append(generated, inspected)

	for frontier.len() > 0 {
		current := frontier.pop()
		if current == end {
			inspected = append(inspected, current)
			history.Append(generated, inspected)
			break
		}

		neighbors, err := g.Neighbors(current)
		if err != nil {
			return nil, fmt.Errorf("expand %d: %w", current, err)
		}
		for _, next := range neighbors {
			if visited[next] {
				continue
			}
			visited[next] = true
			generated = append(generated, next)
			frontier.push(next)
			pred.set(next, current)
		}

		inspected = append(inspected, current)
		history.Append(generated, inspected)
	}

	path := pred.pathTo(end)
	if !visited[end] {
		path = []int{}
	}

	return &Result{
		Algorithm: alg,
		Start:     start,
		End:       end,
		History:   history,
		Visited:   visited,
		Path:      path,
		Cost:      PathCost(g, path),
	}, nil
}

// Run parses name with [ParseAlgorithm] and calls [Traverse].
func Run(g *graph.Graph, start, end int, name string) (*Result, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return Traverse(g, start, end, alg)
}
