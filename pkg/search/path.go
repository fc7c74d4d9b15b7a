package search

import (
	"slices"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// predecessors maps each discovered vertex to the vertex that discovered it.
// The root has no entry in parent; it is identified by the root field.
type predecessors struct {
	root   int
	parent map[int]int
}

func newPredecessors(root int, capacity int) *predecessors {
	return &predecessors{root: root, parent: make(map[int]int, capacity)}
}

func (p *predecessors) set(id, parent int) { p.parent[id] = parent }

// PathFromPredecessors rebuilds the start→end path from a discovery map in
// which parent[v] is the vertex that discovered v and start has no entry.
//
// It returns an empty, non-nil path when end was never discovered or the
// chain does not lead back to start.
func PathFromPredecessors(parent map[int]int, start, end int) []int {
	p := &predecessors{root: start, parent: parent}
	return p.pathTo(end)
}

func (p *predecessors) pathTo(end int) []int {
	path := []int{end}
	for cur := end; cur != p.root; {
		prev, ok := p.parent[cur]
		if !ok || len(path) > len(p.parent)+1 {
			return []int{}
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}

// PathCost sums the stored weight of every consecutive pair in path.
// Paths with fewer than two vertices cost 0. A pair without a recorded
// weight contributes nothing.
func PathCost(g *graph.Graph, path []int) float64 {
	var cost float64
	for i := 0; i+1 < len(path); i++ {
		if w, ok := g.Weight(path[i], path[i+1]); ok {
			cost += w
		}
	}
	return cost
}
