package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAlgorithm is matched by every error returned for an unknown or
// missing algorithm selector.
var ErrInvalidAlgorithm = errors.New("invalid algorithm")

// InvalidAlgorithmError reports the selector that could not be resolved.
type InvalidAlgorithmError struct {
	Name string
}

// Error implements the error interface.
func (e *InvalidAlgorithmError) Error() string {
	if e.Name == "" {
		return ErrInvalidAlgorithm.Error()
	}
	return fmt.Sprintf("%s %q (expected one of: %s)", ErrInvalidAlgorithm, e.Name, strings.Join(Names(), ", "))
}

// Is makes errors.Is(err, ErrInvalidAlgorithm) succeed.
func (e *InvalidAlgorithmError) Is(target error) bool { return target == ErrInvalidAlgorithm }

// Algorithm selects the frontier discipline of an uninformed search.
//
// The set of algorithms is closed: only [DepthFirst] and [BreadthFirst]
// implement it. Adding a strategy means adding a variant in this package.
type Algorithm interface {
	// Name returns the short selector ("dfs", "bfs").
	Name() string
	// String returns a human-readable name.
	String() string

	newFrontier(capacity int) frontier
}

// DepthFirst expands the most recently discovered vertex first (LIFO).
type DepthFirst struct{}

// Name implements Algorithm.
func (DepthFirst) Name() string { return "dfs" }

// String implements Algorithm.
func (DepthFirst) String() string { return "depth-first search" }

func (DepthFirst) newFrontier(capacity int) frontier {
	return &stack{items: make([]int, 0, capacity)}
}

// BreadthFirst expands the earliest discovered vertex first (FIFO).
type BreadthFirst struct{}

// Name implements Algorithm.
func (BreadthFirst) Name() string { return "bfs" }

// String implements Algorithm.
func (BreadthFirst) String() string { return "breadth-first search" }

func (BreadthFirst) newFrontier(capacity int) frontier {
	return &queue{items: make([]int, 0, capacity)}
}

// Algorithms lists every supported algorithm in selector order.
func Algorithms() []Algorithm {
	return []Algorithm{DepthFirst{}, BreadthFirst{}}
}

// Names returns the selectors accepted by [ParseAlgorithm].
func Names() []string {
	algs := Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name()
	}
	return names
}

// ParseAlgorithm resolves a selector. Matching is case-insensitive and
// accepts the short form ("dfs") or the long form ("depth-first").
// Unknown names return an [*InvalidAlgorithmError].
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first", "depth_first":
		return DepthFirst{}, nil
	case "bfs", "breadth-first", "breadth_first":
		return BreadthFirst{}, nil
	}
	return nil, &InvalidAlgorithmError{Name: name}
}

// frontier holds discovered-but-unexpanded vertices.
type frontier interface {
	push(id int)
	pop() int
	len() int
}

type stack struct{ items []int }

func (s *stack) push(id int) { s.items = append(s.items, id) }

func (s *stack) pop() int {
	last := len(s.items) - 1
	id := s.items[last]
	s.items = s.items[:last]
	return id
}

func (s *stack) len() int { return len(s.items) }

type queue struct {
	items []int
	head  int
}

func (q *queue) push(id int) { q.items = append(q.items, id) }

func (q *queue) pop() int {
	id := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return id
}

func (q *queue) len() int { return len(q.items) - q.head }
