package maze

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownHeuristic is returned when a name matches no heuristic.
	ErrUnknownHeuristic = errors.New("unknown heuristic")
	// ErrNotDistance is returned when a step-cost heuristic is requested
	// as a goal-distance estimate, or the reverse.
	ErrNotDistance = errors.New("not a distance heuristic")
)

// Scale multiplies orthogonal distances so they match the integer step
// costs used by [GreaterDiagonalGScore].
const Scale = 3

const (
	orthogonalStepCost = 5
	diagonalStepCost   = 7
)

// DistanceFunc estimates the cost of reaching goal from start.
type DistanceFunc func(start, goal Position) int

// StepCostFunc prices a single move between adjacent cells.
type StepCostFunc func(current, neighbor Position) int

// Manhattan returns (|Δrow| + |Δcol|) scaled by [Scale].
func Manhattan(start, goal Position) int {
	d := goal.Sub(start).Abs()
	return (d.DRow + d.DCol) * Scale
}

// Euclidean returns the straight-line distance scaled by [Scale] and
// floored.
func Euclidean(start, goal Position) int {
	d := goal.Sub(start)
	return int(math.Floor(math.Hypot(float64(d.DRow), float64(d.DCol)) * Scale))
}

// Chebyshev returns max(|Δrow|, |Δcol|), unscaled.
func Chebyshev(start, goal Position) int {
	d := goal.Sub(start).Abs()
	return max(d.DRow, d.DCol)
}

// Octile returns dx + dy + (√2 - 2)·min(dx, dy), floored.
func Octile(start, goal Position) int {
	d := goal.Sub(start).Abs()
	dx, dy := float64(d.DRow), float64(d.DCol)
	return int(math.Floor(dx + dy + (math.Sqrt2-2)*min(dx, dy)))
}

// GreaterDiagonalGScore is the cost of stepping from current to neighbor:
// 5 for an orthogonal move and 7 otherwise.
func GreaterDiagonalGScore(current, neighbor Position) int {
	if neighbor.Sub(current).IsOrthogonalStep() {
		return orthogonalStepCost
	}
	return diagonalStepCost
}

// Heuristic names one of the grid heuristics.
type Heuristic string

const (
	HeuristicManhattan             Heuristic = "manhattan"
	HeuristicEuclidean             Heuristic = "euclidean"
	HeuristicChebyshev             Heuristic = "chebyshev"
	HeuristicOctile                Heuristic = "octile"
	HeuristicGreaterDiagonalGScore Heuristic = "greater_diagonal_g_score"
)

var distances = map[Heuristic]DistanceFunc{
	HeuristicManhattan: Manhattan,
	HeuristicEuclidean: Euclidean,
	HeuristicChebyshev: Chebyshev,
	HeuristicOctile:    Octile,
}

// Heuristics lists every named heuristic, distance estimates first.
func Heuristics() []Heuristic {
	return append(Distances(), HeuristicGreaterDiagonalGScore)
}

// Distances lists the heuristics that estimate cost-to-goal.
func Distances() []Heuristic {
	return []Heuristic{HeuristicManhattan, HeuristicEuclidean, HeuristicChebyshev, HeuristicOctile}
}

// ParseHeuristic resolves a name case-insensitively. Hyphens and
// underscores are interchangeable.
func ParseHeuristic(name string) (Heuristic, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, h := range Heuristics() {
		if string(h) == key {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// IsDistance reports whether h estimates cost-to-goal.
func (h Heuristic) IsDistance() bool {
	_, ok := distances[h]
	return ok
}

// Func returns the distance function for h.
func (h Heuristic) Func() (DistanceFunc, error) {
	if f, ok := distances[h]; ok {
		return f, nil
	}
	if h == HeuristicGreaterDiagonalGScore {
		return nil, fmt.Errorf("%s: %w", h, ErrNotDistance)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, string(h))
}

// StepCost returns the step-cost function for h.
func (h Heuristic) StepCost() (StepCostFunc, error) {
	if h == HeuristicGreaterDiagonalGScore {
		return GreaterDiagonalGScore, nil
	}
	if h.IsDistance() {
		return nil, fmt.Errorf("%s: %w", h, ErrNotDistance)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, string(h))
}

// Eval applies h to (a, b), dispatching to Func or StepCost as
// appropriate.
func (h Heuristic) Eval(a, b Position) (int, error) {
	if f, err := h.Func(); err == nil {
		return f(a, b), nil
	}
	f, err := h.StepCost()
	if err != nil {
		return 0, err
	}
	return f(a, b), nil
}
