// Package maze provides grid positions and the heuristics an informed
// search uses to price moves through a grid maze.
//
// Four heuristics estimate the cost from a cell to the goal: [Manhattan],
// [Euclidean], [Chebyshev] and [Octile]. [GreaterDiagonalGScore] is
// different in kind: it prices one step between adjacent cells and is
// reached through [Heuristic.StepCost] rather than [Heuristic.Func].
package maze
