// Package search runs uninformed traversals over a [graph.Graph] and records
// a step-by-step trace of the frontier.
//
// # Algorithms
//
// [DepthFirst] and [BreadthFirst] share one frontier-search loop and differ
// only in which discovered vertex is expanded next: the newest (LIFO) or the
// oldest (FIFO). Edge weights never influence the order; they are summed
// afterwards to price the reconstructed path.
//
//	alg, err := search.ParseAlgorithm("bfs")
//	if err != nil {
//	    return err
//	}
//	res, err := search.Traverse(g, 1, 3, alg)
//
// # History
//
// Every [Step] in a [History] is an independent snapshot of the generated
// and inspected lists. The first step is taken before any expansion; one
// more is appended per frontier removal, including the removal of the goal.
//
// # Unreachable goals
//
// A goal that cannot be reached is a result, not an error. [Result.Path] is
// then empty, [Result.Cost] is zero and [Result.Reachable] returns false.
package search
