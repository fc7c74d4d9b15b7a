// Package pkg holds the graphwalk libraries.
//
// # Overview
//
// graphwalk runs uninformed searches (depth-first and breadth-first) over
// small undirected weighted graphs and records every iteration, so a
// search can be replayed and inspected. The packages are:
//
//  1. [graph] - adjacency-list graph with weights and matrix views
//  2. [search] - DFS/BFS traversal, step history and path recovery
//  3. [maze] - grid positions and maze heuristics
//  4. [io] - text and JSON graph formats, result export
//  5. [render] - console reports and Graphviz diagrams
//  6. [pipeline] - orchestration (load → traverse → render)
//  7. [cache], [config], [errors], [observability] - supporting infrastructure
//
// # Architecture
//
//	graph file (.txt / .json)
//	         ↓
//	    [io] package (parse into a graph)
//	         ↓
//	    [search] package (traverse, record history)
//	         ↓
//	    [render] package (report, DOT, SVG/PNG/PDF)
//
// # Quick Start
//
//	g, err := io.Import("maze.txt")
//	if err != nil {
//		return err
//	}
//	res, err := search.Run(g, 1, 9, "bfs")
//	if err != nil {
//		return err
//	}
//	report.Write(os.Stdout, g, res, report.Options{})
//
// The [pipeline] package wraps these steps with validation, caching of
// rendered diagrams and observability hooks.
//
// [graph]: github.com/matzehuels/graphwalk/pkg/graph
// [search]: github.com/matzehuels/graphwalk/pkg/search
// [maze]: github.com/matzehuels/graphwalk/pkg/maze
// [io]: github.com/matzehuels/graphwalk/pkg/io
// [render]: github.com/matzehuels/graphwalk/pkg/render
// [pipeline]: github.com/matzehuels/graphwalk/pkg/pipeline
// [cache]: github.com/matzehuels/graphwalk/pkg/cache
// [config]: github.com/matzehuels/graphwalk/pkg/config
// [errors]: github.com/matzehuels/graphwalk/pkg/errors
// [observability]: github.com/matzehuels/graphwalk/pkg/observability
package pkg
