// Package nodelink renders graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Pass a traversal result to see the search on top of the graph:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Result: res, Detailed: true})
//
// Path vertices and edges are drawn in [ColorPath], inspected vertices in
// [ColorInspected] and vertices that were discovered but never expanded in
// [ColorGenerated]. Start and end are double circles. With Detailed set,
// inspected vertices carry their expansion order (#1, #2, ...).
//
// # DOT Format
//
// [ToDOT] produces an undirected graph laid out with neato; every edge is
// labeled with its weight. Parallel edges are drawn separately.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
