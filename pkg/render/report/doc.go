// Package report prints traversal results for the console.
//
// [Write] lists the graph size, the origin and destination vertices, one
// table row per recorded step with its generated and inspected vertices,
// then the path ("1 -> 3 -> 4") and its cost. An unreachable goal prints
// [NoPath] and a cost of 0.
//
// Colors follow the output: writing to a terminal is styled, writing to a
// file or buffer produces plain text.
package report
