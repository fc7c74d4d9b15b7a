// Package io reads and writes graphs and traversal results.
//
// # Text Format
//
// The text format lists the vertex count followed by the cost of every
// pair in the upper triangle of the distance matrix:
//
//	# four vertices
//	4
//	1  5  -1    # d(1,2) d(1,3) d(1,4)
//	2  4        # d(2,3) d(2,4)
//	3           # d(3,4)
//
// Vertices are numbered 1..n and -1 marks an unconnected pair. Values may
// be spread over lines freely; only their order matters. Use [ReadText] or
// [ImportText] to decode and [WriteText] to encode.
//
// # JSON Format
//
// The JSON format lists edges explicitly:
//
//	{
//	  "edges": [
//	    {"from": 1, "to": 2, "weight": 1},
//	    {"from": 2, "to": 3, "weight": 2}
//	  ]
//	}
//
// Use [ReadJSON] and [WriteJSON], or the file-based [ImportJSON] and
// [ExportJSON]. [Import] and [Export] pick a format by file extension.
//
// # Results
//
// [WriteResultJSON] serializes a [search.Result] with its full step
// history so a traversal can be inspected by other tools.
//
// # Errors
//
// Malformed input is reported as a [gwerrors.Error] with code
// INVALID_FORMAT; the message names the offending line where one exists.
// A missing input file has code FILE_NOT_FOUND.
//
// [gwerrors.Error]: github.com/matzehuels/graphwalk/pkg/errors.Error
package io
