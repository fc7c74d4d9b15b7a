package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
)

// NoEdge marks an absent edge in the text format.
const NoEdge = -1

// token is a whitespace-separated field together with its source line.
type token struct {
	text string
	line int
}

// ReadText decodes a graph in the distance-list text format.
//
// The first number is the vertex count n. It is followed by the
// n*(n-1)/2 costs of the upper triangle in row-major order: d(1,2),
// d(1,3), ..., d(1,n), d(2,3), ..., d(n-1,n). A cost of -1 means the pair
// is not connected. Anything after '#' on a line is ignored.
//
//	3
//	1    # 1-2
//	5    # 1-3
//	2    # 2-3
//
// Vertices are numbered 1..n. A vertex with no edges is not part of the
// returned graph, since graphs only hold vertices that carry an edge.
//
// Errors have code [gwerrors.ErrCodeInvalidFormat] and name the offending
// line. ReadText does not close r.
func ReadText(r io.Reader) (*graph.Graph, error) {
	tokens, err := scanTokens(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, gwerrors.New(gwerrors.ErrCodeInvalidFormat, "empty graph description")
	}

	n, err := strconv.Atoi(tokens[0].text)
	if err != nil || n < 1 {
		return nil, gwerrors.New(gwerrors.ErrCodeInvalidFormat,
			"line %d: vertex count must be a positive integer, got %q", tokens[0].line, tokens[0].text)
	}

	costs := tokens[1:]
	// n vertices need at least n-1 costs; rejecting larger counts first
	// keeps n*(n-1)/2 from overflowing.
	if n-1 > len(costs) {
		return nil, gwerrors.New(gwerrors.ErrCodeInvalidFormat,
			"line %d: too few costs for %d vertices, got %d", tokens[0].line, n, len(costs))
	}
	want := n * (n - 1) / 2
	switch {
	case len(costs) < want:
		return nil, gwerrors.New(gwerrors.ErrCodeInvalidFormat,
			"expected %d costs for %d vertices, got %d", want, n, len(costs))
	case len(costs) > want:
		extra := costs[want]
		return nil, gwerrors.New(gwerrors.ErrCodeInvalidFormat,
			"line %d: unexpected value %q after %d costs", extra.line, extra.text, want)
	}

	g := graph.New()
	k := 0
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			tok := costs[k]
			k++
			w, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return nil, gwerrors.Wrap(gwerrors.ErrCodeInvalidFormat, err,
					"line %d: cost of (%d, %d)", tok.line, u, v)
			}
			if w == NoEdge {
				continue
			}
			g.AddEdge(u, v, w)
		}
	}
	return g, nil
}

func scanTokens(r io.Reader) ([]token, error) {
	var tokens []token
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		for _, f := range strings.Fields(text) {
			tokens = append(tokens, token{text: f, line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return tokens, nil
}

// ImportText reads a text graph file at path. A missing file is reported
// with code [gwerrors.ErrCodeFileNotFound].
func ImportText(path string) (*graph.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadText(f)
}

// WriteText encodes g in the distance-list text format.
//
// Vertices must be exactly 1..n. Pairs without an edge are written as -1.
// Parallel edges collapse to their stored weight, so the output re-imports
// as a simple graph.
func WriteText(g *graph.Graph, w io.Writer) error {
	vs := g.Vertices()
	n := len(vs)
	for _, v := range vs {
		if v < 1 || v > n {
			return gwerrors.New(gwerrors.ErrCodeUnsupported,
				"text format needs vertices 1..%d, found %d", n, v)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", n)
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			cost, ok := g.Weight(u, v)
			if !ok {
				cost = NoEdge
			}
			fmt.Fprintln(bw, strconv.FormatFloat(cost, 'f', -1, 64))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportText writes g to a text file at path.
func ExportText(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteText(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gwerrors.Wrap(gwerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
