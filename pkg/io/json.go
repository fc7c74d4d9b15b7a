package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/search"
)

type graphDoc struct {
	Edges []edge `json:"edges"`
}

type edge struct {
	From   int      `json:"from"`
	To     int      `json:"to"`
	Weight *float64 `json:"weight,omitempty"`
}

// ReadJSON decodes a JSON graph from r.
//
// The input is an object with an "edges" array:
//
//	{
//	  "edges": [
//	    {"from": 1, "to": 2, "weight": 1.5},
//	    {"from": 2, "to": 3}
//	  ]
//	}
//
// A missing weight defaults to [graph.DefaultWeight]. Edges are added in
// array order, which fixes the neighbor order seen by traversals. Repeated
// pairs become parallel edges.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var doc graphDoc
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInvalidFormat, err, "decode graph")
	}

	g := graph.New()
	for _, e := range doc.Edges {
		w := graph.DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		g.AddEdge(e.From, e.To, w)
	}
	return g, nil
}

// ImportJSON reads a JSON graph file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes g as JSON. Each undirected edge appears once per
// occurrence, oriented as returned by [graph.Graph.Edges], so the output
// can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	pairs := g.Edges()
	out := graphDoc{Edges: make([]edge, len(pairs))}
	for i, p := range pairs {
		weight, _ := g.Weight(p.U, p.V)
		out.Edges[i] = edge{From: p.U, To: p.V, Weight: &weight}
	}
	return encode(w, out)
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Import reads a graph file, choosing the decoder by extension: ".json"
// files are JSON and everything else is the text format.
func Import(path string) (*graph.Graph, error) {
	if err := gwerrors.ValidatePath(path); err != nil {
		return nil, err
	}
	if isJSON(path) {
		return ImportJSON(path)
	}
	return ImportText(path)
}

// Export writes g to path, choosing the encoder by extension like [Import].
func Export(g *graph.Graph, path string) error {
	if err := gwerrors.ValidatePath(path); err != nil {
		return err
	}
	if isJSON(path) {
		return ExportJSON(g, path)
	}
	return ExportText(g, path)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// ResultDoc is the JSON form of a traversal result.
type ResultDoc struct {
	Algorithm string        `json:"algorithm"`
	Start     int           `json:"start"`
	End       int           `json:"end"`
	Vertices  int           `json:"vertices,omitempty"`
	Edges     int           `json:"edges,omitempty"`
	Reachable bool          `json:"reachable"`
	Path      []int         `json:"path"`
	Cost      float64       `json:"cost"`
	Steps     []search.Step `json:"steps"`
}

// NewResultDoc converts res. g may be nil, in which case graph counts are
// omitted.
func NewResultDoc(g *graph.Graph, res *search.Result) ResultDoc {
	doc := ResultDoc{
		Start:     res.Start,
		End:       res.End,
		Reachable: res.Reachable(),
		Path:      res.Path,
		Cost:      res.Cost,
		Steps:     res.History.Steps(),
	}
	if res.Algorithm != nil {
		doc.Algorithm = res.Algorithm.Name()
	}
	if doc.Path == nil {
		doc.Path = []int{}
	}
	if g != nil {
		doc.Vertices = g.VertexCount()
		doc.Edges = g.EdgeCount()
	}
	return doc
}

// WriteResultJSON encodes a traversal result, including every history
// step, as indented JSON.
func WriteResultJSON(g *graph.Graph, res *search.Result, w io.Writer) error {
	return encode(w, NewResultDoc(g, res))
}

// ReadResultJSON decodes a document written by [WriteResultJSON].
func ReadResultJSON(r io.Reader) (ResultDoc, error) {
	var doc ResultDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ResultDoc{}, gwerrors.Wrap(gwerrors.ErrCodeInvalidFormat, err, "decode result")
	}
	return doc, nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
