package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/render"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// Colors used to mark traversal state.
const (
	ColorPath      = "#d9534f"
	ColorInspected = "lightblue"
	ColorGenerated = "lightgrey"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Title is drawn above the diagram when non-empty.
	Title string

	// Result overlays a traversal on the graph: inspected vertices are
	// filled, generated-only vertices are greyed and the path is drawn in
	// bold. Nil renders the plain graph.
	Result *search.Result

	// Detailed adds the degree, or the inspection order when Result is
	// set, to each vertex label.
	Detailed bool
}

// ToDOT converts a graph to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Vertices and edges are emitted in graph order, so the output is stable
// for a given construction sequence. Edge labels carry the weights.
func ToDOT(g *graph.Graph, opts Options) string {
	ov := newOverlay(opts.Result)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=11, fontcolor=\"#555555\"];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		attrs := vertexAttrs(g, v, ov, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", strconv.Itoa(v), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		w, _ := g.Weight(e.U, e.V)
		attrs := []string{fmt.Sprintf("label=%q", FormatWeight(w))}
		if ov.onPath(e) {
			attrs = append(attrs, "color=\""+ColorPath+"\"", "penwidth=2.5")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", strconv.Itoa(e.U), strconv.Itoa(e.V), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// FormatWeight renders a weight without trailing zeros.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func vertexAttrs(g *graph.Graph, v int, ov overlay, detailed bool) []string {
	label := strconv.Itoa(v)
	if detailed {
		if ov.active {
			if i, ok := ov.order[v]; ok {
				label += fmt.Sprintf("\n#%d", i+1)
			}
		} else {
			d, _ := g.Degree(v)
			label += fmt.Sprintf("\ndeg %d", d)
		}
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	if !ov.active {
		return attrs
	}
	if v == ov.start || v == ov.end {
		attrs = append(attrs, "shape=doublecircle")
	}
	switch {
	case ov.path[v]:
		attrs = append(attrs, "fillcolor=\""+ColorPath+"\"", "fontcolor=white")
	case ov.inspected(v):
		attrs = append(attrs, "fillcolor="+ColorInspected)
	case ov.generated[v]:
		attrs = append(attrs, "fillcolor="+ColorGenerated)
	}
	return attrs
}

// overlay is the traversal state projected onto vertices and edges.
type overlay struct {
	active     bool
	start, end int
	order      map[int]int // inspection index
	generated  map[int]bool
	path       map[int]bool
	pathEdges  map[graph.Pair]bool
}

func newOverlay(res *search.Result) overlay {
	if res == nil {
		return overlay{}
	}
	ov := overlay{
		active:    true,
		start:     res.Start,
		end:       res.End,
		order:     make(map[int]int),
		generated: make(map[int]bool),
		path:      make(map[int]bool),
		pathEdges: make(map[graph.Pair]bool),
	}
	if last, ok := res.History.Last(); ok {
		for i, v := range last.Inspected {
			ov.order[v] = i
		}
		for _, v := range last.Generated {
			ov.generated[v] = true
		}
	}
	for i, v := range res.Path {
		ov.path[v] = true
		if i > 0 {
			ov.pathEdges[graph.Pair{U: res.Path[i-1], V: v}] = true
		}
	}
	return ov
}

func (ov overlay) inspected(v int) bool {
	_, ok := ov.order[v]
	return ok
}

func (ov overlay) onPath(e graph.Pair) bool {
	return ov.pathEdges[e] || ov.pathEdges[e.Reverse()]
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
