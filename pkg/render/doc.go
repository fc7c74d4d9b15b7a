// Package render turns graphs and traversal results into output for people.
//
// # Subpackages
//
//   - [report]: console report of a traversal, one table row per step
//   - [nodelink]: Graphviz node-link diagrams with the found path highlighted
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [report]: github.com/matzehuels/graphwalk/pkg/render/report
// [nodelink]: github.com/matzehuels/graphwalk/pkg/render/nodelink
package render
