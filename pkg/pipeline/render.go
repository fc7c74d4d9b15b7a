package pipeline

import (
	"bytes"
	"context"
	"fmt"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	gwio "github.com/matzehuels/graphwalk/pkg/io"
	"github.com/matzehuels/graphwalk/pkg/render/nodelink"
	"github.com/matzehuels/graphwalk/pkg/render/report"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// Render generates output artifacts in the requested formats without
// caching.
//
// res may be nil to render the graph on its own. In that case text is the
// graph's distance-list file and json its edge document; the diagram
// formats carry no search overlay.
func Render(ctx context.Context, g *graph.Graph, res *search.Result, opts Options) (map[string][]byte, error) {
	dot := DOT(g, res, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, format, dot, g, res, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// DOT returns the Graphviz source for g with res overlaid.
func DOT(g *graph.Graph, res *search.Result, opts Options) string {
	return nodelink.ToDOT(g, nodelink.Options{
		Title:    opts.Title,
		Result:   res,
		Detailed: opts.Detailed,
	})
}

func renderFormat(ctx context.Context, format, dot string, g *graph.Graph, res *search.Result, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatText:
		if res == nil {
			err := gwio.WriteText(g, &buf)
			return buf.Bytes(), err
		}
		err := report.Write(&buf, g, res, report.Options{Width: opts.Width, Title: opts.Title})
		return buf.Bytes(), err
	case FormatJSON:
		if res == nil {
			err := gwio.WriteJSON(g, &buf)
			return buf.Bytes(), err
		}
		err := gwio.WriteResultJSON(g, res, &buf)
		return buf.Bytes(), err
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.PNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	}
	return nil, gwerrors.New(gwerrors.ErrCodeUnsupported, "unsupported format %q", format)
}
