package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/pipeline"
)

// previewCommand creates the preview command for drawing a graph.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [graph file]",
		Short: "Draw a graph without searching it",
		Long: `Draw a graph as a node-link diagram.

Edges are labeled with their weights. With --detailed, every vertex also
shows its degree. The default format is svg; png and pdf need rsvg-convert.
The dot format prints the Graphviz source instead.

Results are cached locally for faster subsequent runs.`,
		Example: `  graphwalk preview graph.txt
  graphwalk preview graph.txt -f dot | dot -Tpng > graph.png
  graphwalk preview graph.json -f svg,pdf -o out/graph`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(formatsStr)
			if len(opts.Formats) == 0 {
				opts.Formats = []string{pipeline.FormatSVG}
			}
			return c.runPreview(cmd.Context(), cmd.OutOrStdout(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), "+strings.Join(pipeline.Formats, ", "))
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label vertices with their degree")
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runPreview loads the graph and renders it without a search overlay.
func (c *CLI) runPreview(ctx context.Context, stdout io.Writer, opts pipeline.Options, output string, noCache bool) error {
	c.applyConfig(&opts)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	g, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, nil, opts)
	if err != nil {
		spinner.StopWithError("Preview failed")
		return fmt.Errorf("preview: %w", err)
	}
	spinner.Stop()

	written, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
		stdout:    stdout,
	})
	if err != nil {
		return err
	}

	if len(written) > 0 {
		printSuccess("Preview complete")
		for _, path := range written {
			printFile(path)
		}
		printStats(g.VertexCount(), g.EdgeCount(), cacheHit)
		printNewline()
		printNextStep("Search it", fmt.Sprintf("%s search %s -s <start> -e <end>", appName, opts.Input))
	}
	return nil
}
