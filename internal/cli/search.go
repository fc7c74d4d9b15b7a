package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/pipeline"
	"github.com/matzehuels/graphwalk/pkg/render/report"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// searchFlags holds the search command's flags that are not pipeline options.
type searchFlags struct {
	formats     string
	output      string
	noCache     bool
	preview     bool
	interactive bool
}

// searchCommand creates the search command for traversing a graph.
func (c *CLI) searchCommand() *cobra.Command {
	var flags searchFlags
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:     "search [graph file]",
		Aliases: []string{"uninformed"},
		Short:   "Traverse a graph with depth-first or breadth-first search",
		Long: `Traverse a graph from a start vertex until the end vertex is inspected.

Every iteration records the vertices it generated (pushed on the frontier)
and the vertex it inspected (popped and expanded). The report lists them
one row per iteration, followed by the discovered path and its cost.

The graph file is either the distance-list text format or JSON (by
.json extension). Weights are reported but do not steer the search.

Graphs only contain vertices that carry an edge: a vertex with no edges
in the text format is dropped, so starting there fails with "not found".
An end vertex that cannot be reached is not an error; the report shows
"no path".

Output formats: text (default), json, dot, svg, png, pdf. Text, json and
dot are printed to stdout unless --output is given; images are written
next to the input file.`,
		Example: `  graphwalk search graph.txt -a bfs -s 1 -e 8
  graphwalk search graph.txt -a dfs -s 1 -e 8 -f text,svg --detailed
  graphwalk search graph.json -s 1 -e 8 -f json -o result.json
  graphwalk search graph.txt -s 1 -e 8 --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(flags.formats)
			return c.runSearch(cmd.Context(), cmd.OutOrStdout(), opts, flags)
		},
	}

	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", "", "traversal algorithm: "+strings.Join(search.Names(), ", ")+" (default from config, else bfs)")
	cmd.Flags().IntVarP(&opts.Start, "start", "s", 0, "the starting vertex")
	cmd.Flags().IntVarP(&opts.End, "end", "e", 0, "the ending vertex")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.Formats, ", ")+" (comma-separated)")
	cmd.Flags().BoolVarP(&flags.preview, "preview", "p", false, "also draw the search as SVG")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label diagram vertices with their expansion order")
	cmd.Flags().StringVar(&opts.Title, "title", "", "title for the report and diagram")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "wrap the step table to this many columns")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "step through the search history in the terminal")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	_ = cmd.RegisterFlagCompletionFunc("algorithm", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return search.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runSearch executes the pipeline and writes its artifacts.
func (c *CLI) runSearch(ctx context.Context, stdout io.Writer, opts pipeline.Options, flags searchFlags) error {
	c.applyConfig(&opts)
	if flags.preview && !slices.Contains(opts.Formats, pipeline.FormatSVG) {
		opts.Formats = append(opts.Formats, pipeline.FormatSVG)
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Searching...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Search failed")
		return err
	}
	spinner.Stop()
	prog.done(report.Summary(result.Search))

	if flags.interactive {
		if err := runStepViewer(ctx, result.Graph, result.Search, opts.Title); err != nil {
			return fmt.Errorf("interactive viewer: %w", err)
		}
	}

	written, err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    flags.output,
		stdout:    stdout,
	})
	if err != nil {
		return err
	}

	if !result.Search.Reachable() {
		printWarning("vertex %d is not reachable from %d", opts.End, opts.Start)
	}
	if len(written) > 0 {
		printSuccess("Search complete")
		for _, path := range written {
			printFile(path)
		}
		printStats(result.Stats.Vertices, result.Stats.Edges, result.CacheInfo.RenderHit)
	}
	return nil
}
