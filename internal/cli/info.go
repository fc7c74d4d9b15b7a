package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	gwio "github.com/matzehuels/graphwalk/pkg/io"
	"github.com/matzehuels/graphwalk/pkg/render/report"
	"github.com/matzehuels/graphwalk/pkg/search"
)

const (
	reprAdjacency = "adjacency"
	reprIncidence = "incidence"
)

// infoCommand creates the info command for inspecting a graph.
func (c *CLI) infoCommand() *cobra.Command {
	var (
		matrix string
		list   string
		export string
	)

	cmd := &cobra.Command{
		Use:   "info [graph file]",
		Short: "Print graph statistics and representations",
		Long: `Print vertex and edge counts, connected components and a degree table.

--matrix prints the adjacency or incidence matrix and --list the
corresponding list. --export writes the graph back out, as JSON when the
path ends in .json and in the text format otherwise, which converts
between the two.`,
		Example: `  graphwalk info graph.txt
  graphwalk info graph.txt --matrix adjacency
  graphwalk info graph.txt --export graph.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range []string{matrix, list} {
				if v != "" {
					if err := gwerrors.ValidateOutputFormat(v, reprAdjacency, reprIncidence); err != nil {
						return err
					}
				}
			}

			prog := newProgress(c.Logger)
			g, err := gwio.Import(args[0])
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %d vertices", g.VertexCount()))

			w := cmd.OutOrStdout()
			if err := writeInfo(w, g, matrix, list); err != nil {
				return err
			}

			if export != "" {
				if err := gwio.Export(g, export); err != nil {
					return fmt.Errorf("export: %w", err)
				}
				printSuccess("Exported graph")
				printFile(export)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&matrix, "matrix", "", "print a matrix: adjacency, incidence")
	cmd.Flags().StringVar(&list, "list", "", "print a list: adjacency, incidence")
	cmd.Flags().StringVar(&export, "export", "", "write the graph to this path (.json or text)")

	for _, name := range []string{"matrix", "list"} {
		_ = cmd.RegisterFlagCompletionFunc(name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{reprAdjacency, reprIncidence}, cobra.ShellCompDirectiveNoFileComp
		})
	}

	return cmd
}

// writeInfo prints the summary, the degree table and any requested
// representation of g.
func writeInfo(w io.Writer, g *graph.Graph, matrix, list string) error {
	printKeyValue(w, "Vertices", StyleNumber.Render(strconv.Itoa(g.VertexCount())))
	printKeyValue(w, "Edges", StyleNumber.Render(strconv.Itoa(g.EdgeCount())))
	printKeyValue(w, "Components", StyleNumber.Render(strconv.Itoa(len(components(g)))))
	fmt.Fprintln(w)

	var rows [][]string
	for _, v := range g.Vertices() {
		deg, _ := g.Degree(v)
		ns, _ := g.Neighbors(v)
		rows = append(rows, []string{strconv.Itoa(v), strconv.Itoa(deg), report.FormatList(ns)})
	}
	fmt.Fprintln(w, newTable("Vertex", "Degree", "Neighbors").Rows(rows...).Render())

	switch matrix {
	case reprAdjacency:
		fmt.Fprintln(w, "\n"+StyleTitle.Render("Adjacency matrix"))
		fmt.Fprintln(w, matrixTable(g.Vertices(), vertexLabels(g.Vertices()), g.AdjacencyMatrix()).Render())
	case reprIncidence:
		fmt.Fprintln(w, "\n"+StyleTitle.Render("Incidence matrix"))
		fmt.Fprintln(w, matrixTable(g.Vertices(), edgeLabels(g.Edges()), g.IncidenceMatrix()).Render())
	}

	switch list {
	case reprAdjacency:
		fmt.Fprintln(w, "\n"+StyleTitle.Render("Adjacency list"))
		adj := g.AdjacencyList()
		for _, v := range g.Vertices() {
			fmt.Fprintf(w, "%s %s %s\n", StyleHighlight.Render(strconv.Itoa(v)), StyleDim.Render(iconArrow), report.FormatList(adj[v]))
		}
	case reprIncidence:
		fmt.Fprintln(w, "\n"+StyleTitle.Render("Incidence list"))
		inc := g.IncidenceList()
		for i := range len(inc) {
			weight, _ := g.Weight(inc[i].U, inc[i].V)
			fmt.Fprintf(w, "%s %s %s %s\n", StyleHighlight.Render("e"+strconv.Itoa(i)), StyleDim.Render(iconArrow),
				inc[i], StyleDim.Render("w="+report.FormatCost(weight)))
		}
	}
	return nil
}

// components groups vertices into connected components by running a
// full breadth-first traversal from each unvisited vertex.
func components(g *graph.Graph) [][]int {
	seen := make(map[int]bool, g.VertexCount())
	var out [][]int
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		// The goal is absent, so the traversal covers the whole component.
		res, err := search.Traverse(g, v, unreachableGoal(g), search.BreadthFirst{})
		if err != nil {
			continue
		}
		var comp []int
		for id, ok := range res.Visited {
			if !ok {
				continue
			}
			seen[id] = true
			comp = append(comp, id)
		}
		slices.Sort(comp)
		out = append(out, comp)
	}
	return out
}

// unreachableGoal returns an ID that is not a vertex of g.
func unreachableGoal(g *graph.Graph) int {
	goal := -1
	for g.HasVertex(goal) {
		goal--
	}
	return goal
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			return styleTableCell
		})
}

func matrixTable(rowIDs []int, columns []string, m [][]int) *table.Table {
	t := newTable(append([]string{""}, columns...)...)
	for i, id := range rowIDs {
		row := make([]string, 0, len(m[i])+1)
		row = append(row, strconv.Itoa(id))
		for _, cell := range m[i] {
			row = append(row, strconv.Itoa(cell))
		}
		t.Row(row...)
	}
	return t
}

func vertexLabels(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}

func edgeLabels(edges []graph.Pair) []string {
	out := make([]string, len(edges))
	for i := range edges {
		out[i] = "e" + strconv.Itoa(i)
	}
	return out
}
