package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// NoPath is printed in place of the path when the goal was unreachable.
const NoPath = "no path"

// Options configures report output.
type Options struct {
	// Width caps the table width; cell contents wrap to fit. Zero leaves
	// the table at its natural width.
	Width int

	// Title is printed above the report when non-empty.
	Title string
}

var (
	colorGreen  = lipgloss.Color("35")
	colorBlue   = lipgloss.Color("75")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// styles are bound to the output's renderer so colors are only emitted
// when w is a terminal.
type styles struct {
	title, key, count, origin, destination, header, iteration, path, none, border, cell lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:       r.NewStyle().Bold(true),
		key:         r.NewStyle().Foreground(colorGray).Width(13),
		count:       r.NewStyle().Foreground(colorGreen).Bold(true),
		origin:      r.NewStyle().Foreground(colorBlue).Bold(true),
		destination: r.NewStyle().Foreground(colorYellow).Bold(true),
		header:      r.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1),
		iteration:   r.NewStyle().Foreground(colorRed).Bold(true).Padding(0, 1),
		path:        r.NewStyle().Bold(true),
		none:        r.NewStyle().Foreground(colorDim).Italic(true),
		border:      r.NewStyle().Foreground(colorDim),
		cell:        r.NewStyle().Padding(0, 1),
	}
}

// Write prints a traversal report for res over g: graph size, origin and
// destination, one table row per history step, the path and its cost.
func Write(w io.Writer, g *graph.Graph, res *search.Result, opts Options) error {
	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(st.title.Render(opts.Title) + "\n\n")
	}
	line := func(key string, value string) {
		b.WriteString(st.key.Render(key) + value + "\n")
	}

	line("Vertices", st.count.Render(strconv.Itoa(g.VertexCount())))
	line("Edges", st.count.Render(strconv.Itoa(g.EdgeCount())))
	if res.Algorithm != nil {
		line("Algorithm", res.Algorithm.String())
	}
	line("Origin", st.origin.Render(strconv.Itoa(res.Start)))
	line("Destination", st.destination.Render(strconv.Itoa(res.End)))
	b.WriteString("\n")

	b.WriteString(stepTable(res.History, st, opts.Width).Render())
	b.WriteString("\n\n")

	if res.Reachable() {
		line("Path", st.path.Render(FormatPath(res.Path)))
	} else {
		line("Path", st.none.Render(NoPath))
	}
	line("Cost", FormatCost(res.Cost))

	_, err := io.WriteString(w, b.String())
	return err
}

// stepTable builds the per-iteration table. Iterations are numbered from 1,
// the first row being the frontier before any expansion.
func stepTable(h *search.History, st styles, width int) *table.Table {
	rows := make([][]string, 0, h.Len())
	for i, step := range h.Steps() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			FormatList(step.Generated),
			FormatList(step.Inspected),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		Headers("Iteration", "Generated", "Inspected").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case col == 0:
				return st.iteration
			}
			return st.cell
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t
}

// FormatPath joins vertex IDs with arrows: "1 -> 3 -> 4".
func FormatPath(path []int) string {
	return join(path, " -> ")
}

// FormatList joins vertex IDs with commas. An empty list renders as "-".
func FormatList(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	return join(ids, ", ")
}

// FormatCost renders a path cost without trailing zeros.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func join(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}

// Summary is a one-line description of res, used in logs and status
// lines.
func Summary(res *search.Result) string {
	if !res.Reachable() {
		return fmt.Sprintf("%d → %d: %s after %d expansions", res.Start, res.End, NoPath, res.Expansions())
	}
	return fmt.Sprintf("%s (cost %s, %d expansions)", FormatPath(res.Path), FormatCost(res.Cost), res.Expansions())
}
