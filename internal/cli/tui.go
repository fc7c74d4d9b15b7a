package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/render/report"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// Viewer styles
var (
	viewerCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	viewerPastStyle    = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	viewerDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	viewerNewStyle     = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	viewerPathStyle    = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// =============================================================================
// StepViewerModel - Interactive history replay
// =============================================================================

// StepViewerModel is the bubbletea model for stepping through a search
// history one iteration at a time.
type StepViewerModel struct {
	Graph  *graph.Graph
	Result *search.Result
	Title  string
	Cursor int // index of the current step
	Height int // visible table rows
	Offset int // first visible step

	steps []search.Step
}

// NewStepViewerModel creates a viewer positioned at the first step.
func NewStepViewerModel(g *graph.Graph, res *search.Result, title string) StepViewerModel {
	return StepViewerModel{
		Graph:  g,
		Result: res,
		Title:  title,
		Height: 12,
		steps:  res.History.Steps(),
	}
}

func (m StepViewerModel) Init() tea.Cmd {
	return nil
}

func (m StepViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "down", "j", " ", "n":
			m.move(1)
		case "left", "h", "up", "k", "p":
			m.move(-1)
		case "home", "g":
			m.move(-len(m.steps))
		case "end", "G":
			m.move(len(m.steps))
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 16
		if m.Height < 3 {
			m.Height = 3
		}
		m.clampOffset()
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the history.
func (m *StepViewerModel) move(delta int) {
	m.Cursor = max(0, min(len(m.steps)-1, m.Cursor+delta))
	m.clampOffset()
}

func (m *StepViewerModel) clampOffset() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// Last reports whether the cursor is on the final step.
func (m StepViewerModel) Last() bool {
	return m.Cursor == len(m.steps)-1
}

func (m StepViewerModel) View() string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = m.Result.Algorithm.String()
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(viewerDimStyle.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s %s   %s\n\n",
		StyleHighlight.Render(strconv.Itoa(m.Result.Start)),
		viewerDimStyle.Render(iconArrow),
		StyleHighlight.Render(strconv.Itoa(m.Result.End)),
		viewerDimStyle.Render(fmt.Sprintf("%d vertices · %d edges · iteration %d/%d",
			m.Graph.VertexCount(), m.Graph.EdgeCount(), m.Cursor+1, len(m.steps)))))

	end := min(m.Cursor+1, m.Offset+m.Height)
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			report.FormatList(m.steps[i].Generated),
			report.FormatList(m.steps[i].Inspected),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Iteration", "Generated", "Inspected").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			if m.Offset+row == m.Cursor {
				return viewerCurrentStyle
			}
			return viewerPastStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	gen, ins := m.delta()
	b.WriteString(fmt.Sprintf("%s %s\n", viewerDimStyle.Render("new      "), viewerNewStyle.Render(report.FormatList(gen))))
	b.WriteString(fmt.Sprintf("%s %s\n", viewerDimStyle.Render("expanded "), viewerNewStyle.Render(report.FormatList(ins))))

	if m.Last() {
		b.WriteString("\n")
		if m.Result.Reachable() {
			b.WriteString(viewerPathStyle.Render(report.FormatPath(m.Result.Path)))
			b.WriteString(viewerDimStyle.Render("  cost " + report.FormatCost(m.Result.Cost)))
		} else {
			b.WriteString(StyleWarning.Render(report.NoPath))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// delta returns the vertices generated and inspected by the current step
// alone, i.e. the suffixes not present in the previous step.
func (m StepViewerModel) delta() (generated, inspected []int) {
	cur := m.steps[m.Cursor]
	if m.Cursor == 0 {
		return cur.Generated, cur.Inspected
	}
	prev := m.steps[m.Cursor-1]
	return cur.Generated[len(prev.Generated):], cur.Inspected[len(prev.Inspected):]
}

// runStepViewer runs the viewer on stderr until the user quits or ctx ends.
func runStepViewer(ctx context.Context, g *graph.Graph, res *search.Result, title string) error {
	p := tea.NewProgram(NewStepViewerModel(g, res, title),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
