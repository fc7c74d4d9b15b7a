package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/search"
)

func viewerFixture(t *testing.T, end int) StepViewerModel {
	t.Helper()
	g := graph.New()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 2)
	g.AddEdge(1, 3, 5)
	g.AddEdge(4, 5, 1)
	res, err := search.Traverse(g, 1, end, search.BreadthFirst{})
	require.NoError(t, err)
	return NewStepViewerModel(g, res, "")
}

func press(m StepViewerModel, keys ...string) StepViewerModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(StepViewerModel)
	}
	return m
}

func TestStepViewerNavigation(t *testing.T) {
	m := viewerFixture(t, 3)
	steps := m.Result.History.Len()
	require.Equal(t, 4, steps)

	assert.Equal(t, 0, m.Cursor)
	m = press(m, "left")
	assert.Equal(t, 0, m.Cursor, "cursor clamps at the first step")

	m = press(m, "right", "l")
	assert.Equal(t, 2, m.Cursor)

	m = press(m, "G")
	assert.Equal(t, steps-1, m.Cursor)
	assert.True(t, m.Last())
	m = press(m, "right")
	assert.Equal(t, steps-1, m.Cursor, "cursor clamps at the last step")

	m = press(m, "g")
	assert.Equal(t, 0, m.Cursor)
}

func TestStepViewerQuit(t *testing.T) {
	m := viewerFixture(t, 3)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestStepViewerView(t *testing.T) {
	m := viewerFixture(t, 3)

	view := m.View()
	assert.Contains(t, view, "breadth-first search")
	assert.Contains(t, view, "iteration 1/4")
	assert.NotContains(t, view, "cost")

	m = press(m, "right")
	gen, ins := m.delta()
	assert.Equal(t, []int{2, 3}, gen)
	assert.Equal(t, []int{1}, ins)

	m = press(m, "G")
	view = m.View()
	assert.Contains(t, view, "1 -> 3")
	assert.Contains(t, view, "cost 5")
}

func TestStepViewerUnreachable(t *testing.T) {
	m := press(viewerFixture(t, 5), "G")
	assert.Contains(t, m.View(), "no path")
}

func TestStepViewerWindow(t *testing.T) {
	m := viewerFixture(t, 3)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(StepViewerModel)
	assert.Equal(t, 3, m.Height)

	m = press(m, "G")
	assert.Equal(t, 1, m.Offset, "offset keeps the cursor visible")
}
