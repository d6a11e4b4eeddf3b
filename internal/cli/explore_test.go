package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gio "github.com/matzehuels/graphderiv/pkg/io"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestExplore(t *testing.T, delta int) exploreModel {
	t.Helper()
	g, err := gio.UnmarshalGraph([]byte(pathGraphJSON))
	require.NoError(t, err)
	return newExploreModel(g, delta)
}

func step(m exploreModel, keys ...string) exploreModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(exploreModel)
	}
	return m
}

func TestExploreInitialWindow(t *testing.T) {
	m := newTestExplore(t, 2)
	assert.Equal(t, 0, m.t)
	assert.Equal(t, 2, m.delta)
	assert.NoError(t, m.err)
	assert.Equal(t, 6, m.metrics.nodes)
	assert.Equal(t, 2, m.metrics.black)
	assert.Equal(t, 3, m.metrics.red)
	assert.Contains(t, m.dtw, 2)
}

func TestExploreClampsDelta(t *testing.T) {
	assert.Equal(t, 3, newTestExplore(t, 10).delta)
	assert.Equal(t, 1, newTestExplore(t, 0).delta)
}

func TestExploreMovesWithinLifetime(t *testing.T) {
	m := newTestExplore(t, 2)

	m = step(m, "right")
	assert.Equal(t, 1, m.t)
	m = step(m, "right", "l")
	assert.Equal(t, 1, m.t, "window cannot run past the last snapshot")

	m = step(m, "left", "h", "left")
	assert.Equal(t, 0, m.t)
}

func TestExploreResizesDelta(t *testing.T) {
	m := newTestExplore(t, 2)

	m = step(m, "up")
	assert.Equal(t, 3, m.delta)
	assert.Equal(t, 9, m.metrics.nodes)
	m = step(m, "up")
	assert.Equal(t, 3, m.delta, "Δ cannot exceed the lifetime")

	m = step(m, "down", "down", "down")
	assert.Equal(t, 1, m.delta)
	assert.Equal(t, 0, m.metrics.red)
}

func TestExploreQuit(t *testing.T) {
	m := newTestExplore(t, 2)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestExploreView(t *testing.T) {
	view := newTestExplore(t, 2).View()
	assert.Contains(t, view, "Window t=0 Δ=2")
	assert.Contains(t, view, "tree-width")
	assert.Contains(t, view, "dtw_2")
}
