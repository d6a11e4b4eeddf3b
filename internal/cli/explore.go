package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphderiv/pkg/analysis"
	"github.com/matzehuels/graphderiv/pkg/expansion"
	"github.com/matzehuels/graphderiv/pkg/temporal"
	"github.com/matzehuels/graphderiv/pkg/treewidth"
)

// Timeline styles
var (
	slotActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	slotNormalStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpStyle       = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "explore [graph.json]",
		Short: "Step through the windows of a temporal graph interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveDelta(cmd, &delta); err != nil {
				return err
			}
			return c.runExplore(cmd.Context(), args[0], delta)
		},
	}
	cmd.Flags().IntVarP(&delta, "delta", "d", 0, "initial window length Δ (default from config, 2)")
	return cmd
}

func (c *CLI) runExplore(ctx context.Context, input string, delta int) error {
	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}
	if g.Lifetime() == 0 {
		printWarning("Graph has no snapshots")
		return nil
	}
	_, err = tea.NewProgram(newExploreModel(g, delta), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// exploreModel - Interactive window stepping
// =============================================================================

// windowMetrics are the figures shown for the current window.
type windowMetrics struct {
	nodes, black, red int
	maxDegree         int
	treeWidth         int
}

type exploreModel struct {
	g     *temporal.Graph
	t     int
	delta int
	twins int

	metrics windowMetrics
	dtw     map[int]int // per Δ
	err     error
}

func newExploreModel(g *temporal.Graph, delta int) exploreModel {
	m := exploreModel{
		g:     g,
		delta: min(max(delta, 1), g.Lifetime()),
		twins: len(g.FindEternalTwins()),
		dtw:   make(map[int]int),
	}
	m.refresh()
	return m
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	lifetime := m.g.Lifetime()
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.t > 0 {
			m.t--
		}
	case "right", "l":
		if m.t+m.delta < lifetime {
			m.t++
		}
	case "up", "k", "+":
		if m.t+m.delta < lifetime {
			m.delta++
		}
	case "down", "j", "-":
		if m.delta > 1 {
			m.delta--
		}
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// refresh recomputes the metrics of the current window. dtw values are
// memoized per Δ.
func (m *exploreModel) refresh() {
	exp, err := expansion.Build(m.g, m.t, m.delta)
	if err != nil {
		m.err = err
		return
	}
	sg, err := exp.Graph()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.metrics = windowMetrics{
		nodes:     len(exp.Nodes),
		black:     len(exp.Black),
		red:       len(exp.Red),
		maxDegree: exp.MaxDegree(),
		treeWidth: treewidth.Width(sg),
	}
	if _, ok := m.dtw[m.delta]; !ok {
		if d, err := analysis.DifferentialTreeWidth(m.g, m.delta); err == nil {
			m.dtw[m.delta] = d.Max
		}
	}
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Window t=%d Δ=%d", m.t, m.delta)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ move t  ↑/↓ resize Δ  q quit"))
	b.WriteString("\n\n")

	slots := make([]string, m.g.Lifetime())
	for i := range slots {
		label := fmt.Sprintf("[%d]", i)
		if i >= m.t && i < m.t+m.delta {
			slots[i] = slotActiveStyle.Render(label)
		} else {
			slots[i] = slotNormalStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(slots, " "))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error() + "\n")
		return b.String()
	}

	dtw := iconNone
	if d, ok := m.dtw[m.delta]; ok {
		dtw = strconv.Itoa(d)
	}
	rows := [][]string{
		{"nodes", strconv.Itoa(m.metrics.nodes)},
		{"black edges", strconv.Itoa(m.metrics.black)},
		{"red edges", strconv.Itoa(m.metrics.red)},
		{"max degree", strconv.Itoa(m.metrics.maxDegree)},
		{"tree-width", strconv.Itoa(m.metrics.treeWidth)},
		{fmt.Sprintf("dtw_%d", m.delta), dtw},
		{"eternal twins", strconv.Itoa(m.twins)},
	}
	b.WriteString(renderTable([]string{"metric", "value"}, rows, 4))
	b.WriteString("\n")
	return b.String()
}
