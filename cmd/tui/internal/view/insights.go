package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"spesegen/internal/core"
	"spesegen/internal/services"
)

const defaultChartWidth = 60

// InsightsModel shows total spent per category as a table, a bar chart and
// a pie chart.
type InsightsModel struct {
	CommonModel
	dashboard *services.Dashboard

	table    table.Model
	viewport viewport.Model
	insights services.Insights
	loading  bool
	err      error
}

func NewInsightsModel(d *services.Dashboard) InsightsModel {
	return InsightsModel{
		dashboard: d,
		table:     newGrid(len(core.Categories) + 1),
		viewport:  viewport.New(100, 30),
		loading:   true,
	}
}

func (m InsightsModel) Title() string { return "Category Insights" }

func (m InsightsModel) ShortHelp() string {
	return "Esc: back | r: refresh | ↑/↓: scroll"
}

func (m InsightsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInsightsMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.insights = msg.insights
			fillGrid(&m.table, msg.insights.Table)
			m.table.Blur()
		}
		m.viewport.SetContent(m.content())
		m.viewport.GotoTop()
		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-6, 5)
		m.viewport.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m InsightsModel) content() string {
	switch {
	case m.loading:
		return "Loading..."
	case m.err != nil:
		return renderError(m.err)
	case m.insights.Table.Len() == 0:
		return mutedStyle.Render("No records yet. Generate a batch first.")
	}

	width := defaultChartWidth
	if m.Width > 0 {
		width = min(m.Width-4, 100)
	}

	parts := []string{m.table.View()}
	for _, c := range m.insights.Charts {
		parts = append(parts, RenderChart(c, width))
	}
	return strings.Join(parts, "\n\n")
}

func (m InsightsModel) View() string {
	return paddedStyle.Render(titleStyle.Render(m.Title()) + "\n\n" +
		m.viewport.View() + "\n" + mutedStyle.Render(m.ShortHelp()))
}

type loadInsightsMsg struct {
	insights services.Insights
	err      error
}

func (m InsightsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ins, err := m.dashboard.CategoryInsights(ctx)
		return loadInsightsMsg{insights: ins, err: err}
	}
}
