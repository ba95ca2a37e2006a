package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"spesegen/internal/services"
)

type reportsState int

const (
	reportsStatePick reportsState = iota
	reportsStateLoading
	reportsStateShow
)

// ReportsModel picks a catalog report, shows its table and chart, and can
// export it.
type ReportsModel struct {
	CommonModel
	dashboard *services.Dashboard

	state    reportsState
	form     *huh.Form
	spinner  spinner.Model
	table    table.Model
	viewport viewport.Model

	name   string
	result services.ReportResult
	err    error
	status string
}

func NewReportsModel(d *services.Dashboard) ReportsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ReportsModel{
		dashboard: d,
		spinner:   s,
		table:     newGrid(12),
		viewport:  viewport.New(100, 30),
	}
	m.resetForm()
	return m
}

func (m *ReportsModel) resetForm() {
	m.state = reportsStatePick
	m.err = nil
	m.status = ""

	names := m.dashboard.ReportNames()
	if m.name == "" && len(names) > 0 {
		m.name = names[0]
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("report").
				Title("Select a query").
				Options(huh.NewOptions(names...)...).
				Value(&m.name),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ReportsModel) Title() string { return "Predefined SQL Queries" }

func (m ReportsModel) ShortHelp() string {
	switch m.state {
	case reportsStateLoading:
		return "Running..."
	case reportsStateShow:
		return "Esc: back | n: another query | x: export | ↑/↓: scroll"
	}
	return "Esc: back | Enter: run"
}

func (m ReportsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportResultMsg:
		m.state = reportsStateShow
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
			fillGrid(&m.table, msg.result.Table)
			m.table.Blur()
		}
		m.refresh()
		m.viewport.GotoTop()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = renderError(msg.err)
		} else {
			m.status = okStyle.Render(fmt.Sprintf("Exported %d rows to %s", msg.result.Rows, msg.result.Range))
		}
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-6, 5)
		m.refresh()
		return m, nil
	}

	switch m.state {
	case reportsStatePick:
		return m.updatePick(msg)
	case reportsStateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case reportsStateShow:
		return m.updateShow(msg)
	}

	return m, nil
}

func (m ReportsModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.name = m.form.GetString("report")
	m.state = reportsStateLoading
	return m, tea.Batch(m.spinner.Tick, m.runCmd(m.name))
}

func (m ReportsModel) updateShow(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			m.resetForm()
			return m, m.form.Init()
		case "x":
			if m.err != nil {
				return m, nil
			}
			m.status = "Exporting..."
			m.refresh()
			return m, m.exportCmd(m.name)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ReportsModel) refresh() {
	m.viewport.SetContent(m.content())
}

func (m ReportsModel) content() string {
	if m.err != nil {
		return renderError(m.err)
	}

	width := defaultChartWidth
	if m.Width > 0 {
		width = min(m.Width-4, 100)
	}

	parts := []string{titleStyle.Render(m.result.Name)}
	if m.result.Cached {
		parts[0] += mutedStyle.Render(" (cached)")
	}
	parts = append(parts, m.table.View())
	if m.result.Chart != nil {
		parts = append(parts, RenderChart(*m.result.Chart, width))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "\n\n")
}

func (m ReportsModel) View() string {
	switch m.state {
	case reportsStatePick:
		return paddedStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
	case reportsStateLoading:
		return paddedStyle.Render(fmt.Sprintf("%s Running %s...", m.spinner.View(), m.name))
	case reportsStateShow:
		return paddedStyle.Render(m.viewport.View() + "\n" + mutedStyle.Render(m.ShortHelp()))
	}
	return ""
}

type reportResultMsg struct {
	result services.ReportResult
	err    error
}

type exportDoneMsg struct {
	result services.ExportResult
	err    error
}

func (m ReportsModel) runCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.dashboard.RunReport(ctx, name)
		return reportResultMsg{result: res, err: err}
	}
}

func (m ReportsModel) exportCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.dashboard.ExportReport(ctx, name)
		if errors.Is(err, services.ErrExportDisabled) {
			err = fmt.Errorf("%w (set EXPORT_BACKEND)", err)
		}
		return exportDoneMsg{result: res, err: err}
	}
}
