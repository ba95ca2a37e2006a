package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spesegen/internal/core"
	"spesegen/internal/services"
)

// ExpensesModel shows every stored record.
type ExpensesModel struct {
	CommonModel
	dashboard *services.Dashboard

	table   table.Model
	rows    int
	loading bool
	err     error
}

func NewExpensesModel(d *services.Dashboard) ExpensesModel {
	return ExpensesModel{
		dashboard: d,
		table:     newGrid(15),
		loading:   true,
	}
}

func (m ExpensesModel) Title() string { return "View All Data" }

func (m ExpensesModel) ShortHelp() string {
	return "Esc: back | r: refresh | ↑/↓: scroll"
}

func (m ExpensesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadExpensesMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.rows = msg.table.Len()
			fillGrid(&m.table, msg.table)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 5))
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
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ExpensesModel) View() string {
	header := titleStyle.Render(m.Title())

	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case m.err != nil:
		body = renderError(m.err)
	case m.rows == 0:
		body = mutedStyle.Render("No records yet. Generate a batch first.")
	default:
		body = m.table.View() + "\n" + mutedStyle.Render(fmt.Sprintf("%d records", m.rows))
	}

	return paddedStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", body, "", mutedStyle.Render(m.ShortHelp())))
}

type loadExpensesMsg struct {
	table core.Table
	err   error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		t, err := m.dashboard.ViewAll(ctx)
		return loadExpensesMsg{table: t, err: err}
	}
}
