package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spesegen/internal/core"
	"spesegen/internal/services"
)

const defaultQuery = "SELECT * FROM expenses LIMIT 10"

// QueryModel runs ad-hoc SQL typed by the user. Failed statements show the
// engine message and leave the editor usable.
type QueryModel struct {
	CommonModel
	dashboard *services.Dashboard

	editor  textarea.Model
	results table.Model
	focus   int // 0 editor, 1 results

	ran     bool
	rows    int
	running bool
	err     error
}

func NewQueryModel(d *services.Dashboard) QueryModel {
	ta := textarea.New()
	ta.Placeholder = "Write your SQL query here"
	ta.SetValue(defaultQuery)
	ta.SetWidth(80)
	ta.SetHeight(5)
	ta.ShowLineNumbers = false
	ta.Focus()

	results := newGrid(10)
	results.Blur()

	return QueryModel{
		dashboard: d,
		editor:    ta,
		results:   results,
	}
}

func (m QueryModel) Title() string { return "Run SQL Query" }

func (m QueryModel) ShortHelp() string {
	return "Esc: back | Ctrl+R: run | Tab: switch editor/results"
}

func (m QueryModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m QueryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case queryResultMsg:
		m.running = false
		m.ran = true
		m.err = msg.err
		if msg.err == nil {
			m.rows = msg.table.Len()
			fillGrid(&m.results, msg.table)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.editor.SetWidth(max(msg.Width-6, 20))
		m.results.SetHeight(max(msg.Height-20, 5))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "ctrl+r":
			if m.running {
				return m, nil
			}
			m.running = true
			return m, m.runCmd(m.editor.Value())
		case "tab":
			m.toggleFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m *QueryModel) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.editor.Blur()
		m.results.Focus()
		return
	}
	m.focus = 0
	m.results.Blur()
	m.editor.Focus()
}

func (m QueryModel) View() string {
	var out string
	switch {
	case m.running:
		out = "Running..."
	case m.err != nil:
		out = renderError(m.err)
	case m.ran:
		out = m.results.View() + "\n" + mutedStyle.Render(fmt.Sprintf("%d rows", m.rows))
	}

	return paddedStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		m.editor.View(),
		"",
		out,
		"",
		mutedStyle.Render(m.ShortHelp()),
	))
}

type queryResultMsg struct {
	table core.Table
	err   error
}

func (m QueryModel) runCmd(sql string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		t, err := m.dashboard.AdHocQuery(ctx, sql)
		return queryResultMsg{table: t, err: err}
	}
}
