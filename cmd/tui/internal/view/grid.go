package view

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"spesegen/internal/core"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 32
)

func newGrid(height int) table.Model {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// fillGrid replaces the grid's columns and rows with the contents of data.
// Column widths fit the widest cell within [minColumnWidth, maxColumnWidth].
func fillGrid(g *table.Model, data core.Table) {
	widths := make([]int, len(data.Columns))
	for i, c := range data.Columns {
		widths[i] = lipgloss.Width(c)
	}

	rows := make([]table.Row, 0, len(data.Rows))
	for _, r := range data.Rows {
		row := make(table.Row, len(data.Columns))
		for i := range data.Columns {
			if i < len(r) {
				row[i] = FormatCell(r[i])
			}
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
		rows = append(rows, row)
	}

	columns := make([]table.Column, len(data.Columns))
	for i, c := range data.Columns {
		columns[i] = table.Column{Title: c, Width: min(max(widths[i], minColumnWidth), maxColumnWidth)}
	}

	// rows must be cleared first so they never outnumber the new columns
	g.SetRows(nil)
	g.SetColumns(columns)
	g.SetRows(rows)
	g.GotoTop()
}
