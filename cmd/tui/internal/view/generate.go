package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"spesegen/internal/services"
)

type generateState int

const (
	generateStateForm generateState = iota
	generateStateRunning
	generateStateResult
)

type GenerateModel struct {
	CommonModel
	dashboard *services.Dashboard

	state   generateState
	form    *huh.Form
	spinner spinner.Model
	preview table.Model
	result  services.GenerateResult
	err     error

	// Form bindings
	month string
	count string
}

func NewGenerateModel(d *services.Dashboard) GenerateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := GenerateModel{
		dashboard: d,
		spinner:   s,
		preview:   newGrid(services.PreviewRows + 1),
	}
	m.resetForm()
	return m
}

func (m *GenerateModel) resetForm() {
	m.state = generateStateForm
	m.month = services.DefaultMonth
	m.count = strconv.Itoa(services.DefaultBatchSize)
	m.err = nil

	months := make([]huh.Option[string], 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		months = append(months, huh.NewOption(mo.String(), mo.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("month").
				Title("Month").
				Options(months...).
				Value(&m.month),

			huh.NewInput().
				Key("count").
				Title("Number of records").
				Description(fmt.Sprintf("%d to %d", services.MinBatchSize, services.MaxBatchSize)).
				Value(&m.count).
				Validate(validateCount),
		),
	).WithWidth(45).WithShowHelp(false)
}

func validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < services.MinBatchSize || n > services.MaxBatchSize {
		return fmt.Errorf("must be between %d and %d", services.MinBatchSize, services.MaxBatchSize)
	}
	return nil
}

func (m GenerateModel) Title() string { return "Generate & Load Data" }

func (m GenerateModel) ShortHelp() string {
	switch m.state {
	case generateStateRunning:
		return "Generating..."
	case generateStateResult:
		return "Esc: back | n: new batch"
	}
	return "Esc: back | Enter: confirm"
}

func (m GenerateModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(generateResultMsg); ok {
		m.state = generateStateResult
		m.err = res.err
		if res.err == nil {
			m.result = res.result
			fillGrid(&m.preview, res.result.Preview)
		}
		return m, nil
	}

	switch m.state {
	case generateStateForm:
		return m.updateForm(msg)
	case generateStateRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case generateStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m GenerateModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	// the bound fields belong to the model copy the form was built from
	month := m.form.GetString("month")
	count, _ := strconv.Atoi(strings.TrimSpace(m.form.GetString("count")))
	m.state = generateStateRunning
	return m, tea.Batch(m.spinner.Tick, m.generateCmd(month, services.ClampBatchSize(count)))
}

func (m GenerateModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			m.resetForm()
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m GenerateModel) View() string {
	switch m.state {
	case generateStateForm:
		return paddedStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())

	case generateStateRunning:
		return paddedStyle.Render(fmt.Sprintf("%s Generating and loading records...", m.spinner.View()))

	case generateStateResult:
		if m.err != nil {
			return paddedStyle.Render(renderError(m.err) + "\n\n" + mutedStyle.Render(m.ShortHelp()))
		}
		return paddedStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			okStyle.Render(fmt.Sprintf("%d records for %s generated and loaded into the database!", m.result.Count, m.result.Month)),
			"",
			"First rows of the batch:",
			m.preview.View(),
			"",
			mutedStyle.Render(m.ShortHelp()),
		))
	}

	return ""
}

type generateResultMsg struct {
	result services.GenerateResult
	err    error
}

func (m GenerateModel) generateCmd(month string, count int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.dashboard.Generate(ctx, month, count)
		return generateResultMsg{result: res, err: err}
	}
}
