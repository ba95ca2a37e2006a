package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spesegen/cmd/tui/internal/view"
	"spesegen/internal/backend"
	"spesegen/internal/cli"
	applog "spesegen/internal/log"
	"spesegen/internal/services"
)

type model struct {
	dashboard *services.Dashboard

	currentView View
	size        tea.WindowSizeMsg

	generateView view.GenerateModel
	expensesView view.ExpensesModel
	insightsView view.InsightsModel
	queryView    view.QueryModel
	reportsView  view.ReportsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewGenerate View = 1
	ViewExpenses View = 2
	ViewInsights View = 3
	ViewQuery    View = 4
	ViewReports  View = 5
)

func newModel(d *services.Dashboard) model {
	return model{
		dashboard:    d,
		currentView:  ViewMenu,
		generateView: view.NewGenerateModel(d),
		expensesView: view.NewExpensesModel(d),
		insightsView: view.NewInsightsModel(d),
		queryView:    view.NewQueryModel(d),
		reportsView:  view.NewReportsModel(d),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// enter switches to v, replaying the last window size so the fresh view can
// lay itself out.
func (m model) enter(v View, init tea.Cmd) (tea.Model, tea.Cmd) {
	m.currentView = v
	if m.size.Width == 0 {
		return m, init
	}
	size := m.size
	return m, tea.Batch(init, func() tea.Msg { return size })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.generateView = view.NewGenerateModel(m.dashboard)
				return m.enter(ViewGenerate, m.generateView.Init())
			case "2":
				m.expensesView = view.NewExpensesModel(m.dashboard)
				return m.enter(ViewExpenses, m.expensesView.Init())
			case "3":
				m.insightsView = view.NewInsightsModel(m.dashboard)
				return m.enter(ViewInsights, m.insightsView.Init())
			case "4":
				// the editor keeps the last statement between visits
				return m.enter(ViewQuery, m.queryView.Init())
			case "5":
				m.reportsView = view.NewReportsModel(m.dashboard)
				return m.enter(ViewReports, m.reportsView.Init())
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewGenerate:
		var newModel tea.Model
		newModel, cmd = m.generateView.Update(msg)
		m.generateView = newModel.(view.GenerateModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expensesView.Update(msg)
		m.expensesView = newModel.(view.ExpensesModel)
	case ViewInsights:
		var newModel tea.Model
		newModel, cmd = m.insightsView.Update(msg)
		m.insightsView = newModel.(view.InsightsModel)
	case ViewQuery:
		var newModel tea.Model
		newModel, cmd = m.queryView.Update(msg)
		m.queryView = newModel.(view.QueryModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Expense Data Generator & Dashboard\n\n" +
				"1. Generate & Load Data\n" +
				"2. View All Data\n" +
				"3. Category Insights\n" +
				"4. Run SQL Query\n" +
				"5. Predefined SQL Queries\n\n" +
				"q. Quit",
		)
	case ViewGenerate:
		return m.generateView.View()
	case ViewExpenses:
		return m.expensesView.View()
	case ViewInsights:
		return m.insightsView.View()
	case ViewQuery:
		return m.queryView.View()
	case ViewReports:
		return m.reportsView.View()
	}

	return "Unknown View"
}

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()

	// the terminal belongs to the TUI, so logs go to a file
	logFile, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.TUILogFile, err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := cli.SetupLogger(cfg.LogLevel, logFile).WithComponent(applog.ComponentTUI)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	res, err := backend.NewFactory(logger).CreateBackend(context.Background(), backendCfg)
	if err != nil {
		logger.Error("Failed to create backend", applog.FieldError, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(res.Dashboard), tea.WithAltScreen())
	_, runErr := p.Run()

	if err := res.Cleanup(); err != nil {
		logger.Error("Backend cleanup error", applog.FieldError, err)
	}
	if runErr != nil {
		logger.Error("Failed to run TUI", applog.FieldError, runErr)
		os.Exit(1)
	}
}
