package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// watchInterval is how often the watch view reloads the dashboard. The
// snapshot itself is cached behind the service, so most reloads are cheap.
const watchInterval = 30 * time.Second

type watchTickMsg time.Time

type watchLoadedMsg struct {
	resp *contract.DashboardResponse
	err  error
}

type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func newWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type watchModel struct {
	app     *App
	keys    watchKeyMap
	spinner spinner.Model
	resp    *contract.DashboardResponse
	err     error
	loading bool
}

func newWatchModel(app *App) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return watchModel{
		app:     app,
		keys:    newWatchKeyMap(),
		spinner: sp,
		loading: true,
	}
}

func runWatch(app *App) error {
	_, err := tea.NewProgram(newWatchModel(app), tea.WithAltScreen()).Run()
	return err
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m watchModel) load() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Dashboard.GetDashboard(context.Background(), contract.DashboardRequest{})
		return watchLoadedMsg{resp: resp, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.load())
		}

	case watchLoadedMsg:
		m.loading = false
		m.resp = msg.resp
		m.err = msg.err
		return m, tea.Tick(watchInterval, func(t time.Time) tea.Msg {
			return watchTickMsg(t)
		})

	case watchTickMsg:
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.load())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + m.footer()
	}
	if m.resp == nil {
		return m.spinner.View() + " Loading dashboard...\n"
	}

	body := formatter.FormatDashboard(m.resp)
	if m.loading {
		body += "\n" + m.spinner.View() + formatter.Dim(" refreshing...")
	}
	return body + "\n" + m.footer()
}

func (m watchModel) footer() string {
	return formatter.Dim("r refresh · q quit")
}
