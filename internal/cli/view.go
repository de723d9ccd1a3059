package cli

import (
	"context"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each dashboard tab.
type ViewID int

const (
	ViewOverview ViewID = iota
	ViewTasks
	ViewFinance
	ViewInsights
)

// View is the interface that all dashboard tabs implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // tab label
}

// dashState is shared by the root model and every tab.
type dashState struct {
	Ctx     context.Context
	App     *App
	OwnerID string
	Data    *app.DashboardResponse
	Err     error
	Width   int
	Height  int
}

// chromeHeight is the lines taken by the tab bar, separators and help bar.
const chromeHeight = 4

// ContentHeight returns the lines available to the active tab.
func (s *dashState) ContentHeight() int {
	return max(s.Height-chromeHeight, 1)
}

// ── Messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries a fresh dashboard snapshot or the load error.
type dashboardLoadedMsg struct {
	data *app.DashboardResponse
	err  error
}

// refreshMsg asks the root model to reload the dashboard.
type refreshMsg struct{}

// taskToggledMsg reports the outcome of toggling a task from the tasks tab.
type taskToggledMsg struct {
	task *domain.Task
	err  error
}

func loadDashboardCmd(s *dashState) tea.Cmd {
	ctx, a, ownerID := s.Ctx, s.App, s.OwnerID
	return func() tea.Msg {
		d, err := a.dashboard(ctx, ownerID, "")
		return dashboardLoadedMsg{data: d, err: err}
	}
}
