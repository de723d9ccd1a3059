package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashModel is the root bubbletea Model for the dashboard.
// It owns the tab list and a viewport that scrolls the active tab.
type dashModel struct {
	state    *dashState
	tabs     []View
	active   int
	vp       viewport.Model
	status   string
	loaded   bool
	quitting bool
}

func newDashModel(ctx context.Context, a *App, ownerID string) *dashModel {
	state := &dashState{Ctx: ctx, App: a, OwnerID: ownerID}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{PageUp: dashKeys.PageUp, PageDown: dashKeys.PageDown}
	vp.MouseWheelEnabled = true

	return &dashModel{
		state: state,
		tabs: []View{
			newOverviewView(state),
			newTasksView(state),
			newFinanceView(state),
			newInsightsView(state),
		},
		vp: vp,
	}
}

func (m *dashModel) activeView() View { return m.tabs[m.active] }

func (m *dashModel) Init() tea.Cmd {
	return loadDashboardCmd(m.state)
}

func (m *dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.state.ContentHeight()
		m.syncContent()
		return m, nil

	case dashboardLoadedMsg:
		m.state.Data, m.state.Err = msg.data, msg.err
		m.loaded = true
		m.syncContent()
		return m, nil

	case refreshMsg:
		return m, loadDashboardCmd(m.state)

	case taskToggledMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return m, nil
		}
		verb := "Reopened"
		if msg.task.IsCompleted() {
			verb = "Completed"
		}
		m.status = formatter.StyleGreen.Render(verb) + " " + msg.task.Title
		return m, loadDashboardCmd(m.state)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *dashModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, dashKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, dashKeys.NextTab):
		m.switchTab((m.active + 1) % len(m.tabs))
		return m, nil
	case key.Matches(msg, dashKeys.PrevTab):
		m.switchTab((m.active + len(m.tabs) - 1) % len(m.tabs))
		return m, nil
	case key.Matches(msg, tabKeys):
		m.switchTab(int(msg.Runes[0] - '1'))
		return m, nil
	case key.Matches(msg, dashKeys.Refresh):
		m.status = formatter.Dim("Refreshing…")
		return m, loadDashboardCmd(m.state)
	case key.Matches(msg, dashKeys.PageUp, dashKeys.PageDown):
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	if m.state.Data == nil {
		return m, nil
	}
	updated, cmd := m.activeView().Update(msg)
	m.tabs[m.active] = updated.(View)
	m.syncContent()
	return m, cmd
}

func (m *dashModel) switchTab(i int) {
	if i < 0 || i >= len(m.tabs) || i == m.active {
		return
	}
	m.active = i
	m.status = ""
	m.syncContent()
	m.vp.GotoTop()
}

// syncContent re-renders the active tab into the viewport.
func (m *dashModel) syncContent() {
	m.vp.SetContent(m.body())
}

func (m *dashModel) body() string {
	switch {
	case !m.loaded:
		return "\n  " + formatter.Dim("Loading…")
	case m.state.Err != nil:
		return "\n  " + formatter.StyleRed.Render("Error: "+m.state.Err.Error()) +
			"\n  " + formatter.Dim("press r to retry")
	default:
		return m.activeView().View()
	}
}

func (m *dashModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.tabBar() + "\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	} else {
		b.WriteString("\n")
	}
	if m.state.Height > 0 {
		b.WriteString(m.vp.View())
	} else {
		b.WriteString(m.body())
	}
	b.WriteString("\n" + m.helpBar())
	return b.String()
}

var (
	activeTabStyle   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
)

func (m *dashModel) tabBar() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := string(rune('1'+i)) + " " + t.Title()
		if i == m.active {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = inactiveTabStyle.Render(label)
		}
	}
	return formatter.StyleHeader.Render("LifeTrack") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *dashModel) helpBar() string {
	bindings := append(m.activeView().ShortHelp(),
		dashKeys.NextTab, dashKeys.Refresh, dashKeys.PageDown, dashKeys.Quit)
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}
