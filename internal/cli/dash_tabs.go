package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Overview ─────────────────────────────────────────────────────────────────

type overviewView struct{ state *dashState }

func newOverviewView(s *dashState) *overviewView { return &overviewView{state: s} }

func (v *overviewView) ID() ViewID    { return ViewOverview }
func (v *overviewView) Title() string { return "Overview" }
func (v *overviewView) Init() tea.Cmd { return nil }

func (v *overviewView) ShortHelp() []key.Binding {
	if v.state.Data == nil || v.state.Data.Focus == nil {
		return nil
	}
	return []key.Binding{dashKeys.Toggle}
}

// Update toggles the focus task in place.
func (v *overviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, dashKeys.Toggle) {
		return v, nil
	}
	if focus := v.state.Data.Focus; focus != nil {
		return v, toggleTaskCmd(v.state, focus)
	}
	return v, nil
}

func (v *overviewView) View() string {
	d := v.state.Data
	var b strings.Builder
	b.WriteString(formatter.FormatStats(d))
	b.WriteString(formatter.Header("Last "+fmt.Sprint(len(d.Heatmap))+" days") + "\n")
	b.WriteString(formatter.FormatHeatmap(d.Heatmap))
	return b.String()
}

// ── Tasks ────────────────────────────────────────────────────────────────────

// tasksView lists daily rituals followed by the month's other tasks and
// lets the user toggle them in place.
type tasksView struct {
	state  *dashState
	cursor int
}

func newTasksView(s *dashState) *tasksView { return &tasksView{state: s} }

func (v *tasksView) ID() ViewID    { return ViewTasks }
func (v *tasksView) Title() string { return "Tasks" }
func (v *tasksView) Init() tea.Cmd { return nil }

func (v *tasksView) ShortHelp() []key.Binding {
	return []key.Binding{dashKeys.Up, dashKeys.Down, dashKeys.Toggle}
}

// rows returns the tasks in display order: rituals first.
func (v *tasksView) rows() []*domain.Task {
	d := v.state.Data
	rows := make([]*domain.Task, 0, len(d.DailyTasks)+len(d.MonthTasks))
	rows = append(rows, d.DailyTasks...)
	for _, t := range d.MonthTasks {
		if !t.IsDaily {
			rows = append(rows, t)
		}
	}
	return rows
}

func (v *tasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	rows := v.rows()
	switch {
	case key.Matches(keyMsg, dashKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, dashKeys.Down):
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, dashKeys.Toggle):
		if v.cursor < len(rows) {
			return v, toggleTaskCmd(v.state, rows[v.cursor])
		}
	}
	return v, nil
}

func toggleTaskCmd(s *dashState, t *domain.Task) tea.Cmd {
	return func() tea.Msg {
		updated, err := s.App.Tasks.Toggle(s.Ctx, s.OwnerID, t.ID)
		return taskToggledMsg{task: updated, err: err}
	}
}

func (v *tasksView) View() string {
	rows := v.rows()
	if len(rows) == 0 {
		return formatter.Dim("No tasks this month. Add one with: lifetrack task add --title \"Read 10 pages\"") + "\n"
	}
	v.cursor = min(v.cursor, len(rows)-1)

	var b strings.Builder
	b.WriteString(formatter.FormatTaskStats("Tasks", v.state.Data.Tasks))
	b.WriteString(formatter.FormatTaskStats("Rituals", v.state.Data.Rituals))
	b.WriteString("\n")
	for i, t := range rows {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		title := t.Title
		if t.IsCompleted() {
			title = formatter.StyleDim.Strikethrough(true).Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s %s %s\n",
			marker,
			formatter.TaskStatusPill(t.Status),
			formatter.PriorityPill(t.Priority),
			title,
			formatter.Dim(formatter.RelativeDayFrom(t.Date, v.state.Data.GeneratedAt)),
			formatter.RitualBadge(t.IsDaily),
		))
	}
	return b.String()
}

// ── Finance ──────────────────────────────────────────────────────────────────

type financeView struct{ state *dashState }

func newFinanceView(s *dashState) *financeView { return &financeView{state: s} }

func (v *financeView) ID() ViewID                          { return ViewFinance }
func (v *financeView) Title() string                       { return "Finance" }
func (v *financeView) ShortHelp() []key.Binding            { return nil }
func (v *financeView) Init() tea.Cmd                       { return nil }
func (v *financeView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *financeView) View() string {
	d := v.state.Data
	var b strings.Builder
	b.WriteString(formatter.FormatFinanceStats(d.Month, d.Finance) + "\n\n")
	b.WriteString(formatter.Header("Spending by category") + "\n")
	b.WriteString(formatter.FormatCategories(d.Categories) + "\n")
	b.WriteString(formatter.Header("Trend") + "\n")
	b.WriteString(formatter.FormatTrend(d.Trend) + "\n")
	b.WriteString(formatter.Header("This month") + "\n")
	b.WriteString(formatter.FormatEntryList(d.MonthEntries))
	return b.String()
}

// ── Insights ─────────────────────────────────────────────────────────────────

type insightsView struct{ state *dashState }

func newInsightsView(s *dashState) *insightsView { return &insightsView{state: s} }

func (v *insightsView) ID() ViewID                          { return ViewInsights }
func (v *insightsView) Title() string                       { return "Insights" }
func (v *insightsView) ShortHelp() []key.Binding            { return nil }
func (v *insightsView) Init() tea.Cmd                       { return nil }
func (v *insightsView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *insightsView) View() string {
	return formatter.FormatInsights(v.state.Data.Insights)
}
