package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/domain"
)

// FormatTaskStats renders completion counts with a progress bar.
func FormatTaskStats(label string, s analytics.TaskStats) string {
	return fmt.Sprintf("%-10s %s  %s done / %d total  %s pending\n",
		Dim(label),
		RenderProgress(float64(s.CompletionRate)/100, 16),
		StyleGreen.Render(fmt.Sprint(s.Completed)),
		s.Total,
		StyleYellow.Render(fmt.Sprint(s.Pending)),
	)
}

// FormatGamification renders level, XP progress and the ritual streak.
func FormatGamification(g analytics.GamificationStats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s   %s\n",
		StylePurple.Bold(true).Render(fmt.Sprintf("Level %d", g.Level)),
		RenderXPBar(g.ProgressToNextLevel, analytics.XPPerLevel, 16),
		Dim(fmt.Sprintf("%d XP total", g.TotalXP)),
	))
	streak := Dim("no active streak")
	if g.CurrentStreak > 0 {
		streak = StyleYellow.Render(fmt.Sprintf("🔥 %d day streak", g.CurrentStreak))
	}
	b.WriteString(fmt.Sprintf("%s   %s\n", streak, Dim(fmt.Sprintf("%d tasks completed", g.TotalCompleted))))
	return b.String()
}

// FormatStats is the "stats" command output: progress, rituals and finances.
func FormatStats(d *app.DashboardResponse) string {
	var b strings.Builder
	greeting := "Your progress"
	if d.Profile.Nickname != "" {
		greeting = "Hi " + d.Profile.Nickname
	}
	b.WriteString(Header(greeting+" · "+d.Month) + "\n")
	if d.Profile.Goal != "" {
		b.WriteString(Dim("Goal: ") + d.Profile.Goal + "\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatFocus(d.Focus) + "\n")
	b.WriteString(FormatGamification(d.Gamification) + "\n")
	b.WriteString(FormatTaskStats("Tasks", d.Tasks))
	b.WriteString(FormatTaskStats("Rituals", d.Rituals))
	b.WriteString("\n")
	b.WriteString(FormatFinanceStats(d.Month, d.Finance) + "\n")
	return b.String()
}

// FormatFocus renders the current focus task, or the all-clear message when
// nothing is pending.
func FormatFocus(t *domain.Task) string {
	if t == nil {
		return StyleGreen.Bold(true).Render("✔ All Clear for Now") + "\n" +
			Dim("You've crushed your tasks. Take a breath, or add a new focus for today.") + "\n"
	}
	kind := "Task"
	if t.IsDaily {
		kind = "Daily Ritual"
	}
	if d, err := analytics.ParseDate(t.Date); err == nil {
		kind += " · " + d.Weekday().String()
	}
	title := t.Title
	if title == "" {
		title = "Untitled Task"
	}
	return fmt.Sprintf("%s %s\n  %s\n  %s\n",
		StyleBlue.Bold(true).Render("◎ CURRENT FOCUS"),
		PriorityPill(t.Priority),
		Bold(title),
		Dim(kind),
	)
}
