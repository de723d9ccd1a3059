package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

// FormatTaskList renders tasks as a table with ID prefixes for later commands.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks found. Add one with: lifetrack task add --title \"Read 10 pages\"") + "\n"
	}
	headers := []string{"", "ID", "TITLE", "PRIORITY", "DATE", ""}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		title := Truncate(t.Title, 40)
		if t.IsCompleted() {
			title = StyleDim.Strikethrough(true).Render(title)
		}
		rows = append(rows, []string{
			TaskStatusPill(t.Status),
			TruncID(t.ID),
			title,
			PriorityPill(t.Priority),
			RelativeDayFrom(t.Date, now),
			RitualBadge(t.IsDaily),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskLine is the one-line confirmation printed after a task changes.
func FormatTaskLine(verb string, t *domain.Task) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s", StyleGreen.Render(verb), TruncID(t.ID), Bold(t.Title)))
	if t.IsDaily {
		b.WriteString(" " + RitualBadge(true))
	}
	if verb != "Added" {
		b.WriteString(" " + TaskStatusPill(t.Status))
	}
	return b.String() + "\n"
}
