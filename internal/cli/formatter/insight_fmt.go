package formatter

import (
	"strings"

	"github.com/alexanderramin/lifetrack/internal/analytics"
)

// ActionHint translates an insight's navigation target into the command to run.
func ActionHint(action string) string {
	switch action {
	case analytics.ActionProfile:
		return "lifetrack profile edit"
	case analytics.ActionTasks:
		return "lifetrack task add"
	default:
		return ""
	}
}

// FormatInsights renders each insight as a titled paragraph.
func FormatInsights(list []analytics.Insight) string {
	var b strings.Builder
	b.WriteString(Header("Insights") + "\n")
	for _, ins := range list {
		style := InsightStyle(ins.Kind)
		b.WriteString(style.Render(InsightIcon(ins.Kind)+" ") + Bold(ins.Title) + "\n")
		b.WriteString("  " + ins.Message + "\n")
		if hint := ActionHint(ins.Action); hint != "" {
			b.WriteString("  " + Dim("→ "+hint) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
