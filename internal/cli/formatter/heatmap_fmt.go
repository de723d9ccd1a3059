package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/charmbracelet/lipgloss"
)

// heatShades go from no activity to the saturated intensity.
var heatShades = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#3c3836")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#4f6b4a")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#689d6a")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26")),
}

// HeatCell renders a single heatmap square.
func HeatCell(intensity int) string {
	intensity = min(max(intensity, 0), len(heatShades)-1)
	return heatShades[intensity].Render("■")
}

// heatmapColumns is the number of days per grid row.
const heatmapColumns = 10

// FormatHeatmap lays the cells out oldest first, ten days per row.
func FormatHeatmap(days []analytics.HeatmapDay) string {
	if len(days) == 0 {
		return ""
	}
	var b strings.Builder
	total := 0
	for i, d := range days {
		if i%heatmapColumns == 0 {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Dim(d.Date[5:]) + "  ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(HeatCell(d.Intensity))
		total += d.Count
	}
	b.WriteString("\n")

	legend := make([]string, 0, len(heatShades))
	for i := range heatShades {
		legend = append(legend, HeatCell(i))
	}
	b.WriteString(fmt.Sprintf("\n%s less %s more   %s\n",
		Dim(days[0].Date+" → "+days[len(days)-1].Date),
		strings.Join(legend, ""),
		Dim(fmt.Sprintf("%d completed", total)),
	))
	return b.String()
}
