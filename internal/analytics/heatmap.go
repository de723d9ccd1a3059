package analytics

import (
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

// DefaultHeatmapDays is the activity window shown on the dashboard.
const DefaultHeatmapDays = 30

const maxIntensity = 4

// HeatmapDay is one cell of the activity heatmap.
type HeatmapDay struct {
	Date      string
	Count     int
	Intensity int // 0..4, saturating at 4 completions
}

// ActivityHeatmap counts completed tasks per day over the last days days
// ending today, oldest first.
func ActivityHeatmap(tasks []*domain.Task, now time.Time, days int) []HeatmapDay {
	if days <= 0 {
		days = DefaultHeatmapDays
	}
	counts := make(map[string]int)
	for _, t := range tasks {
		if t.IsCompleted() {
			counts[t.Date]++
		}
	}

	cells := make([]HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := DateKey(now.AddDate(0, 0, -i))
		c := counts[date]
		cells = append(cells, HeatmapDay{
			Date:      date,
			Count:     c,
			Intensity: min(c, maxIntensity),
		})
	}
	return cells
}
