package analytics

import (
	"sort"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

const (
	XPPerTask   = 10
	XPPerRitual = 20
	XPPerLevel  = 100
)

// GamificationStats is the lifetime score derived from completed tasks.
type GamificationStats struct {
	TotalXP             int
	Level               int
	ProgressToNextLevel int
	CurrentStreak       int
	TotalCompleted      int
}

// Gamification scores every completed task and measures the ritual streak as of now.
func Gamification(tasks []*domain.Task, now time.Time) GamificationStats {
	var s GamificationStats
	for _, t := range tasks {
		if !t.IsCompleted() {
			continue
		}
		s.TotalCompleted++
		if t.IsDaily {
			s.TotalXP += XPPerRitual
		} else {
			s.TotalXP += XPPerTask
		}
	}
	s.Level = s.TotalXP/XPPerLevel + 1
	s.ProgressToNextLevel = s.TotalXP % XPPerLevel
	s.CurrentStreak = CurrentStreak(tasks, now)
	return s
}

// CurrentStreak counts consecutive calendar days, ending today or yesterday,
// with at least one completed daily ritual. Several completions on one day
// count once. Unparseable dates are ignored. The newest completion must fall
// on today or yesterday, so a ritual completed on a future date ends the streak.
func CurrentStreak(tasks []*domain.Task, now time.Time) int {
	today, _ := ParseDate(DateKey(now))

	seen := make(map[string]bool)
	var days []time.Time
	for _, t := range tasks {
		if !t.IsDaily || !t.IsCompleted() || seen[t.Date] {
			continue
		}
		d, err := ParseDate(t.Date)
		if err != nil {
			continue
		}
		seen[t.Date] = true
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	last := days[len(days)-1]
	if gap := daysBetween(today, last); gap != 0 && gap != 1 {
		return 0
	}

	streak := 1
	for i := len(days) - 2; i >= 0; i-- {
		if daysBetween(days[i+1], days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}
