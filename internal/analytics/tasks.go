package analytics

import (
	"math"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

// TaskStats summarizes completion over a set of tasks.
type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int // whole percent, 0 when Total is 0
}

// MonthlyTaskStats computes completion over tasks dated within month ("YYYY-MM").
func MonthlyTaskStats(tasks []*domain.Task, month string) TaskStats {
	return countTasks(tasks, func(t *domain.Task) bool {
		return inMonth(t.Date, month)
	})
}

// DailyRitualStats computes completion over every daily ritual, regardless of date.
func DailyRitualStats(tasks []*domain.Task) TaskStats {
	return countTasks(tasks, func(t *domain.Task) bool {
		return t.IsDaily
	})
}

func countTasks(tasks []*domain.Task, keep func(*domain.Task) bool) TaskStats {
	var s TaskStats
	for _, t := range tasks {
		if !keep(t) {
			continue
		}
		s.Total++
		if t.IsCompleted() {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	s.CompletionRate = percent(s.Completed, s.Total)
	return s
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// FilterTasks returns the tasks matching an optional month prefix and an
// optional status, preserving order. Empty filters match everything.
func FilterTasks(tasks []*domain.Task, month string, status domain.TaskStatus) []*domain.Task {
	if month == "" && status == "" {
		return tasks
	}
	var out []*domain.Task
	for _, t := range tasks {
		if month != "" && !inMonth(t.Date, month) {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitRituals partitions tasks into daily rituals and regular tasks.
func SplitRituals(tasks []*domain.Task) (daily, regular []*domain.Task) {
	for _, t := range tasks {
		if t.IsDaily {
			daily = append(daily, t)
		} else {
			regular = append(regular, t)
		}
	}
	return daily, regular
}

var priorityRank = map[domain.Priority]int{
	domain.PriorityHigh:   3,
	domain.PriorityMedium: 2,
	domain.PriorityLow:    1,
}

// PrimaryTask picks the current focus: the pending task with the highest
// priority, earliest date first among equals. Remaining ties keep input
// order. It reports false when nothing is pending.
func PrimaryTask(tasks []*domain.Task) (*domain.Task, bool) {
	var best *domain.Task
	for _, t := range tasks {
		if t.Status != domain.TaskPending {
			continue
		}
		if best == nil || focusBefore(t, best) {
			best = t
		}
	}
	return best, best != nil
}

func focusBefore(a, b *domain.Task) bool {
	if ra, rb := priorityRank[a.Priority], priorityRank[b.Priority]; ra != rb {
		return ra > rb
	}
	da, errA := ParseDate(a.Date)
	db, errB := ParseDate(b.Date)
	if errA != nil || errB != nil {
		return false
	}
	return da.Before(db)
}
