package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGamification_NoCompletedTasks(t *testing.T) {
	tasks := []*domain.Task{mkTask(daysAgo(0)), mkTask(daysAgo(0), daily)}
	g := Gamification(tasks, testNow)
	assert.Equal(t, GamificationStats{Level: 1}, g)
	assert.Equal(t, GamificationStats{Level: 1}, Gamification(nil, testNow))
}

func TestGamification_XPPerTaskKind(t *testing.T) {
	g := Gamification([]*domain.Task{mkTask("2024-01-01", done)}, testNow)
	assert.Equal(t, 10, g.TotalXP)
	assert.Equal(t, 1, g.TotalCompleted)

	g = Gamification([]*domain.Task{mkTask("2024-01-01", done, daily)}, testNow)
	assert.Equal(t, 20, g.TotalXP, "ritual bonus replaces the base reward")
}

func TestGamification_LevelFormula(t *testing.T) {
	for n := 0; n <= 25; n++ {
		var tasks []*domain.Task
		for i := 0; i < n; i++ {
			tasks = append(tasks, mkTask("2024-01-01", done))
		}
		g := Gamification(tasks, testNow)
		assert.Equal(t, n*10, g.TotalXP)
		assert.Equal(t, g.TotalXP/100+1, g.Level)
		assert.Equal(t, g.TotalXP%100, g.ProgressToNextLevel)
	}
}

func TestGamification_MixedLifetimeTotals(t *testing.T) {
	var tasks []*domain.Task
	for i := 0; i < 4; i++ {
		tasks = append(tasks, mkTask("2023-02-01", done, daily))
	}
	for i := 0; i < 3; i++ {
		tasks = append(tasks, mkTask("2025-06-01", done))
	}
	tasks = append(tasks, mkTask("2025-06-01"))

	g := Gamification(tasks, testNow)
	assert.Equal(t, 110, g.TotalXP)
	assert.Equal(t, 2, g.Level)
	assert.Equal(t, 10, g.ProgressToNextLevel)
	assert.Equal(t, 7, g.TotalCompleted)
	assert.Equal(t, 0, g.CurrentStreak, "old rituals do not keep the streak alive")
}

func TestCurrentStreak(t *testing.T) {
	cases := []struct {
		name  string
		tasks []*domain.Task
		want  int
	}{
		{"empty", nil, 0},
		{"single today", []*domain.Task{mkTask(daysAgo(0), daily, done)}, 1},
		{"three consecutive ending today", []*domain.Task{
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(1), daily, done),
			mkTask(daysAgo(2), daily, done),
		}, 3},
		{"ending yesterday", []*domain.Task{
			mkTask(daysAgo(1), daily, done),
			mkTask(daysAgo(2), daily, done),
		}, 2},
		{"stale: only three days ago", []*domain.Task{mkTask(daysAgo(3), daily, done)}, 0},
		{"stale: only two days ago", []*domain.Task{mkTask(daysAgo(2), daily, done)}, 0},
		{"gap between yesterday and three days ago", []*domain.Task{
			mkTask(daysAgo(1), daily, done),
			mkTask(daysAgo(3), daily, done),
		}, 1},
		{"two day gap resets to newest run", []*domain.Task{
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(2), daily, done),
			mkTask(daysAgo(3), daily, done),
		}, 1},
		{"same day counts once", []*domain.Task{
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(1), daily, done),
		}, 2},
		{"pending rituals ignored", []*domain.Task{
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(1), daily),
			mkTask(daysAgo(2), daily, done),
		}, 1},
		{"regular tasks ignored", []*domain.Task{
			mkTask(daysAgo(0), done),
			mkTask(daysAgo(1), done),
		}, 0},
		{"unordered input", []*domain.Task{
			mkTask(daysAgo(2), daily, done),
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(1), daily, done),
		}, 3},
		{"completion dated tomorrow ends the streak", []*domain.Task{
			mkTask(daysAgo(0), daily, done),
			mkTask(daysAgo(1), daily, done),
			mkTask(DateKey(testNow.AddDate(0, 0, 1)), daily, done),
		}, 0},
		{"pending ritual dated tomorrow does not count", []*domain.Task{
			mkTask(daysAgo(0), daily, done),
			mkTask(DateKey(testNow.AddDate(0, 0, 1)), daily),
		}, 1},
		{"malformed date ignored", []*domain.Task{
			mkTask("not-a-date", daily, done),
			mkTask(daysAgo(0), daily, done),
		}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CurrentStreak(tc.tasks, testNow))
			assert.Equal(t, tc.want, Gamification(tc.tasks, testNow).CurrentStreak)
		})
	}
}

func TestCurrentStreak_AcrossMonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		mkTask("2025-03-01", daily, done),
		mkTask("2025-02-28", daily, done),
		mkTask("2025-02-27", daily, done),
	}
	assert.Equal(t, 3, CurrentStreak(tasks, now))
}

func TestCurrentStreak_UsesEvaluationCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*60*60)
	// Late evening on June 14th local time, already June 15th in UTC.
	now := time.Date(2025, 6, 14, 22, 0, 0, 0, loc)
	tasks := []*domain.Task{mkTask("2025-06-13", daily, done)}
	assert.Equal(t, 1, CurrentStreak(tasks, now), "June 13th is yesterday for the local user")
}
