package analytics

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/shopspring/decimal"
)

// Navigation targets carried in Insight.Action.
const (
	ActionProfile = "/profile"
	ActionTasks   = "/todos"
)

const (
	productiveRate   = 80
	lowRate          = 30
	lowRateMinTasks  = 5
	streakPraiseDays = 3
)

var (
	thriftRatio       = decimal.RequireFromString("0.9")
	spendingThreshold = decimal.NewFromInt(100)
)

// Insight is one advisory message shown on the dashboard.
type Insight struct {
	Kind    domain.InsightKind
	Title   string
	Message string
	Action  string // optional navigation target
}

// InsightInput bundles the aggregates the insight rules read.
// TaskStats and ExpenseCategories are for the current month; Trend is oldest first.
type InsightInput struct {
	TaskStats         TaskStats
	Trend             []TrendPoint
	Gamification      GamificationStats
	ExpenseCategories []CategoryTotal
	Profile           domain.Profile
}

type insightRule func(InsightInput) (Insight, bool)

var insightRules = []insightRule{
	welcomeInsight,
	productivityInsight,
	thriftInsight,
	streakInsight,
	spendingFocusInsight,
}

// GenerateInsights applies every rule in order and collects the ones that fire.
// When none fire, a single getting-started tip is returned.
func GenerateInsights(in InsightInput) []Insight {
	var list []Insight
	for _, rule := range insightRules {
		if ins, ok := rule(in); ok {
			list = append(list, ins)
		}
	}
	if len(list) == 0 {
		list = append(list, Insight{
			Kind:    domain.InsightTip,
			Title:   "Welcome to Focus!",
			Message: "Start by adding your first task or daily ritual. Consistency is the foundation of success.",
			Action:  ActionTasks,
		})
	}
	return list
}

func welcomeInsight(in InsightInput) (Insight, bool) {
	p := in.Profile
	if p.Nickname == "" {
		return Insight{}, false
	}
	ins := Insight{
		Kind:  domain.InsightInfo,
		Title: fmt.Sprintf("Welcome back, %s!", p.Nickname),
	}
	if p.Goal != "" {
		ins.Message = fmt.Sprintf("You're working towards: \"%s\". Let's make progress today.", p.Goal)
	} else {
		ins.Message = "You haven't set a primary goal yet. Setting a target increases completion by 40%!"
		ins.Action = ActionProfile
	}
	return ins, true
}

func productivityInsight(in InsightInput) (Insight, bool) {
	s := in.TaskStats
	switch {
	case s.CompletionRate > productiveRate:
		return Insight{
			Kind:    domain.InsightSuccess,
			Title:   "Productivity Powerhouse",
			Message: fmt.Sprintf("You've completed %d%% of your tasks this month. Your focus is elite!", s.CompletionRate),
		}, true
	case s.CompletionRate < lowRate && s.Total > lowRateMinTasks:
		return Insight{
			Kind:    domain.InsightWarning,
			Title:   "Falling Behind?",
			Message: "Your task completion rate is currently below 30%. Try breaking your goals into smaller parts.",
		}, true
	}
	return Insight{}, false
}

func thriftInsight(in InsightInput) (Insight, bool) {
	n := len(in.Trend)
	if n < 2 {
		return Insight{}, false
	}
	current, previous := in.Trend[n-1], in.Trend[n-2]
	if !current.Expenses.LessThan(previous.Expenses.Mul(thriftRatio)) {
		return Insight{}, false
	}
	return Insight{
		Kind:    domain.InsightSuccess,
		Title:   "Thrifty Habit!",
		Message: "Impressive savings! You've spent less than last month. Keep that momentum going.",
	}, true
}

func streakInsight(in InsightInput) (Insight, bool) {
	g := in.Gamification
	switch {
	case g.CurrentStreak >= streakPraiseDays:
		return Insight{
			Kind:    domain.InsightSuccess,
			Title:   fmt.Sprintf("%d Day Streak!", g.CurrentStreak),
			Message: "You're building consistent daily rituals. Consistency is the secret to long-term success.",
		}, true
	case g.TotalCompleted > 0 && g.CurrentStreak == 0:
		return Insight{
			Kind:    domain.InsightTip,
			Title:   "Restart the Streak",
			Message: "You've missed your daily rituals recently. Starting again today is all that matters.",
		}, true
	}
	return Insight{}, false
}

func spendingFocusInsight(in InsightInput) (Insight, bool) {
	top, ok := TopCategory(in.ExpenseCategories)
	if !ok || !top.Value.GreaterThan(spendingThreshold) {
		return Insight{}, false
	}
	return Insight{
		Kind:    domain.InsightInfo,
		Title:   "Spending Focus",
		Message: fmt.Sprintf("Most of your spending this month is on \"%s\". Is this aligned with your goals?", top.Name),
	}, true
}

// TopCategory returns the largest category; ties go to the earliest entry.
// The input slice is not reordered.
func TopCategory(cats []CategoryTotal) (CategoryTotal, bool) {
	if len(cats) == 0 {
		return CategoryTotal{}, false
	}
	sorted := make([]CategoryTotal, len(cats))
	copy(sorted, cats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value.GreaterThan(sorted[j].Value)
	})
	return sorted[0], true
}
