package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/domain"
)

// insightTrendMonths is the trend window the thrift rule compares across.
const insightTrendMonths = 2

type dashboardService struct {
	loader   *SnapshotLoader
	observer UseCaseObserver
}

func NewDashboardService(loader *SnapshotLoader, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{loader: loader, observer: useCaseObserverOrNoop(observers)}
}

func (s *dashboardService) Dashboard(ctx context.Context, ownerID string, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "dashboard", time.Now(), fields, &err)

	now := app.ResolveNow(req.Now)
	month, err := resolveMonth(req.Month, now)
	if err != nil {
		return nil, err
	}
	trendMonths := req.TrendMonths
	if trendMonths <= 0 {
		trendMonths = analytics.DefaultTrendMonths
	}
	heatmapDays := req.HeatmapDays
	if heatmapDays <= 0 {
		heatmapDays = analytics.DefaultHeatmapDays
	}
	fields["month"] = month

	snap, err := s.loader.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	daily, _ := analytics.SplitRituals(snap.Tasks)
	resp = &app.DashboardResponse{
		GeneratedAt:  now,
		Month:        month,
		Tasks:        analytics.MonthlyTaskStats(snap.Tasks, month),
		Rituals:      analytics.DailyRitualStats(snap.Tasks),
		Gamification: analytics.Gamification(snap.Tasks, now),
		Finance:      analytics.MonthlyFinanceStats(snap.Entries, month),
		Categories:   analytics.ExpensesByCategory(snap.Entries, month),
		Trend:        analytics.MonthlyTrend(snap.Entries, trendMonths, now),
		Heatmap:      analytics.ActivityHeatmap(snap.Tasks, now, heatmapDays),
		Insights:     insightsFor(snap, now),
		Profile:      snap.Profile,
		MonthTasks:   analytics.FilterTasks(snap.Tasks, month, ""),
		DailyTasks:   daily,
		MonthEntries: analytics.FilterEntries(snap.Entries, month, ""),
	}
	if focus, ok := analytics.PrimaryTask(snap.Tasks); ok {
		resp.Focus = focus
	}
	fields["task_count"] = len(snap.Tasks)
	fields["entry_count"] = len(snap.Entries)
	return resp, nil
}

// insightsFor evaluates the insight rules against the calendar month of now.
func insightsFor(snap *snapshot, now time.Time) []analytics.Insight {
	month := analytics.MonthKey(now)
	return analytics.GenerateInsights(analytics.InsightInput{
		TaskStats:         analytics.MonthlyTaskStats(snap.Tasks, month),
		Trend:             analytics.MonthlyTrend(snap.Entries, insightTrendMonths, now),
		Gamification:      analytics.Gamification(snap.Tasks, now),
		ExpenseCategories: analytics.ExpensesByCategory(snap.Entries, month),
		Profile:           snap.Profile,
	})
}

func resolveMonth(month string, now time.Time) (string, error) {
	if month == "" {
		return analytics.MonthKey(now), nil
	}
	if err := domain.ValidateMonth("month", month); err != nil {
		return "", err
	}
	return month, nil
}

type insightService struct {
	loader   *SnapshotLoader
	observer UseCaseObserver
}

func NewInsightService(loader *SnapshotLoader, observers ...UseCaseObserver) InsightService {
	return &insightService{loader: loader, observer: useCaseObserverOrNoop(observers)}
}

func (s *insightService) Insights(ctx context.Context, ownerID string, now time.Time) (list []analytics.Insight, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "insights", time.Now(), fields, &err)

	snap, err := s.loader.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	list = insightsFor(snap, now)
	fields["count"] = len(list)
	return list, nil
}

type financeService struct {
	loader   *SnapshotLoader
	observer UseCaseObserver
}

func NewFinanceService(loader *SnapshotLoader, observers ...UseCaseObserver) FinanceService {
	return &financeService{loader: loader, observer: useCaseObserverOrNoop(observers)}
}

func (s *financeService) Summary(ctx context.Context, ownerID string, req app.FinanceRequest) (sum *app.FinanceSummary, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "finance-summary", time.Now(), fields, &err)

	now := app.ResolveNow(req.Now)
	month, err := resolveMonth(req.Month, now)
	if err != nil {
		return nil, err
	}
	if err = validateEntryFilter("", req.Type); err != nil {
		return nil, err
	}
	trendMonths := req.TrendMonths
	if trendMonths <= 0 {
		trendMonths = analytics.DefaultTrendMonths
	}
	fields["month"] = month

	snap, err := s.loader.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sum = &app.FinanceSummary{
		Month:      month,
		Stats:      analytics.MonthlyFinanceStats(snap.Entries, month),
		Categories: analytics.ExpensesByCategory(snap.Entries, month),
		Trend:      analytics.MonthlyTrend(snap.Entries, trendMonths, now),
		Entries:    analytics.FilterEntries(snap.Entries, month, req.Type),
	}
	fields["entry_count"] = len(sum.Entries)
	return sum, nil
}
