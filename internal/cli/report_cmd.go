package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func (a *App) dashboard(ctx context.Context, ownerID, month string) (*app.DashboardResponse, error) {
	now := a.now()
	return a.Dashboard.Dashboard(ctx, ownerID, app.DashboardRequest{
		Now:         &now,
		Month:       month,
		TrendMonths: a.TrendMonths,
		HeatmapDays: a.HeatmapDays,
	})
}

func newStatsCmd(a *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Level, streak, task completion and the month's finances",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			d, err := a.dashboard(cmd.Context(), ownerID, month)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(d))
			return nil
		},
	}

	cmd.Flags().Var(newMonthValue(&month), "month", "Month to report (default current)")

	return cmd
}

func newInsightsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Personalised observations about your habits and spending",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			list, err := a.Insights.Insights(cmd.Context(), ownerID, a.now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInsights(list))
			return nil
		},
	}
}

func newHeatmapCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap",
		Short: "Completed tasks per day over the recent past",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			d, err := a.dashboard(cmd.Context(), ownerID, "")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHeatmap(d.Heatmap))
			return nil
		},
	}
}
