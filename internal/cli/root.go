package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lifetrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth      service.AuthService
	Tasks     service.TaskService
	Ledger    service.LedgerService
	Profiles  service.ProfileService
	Dashboard service.DashboardService
	Insights  service.InsightService
	Finance   service.FinanceService
	Backup    service.BackupService

	// Sessions persists the signed-in token between invocations.
	Sessions SessionStore

	// Now is the clock used for default dates and analytics windows.
	Now func() time.Time

	TrendMonths int
	HeatmapDays int

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// UserOverride is bound to --user and bypasses session lookup.
	UserOverride string
}

// NewRootCmd creates the top-level "lifetrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lifetrack",
		Short:         "Tasks, daily rituals, finances and the insights between them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.UserOverride, "user", "",
		"act as this user ID without signing in (scripting)")

	root.AddCommand(
		newAuthCmd(app),
		newTaskCmd(app),
		newFinanceCmd(app),
		newProfileCmd(app),
		newStatsCmd(app),
		newInsightsCmd(app),
		newHeatmapCmd(app),
		newDashCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// currentUser returns the owner ID commands act on.
func (a *App) currentUser(ctx context.Context) (string, error) {
	if a.UserOverride != "" {
		return a.UserOverride, nil
	}
	token, err := a.Sessions.Load()
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	res, err := a.Auth.Session(ctx, token)
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		err = fmt.Errorf("%w (run: lifetrack auth signin)", err)
		if clearErr := a.Sessions.Clear(); clearErr != nil {
			err = errors.Join(err, fmt.Errorf("clearing session: %w", clearErr))
		}
		return "", err
	case errors.Is(err, service.ErrUnauthenticated):
		return "", fmt.Errorf("%w (run: lifetrack auth signup or lifetrack auth signin)", err)
	case err != nil:
		return "", err
	}
	return res.User.ID, nil
}
