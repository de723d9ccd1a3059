package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/lifetrack/internal/cli"
	"github.com/alexanderramin/lifetrack/internal/config"
	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/repository"
	"github.com/alexanderramin/lifetrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	entryRepo := repository.NewSQLiteLedgerRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	authSessionRepo := repository.NewSQLiteAuthSessionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.SlogLevel()))
	}

	// Wire services
	loader := service.NewSnapshotLoader(taskRepo, entryRepo, profileRepo)
	app := &cli.App{
		Auth:      service.NewAuthService(userRepo, authSessionRepo, uow, cfg.SessionTTL, observers...),
		Tasks:     service.NewTaskService(taskRepo, uow, observers...),
		Ledger:    service.NewLedgerService(entryRepo, observers...),
		Profiles:  service.NewProfileService(profileRepo, uow, observers...),
		Dashboard: service.NewDashboardService(loader, observers...),
		Insights:  service.NewInsightService(loader, observers...),
		Finance:   service.NewFinanceService(loader, observers...),
		Backup:    service.NewBackupService(loader, uow, observers...),

		Sessions:    cli.NewFileSessionStore(cfg.SessionFile),
		Now:         time.Now,
		TrendMonths: cfg.TrendMonths,
		HeatmapDays: cfg.HeatmapDays,
	}

	// Forms and the dashboard need a real terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
