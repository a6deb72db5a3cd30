package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/cli"
	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pulse/pulse.db
	dbPath := os.Getenv("PULSE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pulse", "pulse.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)

	// One shared cache so per-project invalidation reaches every view.
	store := cache.New()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("PULSE_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Dashboard: service.NewDashboardService(projectRepo, taskRepo, auditRepo, store, observer),
		Workload:  service.NewWorkloadService(taskRepo, store, observer),
		Forecast:  service.NewForecastService(projectRepo, taskRepo, store, observer),
		Anomalies: service.NewAnomalyService(auditRepo, store, observer),
		Digest:    service.NewDigestService(projectRepo, taskRepo, auditRepo, store, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
