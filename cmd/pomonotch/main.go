package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/pomonotch/internal/cli"
	"github.com/alexanderramin/pomonotch/internal/config"
	"github.com/alexanderramin/pomonotch/internal/db"
	"github.com/alexanderramin/pomonotch/internal/repository"
	"github.com/alexanderramin/pomonotch/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	// Defaults, then ~/.pomonotch/config.yaml, then POMONOTCH_* env vars
	cfg, err := config.Load(home, config.DefaultConfigPath(home))
	if err != nil {
		return err
	}

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire the settings store and its transactional service
	store := repository.NewSQLiteKVStore(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Store:        store,
		Settings:     service.NewSettingsService(store, uow, service.NewLogUseCaseObserver(logger)),
		Logger:       logger,
		StartCompact: cfg.StartCompact,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("starting", "db", cfg.DBPath)

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
