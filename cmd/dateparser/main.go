package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aaronyao/dateparser/internal/config"
	"github.com/aaronyao/dateparser/internal/history"
	"github.com/aaronyao/dateparser/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var repo history.Repository
	if cfg.Storage.HistoryEnabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		repo, err = history.NewSQLite(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
	}

	app, err := ui.NewApp(cfg, repo)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return app.Execute()
}
