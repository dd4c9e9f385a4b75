// Package ui provides the command line interface for dateparser.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aaronyao/dateparser/internal/config"
	"github.com/aaronyao/dateparser/internal/history"
	"github.com/aaronyao/dateparser/internal/pipeline"
	"github.com/aaronyao/dateparser/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	parser *pipeline.Parser
	repo   history.Repository // nil when history is disabled
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given config and history
// repository. The repository may be nil.
func NewApp(cfg *config.Config, repo history.Repository) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolving location: %w", err)
	}

	a := &App{
		config: cfg,
		parser: pipeline.New(cfg.Parser.Languages, loc),
		repo:   repo,
	}

	a.root = &cobra.Command{
		Use:   "dateparser",
		Short: "A multilingual natural-language date parser",
		Long: `Dateparser resolves natural-language date expressions into absolute times.

It understands compound relative phrases in ten languages ("last friday",
"上个月十七号", "지난 주 금요일"), plain relative words and offsets
("tomorrow", "+3d"), absolute dates and Unix timestamps.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.parser, a.config.Output.Format, time.Now().In(loc))
		},
	}

	if !cfg.Output.Color {
		DisableColor()
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.parseCmd())
	a.root.AddCommand(a.languagesCmd())
	a.root.AddCommand(a.historyCmd())

	return a, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("dateparser %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the history repository, if any.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
