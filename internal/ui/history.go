package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) historyCmd() *cobra.Command {
	var (
		limit int
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recorded parses",
		Example: `  dateparser history
  dateparser history --limit=5
  dateparser history --clear`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.repo == nil {
				return errors.New("history is disabled (storage.history_enabled = false)")
			}
			ctx := context.Background()

			if clear {
				if err := a.repo.Clear(ctx); err != nil {
					return fmt.Errorf("clearing history: %w", err)
				}
				fmt.Println("History cleared.")
				return nil
			}

			entries, err := a.repo.List(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("No recorded parses.")
				return nil
			}

			format := a.config.Output.Format
			maxInput := termWidth() - 50
			if maxInput < 12 {
				maxInput = 12
			}
			for _, e := range entries {
				tag := e.Resolver
				if e.Language != "" {
					tag += "/" + e.Language
				}
				fmt.Printf("  %s %-24q %s %s\n",
					formatMuted(e.CreatedAt.Format("2006-01-02 15:04")),
					truncate(e.Input, maxInput),
					formatResult(e.Result.Format(format)),
					formatMuted("("+tag+")"),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove all recorded parses")

	return cmd
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
