package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/aaronyao/dateparser/internal/compound"
	"github.com/aaronyao/dateparser/internal/history"
	"github.com/aaronyao/dateparser/internal/pipeline"
)

func (a *App) parseCmd() *cobra.Command {
	var (
		lang      string
		baseStr   string
		format    string
		all       bool
		copyOut   bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Resolve a date expression",
		Long: `Resolve a natural-language date expression into an absolute time.

The expression is tried against the compound relative resolver first (probing
the configured languages in order), then plain relative words and offsets,
then absolute date layouts, then Unix timestamps.`,
		Example: `  dateparser parse last friday
  dateparser parse 上个月十七号
  dateparser parse --lang=zh-CN 下周三
  dateparser parse --base=2024-01-15 next monday
  dateparser parse --all 17`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			loc, err := a.config.Location()
			if err != nil {
				return fmt.Errorf("resolving location: %w", err)
			}
			base, err := resolveBase(baseStr, loc)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.config.Output.Format
			}

			if all {
				return a.printAllLanguages(text, base, format)
			}

			parser := a.parser
			if lang != "" {
				parser = pipeline.New([]string{lang}, loc)
			}

			result, err := parser.Parse(text, base)
			if err != nil {
				return err
			}

			formatted := result.Time.Format(format)
			tag := result.Resolver
			if result.Language != "" {
				tag += "/" + result.Language
			}
			fmt.Printf("%s %s\n", formatResult(formatted), formatMuted("("+tag+")"))

			if copyOut {
				if err := clipboard.WriteAll(formatted); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
			}

			if a.repo != nil && !noHistory {
				e := &history.Entry{
					Input:    text,
					Resolver: result.Resolver,
					Language: result.Language,
					Base:     base,
					Result:   result.Time,
				}
				if err := a.repo.Record(context.Background(), e); err != nil {
					return fmt.Errorf("recording history: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Only probe this language (BCP-47 tag, e.g. zh-CN)")
	cmd.Flags().StringVar(&baseStr, "base", "", "Base time (RFC 3339 or YYYY-MM-DD, defaults to now)")
	cmd.Flags().StringVar(&format, "format", "", "Output layout (defaults to output.format from config)")
	cmd.Flags().BoolVar(&all, "all", false, "Show the compound match for every configured language")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this parse in history")

	return cmd
}

// printAllLanguages probes every configured language with the compound
// resolver and prints one line per language.
func (a *App) printAllLanguages(text string, base time.Time, format string) error {
	resolver := compound.NewResolver()
	matched := false
	for _, lang := range a.parser.Languages() {
		got, err := resolver.TryResolve(text, base, lang)
		if err != nil {
			fmt.Printf("  %s  %s\n", formatLang(lang), formatMuted("no match"))
			continue
		}
		matched = true
		fmt.Printf("  %s  %s\n", formatLang(lang), formatResult(got.Format(format)))
	}
	if !matched {
		fmt.Println("No language matched.")
	}
	return nil
}

// resolveBase parses the --base flag. An empty value means now.
func resolveBase(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid base time %q", s)
}
