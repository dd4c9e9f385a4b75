package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronyao/dateparser/internal/compound"
)

// languageNames labels the supported base language keys.
var languageNames = map[string]string{
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
}

func (a *App) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(_ *cobra.Command, _ []string) {
			configured := make(map[string]bool)
			for _, l := range a.parser.Languages() {
				configured[l] = true
			}

			fmt.Println(formatHeader("Supported languages:"))
			for _, key := range compound.NewResolver().Languages() {
				line := fmt.Sprintf("  %s  %s", formatLang(key), languageNames[key])
				if !configured[key] {
					line += formatMuted("  (not in probe order)")
				}
				fmt.Println(line)
			}
		},
	}
}
