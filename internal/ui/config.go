package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaronyao/dateparser/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration after merging defaults, the config
file and environment overrides. With --init, write the current configuration
to the default config path if none exists yet.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			fmt.Printf("Config file: %s\n\n", path)

			if initFile {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists at %s", path)
				}
				if err := a.config.SaveTo(path); err != nil {
					return fmt.Errorf("writing config: %w", err)
				}
				fmt.Printf("Created %s\n", path)
				return nil
			}

			data, err := a.config.Marshal()
			if err != nil {
				return fmt.Errorf("rendering config: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write the current configuration to the default path")

	return cmd
}
