// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/aaronyao/dateparser/internal/compound"
)

// Config holds the application configuration.
type Config struct {
	Parser  ParserConfig  `toml:"parser"`
	Output  OutputConfig  `toml:"output"`
	Storage StorageConfig `toml:"storage"`
}

// ParserConfig holds resolver settings.
type ParserConfig struct {
	Languages []string `toml:"languages"` // probe order, e.g. ["zh", "en"]
	Location  string   `toml:"location"`  // IANA zone name, "Local" or "UTC"
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format string `toml:"format"` // Go time layout for printed results
	Color  bool   `toml:"color"`
}

// StorageConfig holds parse-history settings.
type StorageConfig struct {
	DBPath         string `toml:"db_path"`
	HistoryEnabled bool   `toml:"history_enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			Languages: compound.NewResolver().Languages(),
			Location:  "Local",
		},
		Output: OutputConfig{
			Format: "2006-01-02 15:04:05",
			Color:  true,
		},
		Storage: StorageConfig{
			DBPath:         defaultDBPath(),
			HistoryEnabled: true,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dateparser.db"
	}
	return filepath.Join(home, ".local", "share", "dateparser", "history.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dateparser", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATEPARSER_LANGUAGES"); v != "" {
		cfg.Parser.Languages = strings.Split(v, ",")
	}
	if v := os.Getenv("DATEPARSER_LOCATION"); v != "" {
		cfg.Parser.Location = v
	}
	if v := os.Getenv("DATEPARSER_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("DATEPARSER_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Parser.Languages) == 0 {
		return errors.New("parser.languages must not be empty")
	}
	supported := make(map[string]bool)
	for _, l := range compound.NewResolver().Languages() {
		supported[l] = true
	}
	for _, l := range c.Parser.Languages {
		if !supported[strings.TrimSpace(l)] {
			return fmt.Errorf("unsupported language %q in parser.languages", l)
		}
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid parser.location: %w", err)
	}
	if c.Output.Format == "" {
		return errors.New("output.format must not be empty")
	}
	return nil
}

// Location resolves the configured zone name.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Parser.Location)
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// SaveTo writes the configuration to path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
