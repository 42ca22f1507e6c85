package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds conversion options loadable from a TOML file. Flags on
// the CLI override individual fields.
type Config struct {
	OutputDir      string  `toml:"output_dir"`      // "" = next to the input file
	WriteCSV       bool    `toml:"write_csv"`       // also emit a per-frame CSV
	WriteHierarchy bool    `toml:"write_hierarchy"` // also emit a hierarchy CSV
	OffsetScale    float64 `toml:"offset_scale"`    // scale for hierarchy offsets
	PlotColumn     string  `toml:"plot_column"`     // column name to plot, "" = none
	Workers        int     `toml:"workers"`         // parallel conversions in batch mode
	LogLevel       string  `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OffsetScale: 1.0,
		Workers:     4,
		LogLevel:    "info",
	}
}

// Load reads a TOML config file, applies defaults to unset fields and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the converter cannot honor.
func Validate(cfg Config) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", cfg.Workers)
	}
	if cfg.OffsetScale <= 0 {
		return fmt.Errorf("config: offset_scale must be positive, got %g", cfg.OffsetScale)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
