// Package config resolves CLI settings from flags, ROWSTORE_* environment
// variables and defaults, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "ROWSTORE"

	DefaultFormat   = "text"
	DefaultLogLevel = "info"
	DefaultLogColor = "auto"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"text", "json", "table"}

// ValidColorModes lists the accepted --log-color values.
var ValidColorModes = []string{"auto", "always", "never"}

// Config is the resolved CLI configuration.
type Config struct {
	Format   string     `json:"format"             mapstructure:"format"`
	LogLevel slog.Level `json:"log_level"          mapstructure:"log_level"`
	LogColor string     `json:"log_color"          mapstructure:"log_color"`
	Dataset  string     `json:"dataset,omitempty"  mapstructure:"dataset"`
	Verbose  bool       `json:"verbose,omitempty"  mapstructure:"verbose"`
}

// flagNames maps configuration keys to the flags that may override them.
var flagNames = map[string]string{
	"format":    "format",
	"log_level": "log-level",
	"log_color": "log-color",
	"dataset":   "dataset",
	"verbose":   "verbose",
}

var defaults = map[string]any{
	"format":    DefaultFormat,
	"log_level": DefaultLogLevel,
	"log_color": DefaultLogColor,
	"dataset":   "",
	"verbose":   false,
}

// Load resolves the configuration. Flags present in flags are bound to their
// keys; a nil flag set resolves from the environment and defaults only.
//
// Verbose forces the debug log level.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AutomaticEnv()

	for key, def := range defaults {
		_ = v.BindEnv(key)
		v.SetDefault(key, def)
	}

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	// log_level decodes through slog.Level's UnmarshalText.
	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogColor = strings.ToLower(strings.TrimSpace(cfg.LogColor))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if !slices.Contains(ValidColorModes, c.LogColor) {
		return fmt.Errorf("invalid log color %q: must be one of %v", c.LogColor, ValidColorModes)
	}
	return nil
}
