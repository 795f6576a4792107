// Package config provides configuration management for bbc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Formats accepted by render.
var Formats = []string{"html", "markdown", "tokens"}

// LogLevels accepted for diagnostics.
var LogLevels = []string{"none", "warn", "debug"}

// OutputFormats accepted for tables and reports.
var OutputFormats = []string{"table", "json", "plain"}

// LabelKeys are the label names that may be overridden, without the "bbcode." prefix.
var LabelKeys = []string{"edit", "ot"}

// Config holds the bbc configuration.
type Config struct {
	Format       string            `yaml:"format,omitempty" json:"format,omitempty"`
	Markdown     bool              `yaml:"markdown,omitempty" json:"markdown,omitempty"`
	LogLevel     string            `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	LocaleFile   string            `yaml:"locale_file,omitempty" json:"locale_file,omitempty"`
	Labels       map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
	OutputFormat string            `yaml:"output_format,omitempty" json:"output_format,omitempty"`
}

// Validate checks that every set field holds an accepted value. Empty fields
// are valid and fall back to defaults.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format,
			validation.In(toAny(Formats)...).Error("must be one of "+strings.Join(Formats, ", ")),
		),
		validation.Field(&c.LogLevel,
			validation.In(toAny(LogLevels)...).Error("must be one of "+strings.Join(LogLevels, ", ")),
		),
		validation.Field(&c.OutputFormat,
			validation.In(toAny(OutputFormats)...).Error("must be one of "+strings.Join(OutputFormats, ", ")),
		),
		validation.Field(&c.LocaleFile, validation.Length(0, 4096)),
		validation.Field(&c.Labels, validation.By(validateLabels)),
	)
}

func validateLabels(value interface{}) error {
	labels, _ := value.(map[string]string)
	for key, text := range labels {
		if !slices.Contains(LabelKeys, key) {
			return fmt.Errorf("unknown label %q (known: %s)", key, strings.Join(LabelKeys, ", "))
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("label %q is empty", key)
		}
	}
	return nil
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = "html"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.OutputFormat == "" {
		c.OutputFormat = "table"
	}
}

// LabelOverrides returns the configured labels keyed for the catalog.
func (c *Config) LabelOverrides() map[string]string {
	out := make(map[string]string, len(c.Labels))
	for k, v := range c.Labels {
		out["bbcode."+k] = v
	}
	return out
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: BBC_* → generic fallback (LOG_LEVEL) → existing config value
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("BBC_FORMAT"); format != "" {
		c.Format = format
	}
	if md := os.Getenv("BBC_MARKDOWN"); md != "" {
		if enabled, err := strconv.ParseBool(md); err == nil {
			c.Markdown = enabled
		}
	}
	if level := getEnvWithFallback("BBC_LOG_LEVEL", "LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if locale := os.Getenv("BBC_LOCALE_FILE"); locale != "" {
		c.LocaleFile = locale
	}
	if output := os.Getenv("BBC_OUTPUT"); output != "" {
		c.OutputFormat = output
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bbc", "config.yml")
	}

	// Fall back to ~/.config/bbc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bbc", "config.yml")
	}

	return filepath.Join(home, ".config", "bbc", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
