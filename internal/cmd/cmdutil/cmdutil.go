// Package cmdutil holds helpers shared by bbc commands.
package cmdutil

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
	"github.com/open-cli-collective/bbcode-cli/pkg/i18n"
)

// ConfigPath returns the --config flag value, or the default path when unset.
func ConfigPath(cmd *cobra.Command) string {
	if cmd != nil {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			return path
		}
	}
	return config.DefaultConfigPath()
}

// OutputFormat returns the --output flag value, falling back to the
// configured output format. Config errors are left to LoadConfig.
func OutputFormat(cmd *cobra.Command) string {
	if cmd != nil {
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			return output
		}
	}
	cfg, _ := config.LoadWithEnv(ConfigPath(cmd))
	return cfg.OutputFormat
}

// LoadConfig loads the config file with env overrides, applies the global
// --log-level flag, validates and fills defaults.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(ConfigPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd != nil {
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.LogLevel = level
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'bbc init' to configure)", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// Catalog returns the label catalog for cfg: the embedded default, a locale
// file on top when configured, and label overrides last.
func Catalog(cfg *config.Config) (*i18n.Catalog, error) {
	catalog := i18n.Default()
	if cfg.LocaleFile != "" {
		loaded, err := i18n.Load(cfg.LocaleFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load locale file: %w", err)
		}
		catalog = catalog.Merge(loaded)
	}
	return catalog.With(cfg.LabelOverrides()), nil
}

// NewEngine builds an engine from cfg. Diagnostics go to stderr.
func NewEngine(cfg *config.Config, stderr io.Writer) (*bbcode.Engine, error) {
	log, err := config.NewLogger(cfg.LogLevel, stderr)
	if err != nil {
		return nil, err
	}

	catalog, err := Catalog(cfg)
	if err != nil {
		return nil, err
	}

	return bbcode.NewEngine(
		bbcode.WithLogger(log),
		bbcode.WithTranslator(catalog),
		bbcode.WithMarkdown(cfg.Markdown),
	), nil
}
