// Package init provides the init command for bbc.
package init

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/pkg/i18n"
)

// answers holds what the form collects.
type answers struct {
	format     string
	markdown   bool
	logLevel   string
	localeFile string
	otLabel    string
	editLabel  string
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize bbc configuration",
		Long: `Initialize bbc with your rendering preferences.

This command will guide you through choosing the default output format,
markdown text handling, diagnostics level and labels. The configuration
will be saved to ~/.config/bbc/config.yml.`,
		Example: `  # Interactive setup
  bbc init

  # Pre-select the output format
  bbc init --format markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmdutil.ConfigPath(cmd), format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Default output format: "+strings.Join(config.Formats, ", "))

	return cmd
}

func runInit(configPath, prefillFormat string, w io.Writer) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, "Initialization cancelled.")
			return nil
		}
	}

	defaults := i18n.Default()
	a := &answers{
		format:    "html",
		logLevel:  "warn",
		otLabel:   defaults.Translate("bbcode.ot"),
		editLabel: defaults.Translate("bbcode.edit"),
	}
	if prefillFormat != "" {
		a.format = prefillFormat
	}

	// Build the form
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("What bbc render produces by default").
				Options(huh.NewOptions(config.Formats...)...).
				Value(&a.format),

			huh.NewConfirm().
				Title("Markdown text").
				Description("Treat text outside tags as markdown").
				Value(&a.markdown),

			huh.NewSelect[string]().
				Title("Diagnostics").
				Description("none: silent, warn: rejected styles, debug: every dropped attribute").
				Options(huh.NewOptions(config.LogLevels...)...).
				Value(&a.logLevel),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Locale file (optional)").
				Description("YAML catalog with bbcode.ot and bbcode.edit labels").
				Placeholder("~/.config/bbc/fr.yml").
				Value(&a.localeFile).
				Validate(validateLocaleFile),

			huh.NewInput().
				Title("Off topic label").
				Value(&a.otLabel).
				Validate(requireLabel),

			huh.NewInput().
				Title("Edit label").
				Value(&a.editLabel).
				Validate(requireLabel),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg := a.config(defaults)

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(w, "\nYou're all set! Try running:")
	fmt.Fprintln(w, "  echo '[center]hello[/center]' | bbc render")
	fmt.Fprintln(w, "  bbc tags")

	return nil
}

// config turns answers into a Config. Labels equal to the defaults are not stored.
func (a *answers) config(defaults *i18n.Catalog) *config.Config {
	cfg := &config.Config{
		Format:     a.format,
		Markdown:   a.markdown,
		LogLevel:   a.logLevel,
		LocaleFile: strings.TrimSpace(a.localeFile),
	}

	for key, value := range map[string]string{"ot": a.otLabel, "edit": a.editLabel} {
		value = strings.TrimSpace(value)
		if value == "" || value == defaults.Translate("bbcode."+key) {
			continue
		}
		if cfg.Labels == nil {
			cfg.Labels = make(map[string]string)
		}
		cfg.Labels[key] = value
	}

	return cfg
}

func validateLocaleFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := i18n.Load(path); err != nil {
		return err
	}
	return nil
}

func requireLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("label is required")
	}
	return nil
}
