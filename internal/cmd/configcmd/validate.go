package configcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

// sample exercises every label and a style check.
const sample = "[ot]x[/ot][edit]y[/edit][color=red]z[/color]"

// NewCmdValidate creates the config validate command.
func NewCmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long: `Check the configuration values, load the locale file if one is set,
and render a sample document with the result.`,
		Example: `  # Validate config
  bbc config validate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			cfg, err := config.LoadWithEnv(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			return runValidate(cfg, noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runValidate(cfg *config.Config, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if err := cfg.Validate(); err != nil {
		_, _ = red.Fprintf(w, "✗ Invalid configuration: %v\n", err)
		return fmt.Errorf("invalid config: %w", err)
	}
	_, _ = green.Fprintln(w, "✓ Configuration values are valid")

	checked := *cfg
	checked.ApplyDefaults()
	checked.LogLevel = "none"

	engine, err := cmdutil.NewEngine(&checked, nil)
	if err != nil {
		_, _ = red.Fprintf(w, "✗ %v\n", err)
		return err
	}
	if cfg.LocaleFile != "" {
		_, _ = green.Fprintf(w, "✓ Locale file loaded: %s\n", cfg.LocaleFile)
	}

	out, err := engine.HTML(sample)
	if err != nil {
		_, _ = red.Fprintf(w, "✗ Sample render failed: %v\n", err)
		return fmt.Errorf("sample render failed: %w", err)
	}
	_, _ = green.Fprintln(w, "✓ Sample rendered")
	fmt.Fprintln(w, out)

	return nil
}
