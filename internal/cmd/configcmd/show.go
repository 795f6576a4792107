package configcmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current bbc configuration with value source indicators.`,
		Example: `  # Show current config
  bbc config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmdutil.ConfigPath(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue string, envVars ...string) {
		_, _ = bold.Fprintf(w, "%-12s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "-")
			return
		}

		fmt.Fprint(w, value)

		// Determine source
		source := "config"
		if fileErr != nil {
			source = "-"
		}
		for _, envVar := range envVars {
			if v := os.Getenv(envVar); v != "" && v == value {
				source = envVar
				break
			}
		}
		if fileValue != value && source == "config" {
			source = "-"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Format", cfg.Format, fileCfg.Format, "BBC_FORMAT")
	printField("Markdown", boolValue(cfg.Markdown), boolValue(fileCfg.Markdown), "BBC_MARKDOWN")
	printField("Log level", cfg.LogLevel, fileCfg.LogLevel, "BBC_LOG_LEVEL", "LOG_LEVEL")
	printField("Locale", cfg.LocaleFile, fileCfg.LocaleFile, "BBC_LOCALE_FILE")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "BBC_OUTPUT")

	keys := make([]string, 0, len(cfg.Labels))
	for k := range cfg.Labels {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var labels []string
	for _, k := range keys {
		labels = append(labels, k+"="+strconv.Quote(cfg.Labels[k]))
	}
	printField("Labels", strings.Join(labels, " "), strings.Join(labels, " "))

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}

func boolValue(b bool) string {
	if !b {
		return ""
	}
	return "true"
}
