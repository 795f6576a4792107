package configcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the bbc configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  bbc config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runClear(cmdutil.ConfigPath(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runClear(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	err := os.Remove(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	if os.IsNotExist(err) {
		_, _ = green.Fprintf(w, "✓ No config file to remove\n")
	} else {
		_, _ = green.Fprintf(w, "✓ Configuration cleared from %s\n", configPath)
	}

	// Check if env vars are set
	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		_, _ = dim.Fprintf(w, "\nNote: Environment variables will still be used: %s\n", strings.Join(activeVars, ", "))
	}

	return nil
}
