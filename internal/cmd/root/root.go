// Package root provides the root command for the bbc CLI.
package root

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/completion"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/bbcode-cli/internal/cmd/init"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/render"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/style"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/tags"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/version"
)

// NewCmdRoot creates the root command for bbc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bbc",
		Short: "A command-line BBCode renderer",
		Long: `bbc renders BBCode posts to sanitized HTML or markdown.

It supports sizes, fonts, colors, alignment, indentation, lists,
horizontal rules and off-topic/edit notes. Style attributes are checked
against fixed rules and dropped when they fail.

Get started by running: bbc init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/bbc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain (default from config, else table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("log-level", "", "diagnostics: "+strings.Join(config.LogLevels, ", ")+" (default from config, else warn)")

	// Set version template
	cmd.SetVersionTemplate("bbc version {{.Version}} (" + version.String() + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(style.NewCmdStyle())
	cmd.AddCommand(tags.NewCmdTags())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
