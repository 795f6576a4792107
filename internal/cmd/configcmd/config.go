// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bbc configuration",
		Long:  `Commands for viewing, validating, and clearing bbc configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdValidate())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// envVars lists every environment variable that feeds the config.
var envVars = []string{"BBC_FORMAT", "BBC_MARKDOWN", "BBC_LOG_LEVEL", "LOG_LEVEL", "BBC_LOCALE_FILE", "BBC_OUTPUT"}
