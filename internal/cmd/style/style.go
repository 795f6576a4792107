// Package style provides commands for inspecting style attribute checks.
package style

import (
	"github.com/spf13/cobra"
)

// NewCmdStyle creates the style command.
func NewCmdStyle() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Inspect style attribute checks",
		Long: `Commands for checking style values against the rules applied to
span, div and hr elements at render time.`,
	}

	cmd.AddCommand(NewCmdCheck())
	cmd.AddCommand(NewCmdProperties())

	return cmd
}
