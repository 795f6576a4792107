package style

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type propertiesOptions struct {
	output  string
	noColor bool
	stdout  io.Writer
}

// NewCmdProperties creates the style properties command.
func NewCmdProperties() *cobra.Command {
	opts := &propertiesOptions{}

	cmd := &cobra.Command{
		Use:     "properties",
		Aliases: []string{"props"},
		Short:   "List the properties an hr style may use",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output = cmdutil.OutputFormat(cmd)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()
			return runProperties(opts)
		},
	}

	return cmd
}

func runProperties(opts *propertiesOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}

	var rows [][]string
	for _, prop := range bbcode.HRProperties() {
		rows = append(rows, []string{"hr", prop})
	}
	renderer.RenderTable([]string{"ELEMENT", "PROPERTY"}, rows)
	return nil
}
