// Package tags provides the tags command for bbc.
package tags

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type tagsOptions struct {
	allowlist bool
	output    string
	noColor   bool
	stdout    io.Writer
}

// NewCmdTags creates the tags command.
func NewCmdTags() *cobra.Command {
	opts := &tagsOptions{}

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List supported tags",
		Long:  `List every registered tag with its kind and what it expands to.`,
		Example: `  # List tags
  bbc tags

  # List allowlist entries instead
  bbc tags --allowlist

  # As JSON
  bbc tags -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output = cmdutil.OutputFormat(cmd)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()
			return runTags(opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.allowlist, "allowlist", false, "List allowlist entries instead of tags")

	return cmd
}

func runTags(opts *tagsOptions, engine *bbcode.Engine) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if engine == nil {
		engine = bbcode.NewEngine()
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}

	if opts.allowlist {
		var rows [][]string
		for _, entry := range engine.Allowlist().Entries() {
			rows = append(rows, []string{entry})
		}
		renderer.RenderTable([]string{"ENTRY"}, rows)
		return nil
	}

	var rows [][]string
	for _, rule := range engine.Registry().Rules() {
		expansion, output := describe(rule)
		rows = append(rows, []string{rule.Tag, rule.Kind.String(), expansion, output})
	}
	renderer.RenderTable([]string{"TAG", "KIND", "EXPANSION", "OUTPUT"}, rows)
	return nil
}

// describe summarizes a rule's expansion for display.
func describe(rule bbcode.Rule) (string, string) {
	switch e := rule.Expansion.(type) {
	case bbcode.Wrap:
		if e.Attr == "" {
			return "wrap", e.Element
		}
		return "wrap", e.Element + "[" + e.Attr + "]"
	case bbcode.Replace:
		if e.Void {
			return "replace", "void"
		}
		return "replace", "-"
	case bbcode.Hooks:
		return "hooks", "-"
	default:
		return "unknown", "-"
	}
}
