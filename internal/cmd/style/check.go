package style

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type checkOptions struct {
	strict  bool
	output  string
	noColor bool
	stdout  io.Writer
}

type checkResult struct {
	Element string   `json:"element"`
	Value   string   `json:"value"`
	Verdict string   `json:"verdict"`
	Reasons []string `json:"reasons,omitempty"`
}

// NewCmdCheck creates the style check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <element> <value>",
		Short: "Check a style value for an element",
		Long: `Check whether a style attribute value would survive rendering.

The verdict is allow, reject or abstain. Abstain means no style rule exists
for the element and the static allowlist decides.`,
		Example: `  # A valid size
  bbc style check span 'font-size:150%'

  # Every failing hr declaration is listed
  bbc style check hr 'color:#abc;unknownprop:1'

  # Fail the command on reject
  bbc style check div 'text-align:justify' --strict`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output = cmdutil.OutputFormat(cmd)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()
			return runCheck(args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when the value is rejected")

	return cmd
}

func runCheck(element, value string, opts *checkOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	result := check(element, value)

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}

	switch renderer.Format() {
	case view.FormatJSON:
		if err := renderer.RenderJSON(result); err != nil {
			return err
		}
	case view.FormatPlain:
		renderer.RenderText(result.Verdict)
		for _, reason := range result.Reasons {
			renderer.RenderText(reason)
		}
	default:
		switch result.Verdict {
		case bbcode.Allow.String():
			renderer.Success(fmt.Sprintf("%s style %q is allowed", element, value))
		case bbcode.Reject.String():
			renderer.Error(fmt.Sprintf("%s style %q is rejected", element, value))
			for _, reason := range result.Reasons {
				renderer.RenderText("  - " + reason)
			}
		default:
			renderer.Warning(fmt.Sprintf("no style rule for %s; the static allowlist decides", element))
		}
	}

	if opts.strict && result.Verdict == bbcode.Reject.String() {
		return fmt.Errorf("%s style rejected", element)
	}
	return nil
}

func check(element, value string) checkResult {
	result := checkResult{
		Element: element,
		Value:   value,
		Verdict: bbcode.NewSanitizer(nil).Check(element, "style", value).String(),
	}

	err := bbcode.ValidateStyle(element, value)
	if err != nil && !errors.Is(err, bbcode.ErrNoStyleRule) {
		for _, e := range multierr.Errors(err) {
			result.Reasons = append(result.Reasons, e.Error())
		}
	}
	return result
}
