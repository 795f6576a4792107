// Package render provides the render command for bbc.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

type renderOptions struct {
	format   string
	markdown bool
	labels   map[string]string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render BBCode to HTML, markdown or tokens",
		Long: `Render a BBCode document.

The document is read from the given file, or from stdin when no file is
given or the file is "-". Attributes that fail the style checks are dropped
and reported on stderr according to --log-level.`,
		Example: `  # Render a file to HTML
  bbc render post.txt

  # Render stdin to markdown
  echo '[center]hi[/center]' | bbc render --format markdown

  # Inspect the token stream
  bbc render post.txt --format tokens

  # Override a label
  bbc render post.txt --label ot="Side note"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}

			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runRender(path, opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: "+strings.Join(config.Formats, ", ")+" (default from config, else html)")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Treat text outside tags as markdown")
	cmd.Flags().StringToStringVar(&opts.labels, "label", nil, "Override a label, e.g. ot=\"Side note\" (repeatable)")

	return cmd
}

func runRender(path string, opts *renderOptions, cfg *config.Config) error {
	src, err := readInput(path, opts.stdin)
	if err != nil {
		return err
	}

	// Flags win over config
	merged := *cfg
	if opts.format != "" {
		merged.Format = opts.format
	}
	if opts.markdown {
		merged.Markdown = true
	}
	if len(opts.labels) > 0 {
		merged.Labels = make(map[string]string, len(cfg.Labels)+len(opts.labels))
		for k, v := range cfg.Labels {
			merged.Labels[k] = v
		}
		for k, v := range opts.labels {
			merged.Labels[k] = v
		}
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	merged.ApplyDefaults()

	engine, err := cmdutil.NewEngine(&merged, opts.stderr)
	if err != nil {
		return err
	}

	var out string
	switch merged.Format {
	case "tokens":
		data, err := json.MarshalIndent(engine.Tokens(src), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
		out = string(data)
	case "markdown":
		out, err = engine.Markdown(src)
	default:
		out, err = engine.HTML(src)
	}
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(opts.stdout, out)
	return err
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
