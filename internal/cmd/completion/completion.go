// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

type shell struct {
	name    string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `  # Load in current session
  source <(bbc completion bash)

  # Install permanently (Linux)
  bbc completion bash | sudo tee /etc/bash_completion.d/bbc > /dev/null`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name: "zsh",
		install: `  # Enable completion once
  echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Install
  bbc completion zsh > "${fpath[1]}/_bbc"`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		install: `  bbc completion fish > ~/.config/fish/completions/bbc.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		install: `  bbc completion powershell | Out-String | Invoke-Expression`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bbc.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, sh := range shells {
		cmd.AddCommand(newCmdShell(sh))
	}

	return cmd
}

func newCmdShell(sh shell) *cobra.Command {
	return &cobra.Command{
		Use:                   sh.name,
		Short:                 "Generate " + sh.name + " completion script",
		Example:               sh.install,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
