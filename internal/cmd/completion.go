package cmd

import (
	"io"

	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/quantmind-br/toolprobe/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// NewCompletionCmd creates the completion command
func NewCompletionCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for toolprobe.

Bash:
  $ source <(toolprobe completion bash)

Zsh:
  $ toolprobe completion zsh > "${fpath[1]}/_toolprobe"

Fish:
  $ toolprobe completion fish > ~/.config/fish/completions/toolprobe.fish

PowerShell:
  PS> toolprobe completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			if err := completionGenerators[shell](cmd.Root(), cmd.OutOrStdout()); err != nil {
				ui.PrintError("Failed to generate %s completion: %v", shell, err)
				return err
			}

			log.Debug().Str("shell", shell).Msg("generated shell completion")
			return nil
		},
	}

	return cmd
}
