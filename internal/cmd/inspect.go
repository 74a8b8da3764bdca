package cmd

import (
	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd(cfg *config.Config, log *zerolog.Logger, opts ...toolprobe.Option) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect <name|path>",
		Short: "Show the configuration of one interpreter",
		Long: `Probe a single interpreter, given by path or by a name looked up on the
search path, and print its build configuration.`,
		Example: `  toolprobe inspect python3.12
  toolprobe inspect /usr/bin/python3 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			finder, err := newFinder(cfg, log, opts)
			if err != nil {
				return err
			}

			found, err := finder.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			log.Info().Str("executable", found.Executable()).Msg("inspected interpreter")
			return renderConfig(cmd.OutOrStdout(), format, found)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}
