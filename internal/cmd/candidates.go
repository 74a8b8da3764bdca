package cmd

import (
	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/quantmind-br/toolprobe/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewCandidatesCmd creates the candidates command
func NewCandidatesCmd(cfg *config.Config, log *zerolog.Logger, opts ...toolprobe.Option) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Show executables that would be probed",
		Long:  `Scan the search path and print matching executables without running them.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			finder, err := newFinder(cfg, log, opts)
			if err != nil {
				return err
			}

			var candidates []toolprobe.Candidate
			for c, err := range finder.Candidates(cmd.Context()) {
				if err != nil {
					return err
				}
				candidates = append(candidates, c)
			}

			if format == formatTable && len(candidates) == 0 {
				ui.PrintWarning("No candidates found in %s", finder.SearchPath())
				return nil
			}

			return renderCandidates(cmd.OutOrStdout(), format, candidates)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}
