package cmd

import (
	"slices"
	"strings"

	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/quantmind-br/toolprobe/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger, opts ...toolprobe.Option) *cobra.Command {
	var (
		filters    filterFlags
		filterName string
		sortBy     string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List working interpreters",
		Long:  `Probe every candidate on the search path and list the interpreters that work.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			pred, err := filters.predicate()
			if err != nil {
				return err
			}
			if sortBy != "path" && sortBy != "version" {
				return usageErrorf("--sort: want path or version, got %q", sortBy)
			}

			finder, err := newFinder(cfg, log, opts)
			if err != nil {
				return err
			}

			var found []*toolprobe.Config
			for c, err := range finder.All(cmd.Context(), pred) {
				if err != nil {
					return err
				}
				if !ui.FuzzyMatch(filterName, c.Executable()) {
					continue
				}
				found = append(found, c)
			}

			sortConfigs(found, sortBy)

			if format == formatTable && len(found) == 0 {
				ui.PrintWarning("No working interpreters found in %s", finder.SearchPath())
				return nil
			}

			log.Debug().Int("count", len(found)).Msg("listed interpreters")
			return renderConfigs(cmd.OutOrStdout(), format, found)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&filterName, "name", "", "filter by executable path (fuzzy match)")
	cmd.Flags().StringVar(&sortBy, "sort", "path", "sort by: path (search order), version (newest first)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

// sortConfigs orders configs in place. "path" keeps search path order.
func sortConfigs(cfgs []*toolprobe.Config, sortBy string) {
	if strings.ToLower(sortBy) != "version" {
		return
	}
	slices.SortStableFunc(cfgs, func(a, b *toolprobe.Config) int {
		return b.Version().Compare(a.Version())
	})
}
