package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger, opts ...toolprobe.Option) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Probe every candidate and report what works",
		Long: `Run every candidate on the search path and report, for each one, either its
version or the reason it could not be used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			finder, err := newFinder(cfg, log, opts)
			if err != nil {
				return err
			}

			ui.PrintHeader("Interpreter Diagnostics")

			// 1. Configuration
			ui.PrintSubheader("Configuration")
			dirs := filepath.SplitList(finder.SearchPath())
			ui.PrintKeyValue("Search path entries", strconv.Itoa(len(dirs)))
			ui.PrintKeyValue("Names", strings.Join(cfg.Discovery.Names, ", "))
			ui.PrintKeyValue("Probe timeout", cfg.Probe.Timeout.String())
			ui.PrintKeyValue("Parallelism", strconv.Itoa(cfg.Probe.Parallelism))
			fmt.Fprintln(ui.Out)

			// 2. Candidates
			var total int
			for _, err := range finder.Candidates(ctx) {
				if err != nil {
					ui.PrintError("cannot scan search path: %v", err)
					return err
				}
				total++
			}
			if total == 0 {
				ui.PrintWarning("No candidates found")
				return fmt.Errorf("%w: no candidates on the search path", toolprobe.ErrNoMatch)
			}

			var progressOut io.Writer = cmd.ErrOrStderr()
			if noProgress {
				progressOut = nil
			}
			ui.PrintInfo("Probing %d candidate(s)", total)
			bar := ui.NewProgressBar(progressOut, total, "probing")

			var results []toolprobe.Result
			for r, err := range finder.Results(ctx) {
				if err != nil {
					_ = bar.Clear()
					return err
				}
				bar.Describe(r.Candidate.Name)
				_ = bar.Add(1)
				results = append(results, r)
			}
			_ = bar.Finish()

			// 3. Per-candidate results
			ui.PrintSubheader("Candidates")
			var failures []string
			for _, r := range results {
				if r.OK() {
					ui.PrintSuccess("%s: %s %s (%s)", r.Candidate.Path,
						ui.ColorizeImplementation(string(r.Config.Implementation())),
						r.Config.Version(), linkage(r.Config))
					continue
				}
				reason := core.Rejection{Candidate: r.Candidate, Err: r.Err}.Reason()
				fmt.Fprintln(ui.Out, ui.SprintError("%s: %s", r.Candidate.Path, reason))
				failures = append(failures, r.Candidate.Path)
			}

			// Summary
			ui.PrintHeader("Summary")
			working := len(results) - len(failures)
			if working == 0 {
				ui.PrintError("none of %d candidate(s) work", len(results))
				return fmt.Errorf("%w: all %d candidate(s) failed", toolprobe.ErrNoMatch, len(results))
			}

			ui.PrintSuccess("%d of %d candidate(s) work", working, len(results))
			ui.PrintKeyValue("Cached interpreters", strconv.Itoa(finder.CachedProbes()))
			if len(failures) > 0 {
				ui.PrintWarning("%d candidate(s) failed:", len(failures))
				ui.PrintList(failures)
			}

			log.Info().Int("working", working).Int("failed", len(failures)).
				Int("cached", finder.CachedProbes()).Msg("doctor finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not draw a progress bar")

	return cmd
}
