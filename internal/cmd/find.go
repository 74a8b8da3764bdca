package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// selectPrompt asks the user to pick an interpreter; tests replace it
var selectPrompt ui.Selector = ui.SelectPromptDetailed

// filterFlags are the predicate flags shared by find and list
type filterFlags struct {
	constraint     string
	implementation string
	static         bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.constraint, "constraint", "c", "", `version constraint, e.g. ">=3.8,<4"`)
	cmd.Flags().StringVar(&f.implementation, "implementation", "", "implementation (cpython, pypy)")
	cmd.Flags().BoolVar(&f.static, "static", false, "only statically linked interpreters")
	_ = cmd.RegisterFlagCompletionFunc("implementation",
		cobra.FixedCompletions([]string{"cpython", "pypy"}, cobra.ShellCompDirectiveNoFileComp))
}

// predicate combines the given filters; nil when no filter is set
func (f *filterFlags) predicate() (toolprobe.Predicate, error) {
	var preds []toolprobe.Predicate

	if f.constraint != "" {
		c, err := toolprobe.ParseConstraint(f.constraint)
		if err != nil {
			return nil, usageErrorf("--constraint: %v", err)
		}
		preds = append(preds, toolprobe.MatchConstraint(c))
	}
	if f.implementation != "" {
		impl := core.ParseImplementation(f.implementation)
		if impl == core.ImplementationUnknown {
			return nil, usageErrorf("--implementation: unknown implementation %q", f.implementation)
		}
		preds = append(preds, toolprobe.ImplementationIs(impl))
	}
	if f.static {
		preds = append(preds, toolprobe.Static(true))
	}

	if len(preds) == 0 {
		return nil, nil
	}
	return toolprobe.All(preds...), nil
}

// NewFindCmd creates the find command
func NewFindCmd(cfg *config.Config, log *zerolog.Logger, opts ...toolprobe.Option) *cobra.Command {
	var (
		filters     filterFlags
		output      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the first matching interpreter",
		Long: `Probe candidates in search path order and print the configuration of the
first interpreter that satisfies the filters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			pred, err := filters.predicate()
			if err != nil {
				return err
			}

			finder, err := newFinder(cfg, log, opts)
			if err != nil {
				return err
			}

			var found *toolprobe.Config
			if interactive {
				found, err = chooseInterpreter(cmd.Context(), finder, pred)
			} else {
				found, err = finder.Find(cmd.Context(), pred)
			}
			if err != nil {
				reportSelectionError(cmd, err)
				return err
			}

			log.Info().
				Str("executable", found.Executable()).
				Str("version", found.Version().String()).
				Msg("interpreter selected")

			return renderConfig(cmd.OutOrStdout(), format, found)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose among all matching interpreters")

	return cmd
}

// chooseInterpreter probes every candidate and lets the user pick one
func chooseInterpreter(ctx context.Context, finder *toolprobe.Finder, pred toolprobe.Predicate) (*toolprobe.Config, error) {
	var matches []*toolprobe.Config
	for cfg, err := range finder.All(ctx, pred) {
		if err != nil {
			return nil, err
		}
		matches = append(matches, cfg)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no interpreter satisfies the filters", toolprobe.ErrNoMatch)
	case 1:
		return matches[0], nil
	}

	options := make([]ui.SelectOption, len(matches))
	for i, cfg := range matches {
		options[i] = ui.SelectOption{
			Label:  cfg.Executable(),
			Detail: fmt.Sprintf("%s %s, %s", cfg.Implementation(), cfg.Version(), linkage(cfg)),
			Value:  cfg.Executable(),
		}
	}

	idx, err := selectPrompt("Select interpreter", options)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(matches) {
		return nil, fmt.Errorf("selection index %d out of range", idx)
	}
	return matches[idx], nil
}

// reportSelectionError lists why each candidate was passed over
func reportSelectionError(cmd *cobra.Command, err error) {
	var serr *toolprobe.SelectionError
	if !errors.As(err, &serr) || len(serr.Rejections) == 0 {
		return
	}

	lines := make([]string, 0, len(serr.Rejections))
	for _, r := range serr.Rejections {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Candidate.Path, r.Reason()))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Rejected %d candidate(s):\n", len(lines))
	ui.FprintList(cmd.ErrOrStderr(), lines)
}
