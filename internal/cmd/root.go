package cmd

import (
	"fmt"

	"github.com/quantmind-br/toolprobe"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Extra options are applied after the
// ones derived from cfg.
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string, opts ...toolprobe.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolprobe",
		Short: "Find Python interpreters and their build flags",
		Long: `Scan the search path for Python interpreters, run each one to learn its
version and build configuration, and report the compiler and linker flags
needed to embed or extend it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("search-path") {
				cfg.Discovery.SearchPath = config.ExpandSearchPath(cfg.Discovery.SearchPath)
				cfg.Discovery.SearchPathSet = true
			}
			if err := cfg.Validate(); err != nil {
				return usageErrorf("%v", err)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.Discovery.SearchPath, "search-path", cfg.Discovery.SearchPath, "directories to scan instead of $PATH; ~ and $VAR are expanded, an explicit empty value scans nothing")
	flags.StringSliceVar(&cfg.Discovery.Names, "names", cfg.Discovery.Names, "interpreter executable names")
	flags.DurationVar(&cfg.Probe.Timeout, "timeout", cfg.Probe.Timeout, "time limit for each interpreter invocation")
	flags.IntVarP(&cfg.Probe.Parallelism, "parallel", "j", cfg.Probe.Parallelism, "candidates probed at once")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Add subcommands
	cmd.AddCommand(NewFindCmd(cfg, log, opts...))
	cmd.AddCommand(NewListCmd(cfg, log, opts...))
	cmd.AddCommand(NewCandidatesCmd(cfg, log, opts...))
	cmd.AddCommand(NewInspectCmd(cfg, log, opts...))
	cmd.AddCommand(NewDoctorCmd(cfg, log, opts...))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

// newFinder builds a Finder from the loaded configuration
func newFinder(cfg *config.Config, log *zerolog.Logger, extra []toolprobe.Option) (*toolprobe.Finder, error) {
	opts := []toolprobe.Option{
		toolprobe.WithSearchPath(cfg.SearchPath()),
		toolprobe.WithTimeout(cfg.Probe.Timeout),
		toolprobe.WithParallelism(max(cfg.Probe.Parallelism, 1)),
		toolprobe.WithCacheSize(cfg.Probe.CacheSize),
		toolprobe.WithLogger(log),
	}
	if len(cfg.Discovery.Names) > 0 {
		opts = append(opts, toolprobe.WithNames(cfg.Discovery.Names...))
	}
	if len(cfg.Discovery.ExtraPatterns) > 0 {
		opts = append(opts, toolprobe.WithExtraPatterns(cfg.Discovery.ExtraPatterns...))
	}

	finder, err := toolprobe.New(append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("configure discovery: %w", err)
	}
	return finder, nil
}
