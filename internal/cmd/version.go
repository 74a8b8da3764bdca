package cmd

import (
	"fmt"
	"runtime"

	"github.com/quantmind-br/toolprobe/internal/probe"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "toolprobe version %s (probe contract v%d, %s/%s)\n",
				version, probe.ProbeContractVersion, runtime.GOOS, runtime.GOARCH)
		},
	}

	return cmd
}
