package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/toolprobe/internal/cmd"
	"github.com/quantmind-br/toolprobe/internal/config"
	"github.com/quantmind-br/toolprobe/internal/core"
	"github.com/quantmind-br/toolprobe/internal/logging"
	"github.com/quantmind-br/toolprobe/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return core.ExitInvalidArgs
	}

	// Initialize logger
	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
	})
	ui.InitColors(cfg.Logging.Color)

	// Execute root command
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		return cmd.ExitCode(err)
	}
	return core.ExitSuccess
}
