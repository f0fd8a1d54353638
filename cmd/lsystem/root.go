package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/viktordanov/go-lsystem/internal/logging"
)

const version = "0.2.0"

var (
	logger     = logging.NewNop()
	profile    *os.File
	logLevel   string
	cpuprofile string
)

var rootCmd = &cobra.Command{
	Use:           "lsystem",
	Short:         "lsystem rewrites Lindenmayer system grammars",
	Long:          `lsystem loads an L-system definition (YAML or JSON), validates it and prints the rewritten sequence after a number of recursions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = logging.New(level)

		if cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("failed to create cpu profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				return fmt.Errorf("failed to start cpu profile: %w", err)
			}
			profile = f
			logger.Debug("cpu profiling enabled", "path", cpuprofile)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfile()
	},
}

func stopProfile() {
	if profile == nil {
		return
	}
	pprof.StopCPUProfile()
	profile.Close()
	profile = nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stopProfile()
		logger.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", slog.LevelInfo.String(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cpuprofile, "cpuprofile", "", "write cpu profile to file")
}
