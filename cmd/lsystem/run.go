package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	lsystem "github.com/viktordanov/go-lsystem"
)

var (
	iterations int
	history    bool
	describe   bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Print the sequence after a number of recursions",
	Long:  `Loads the definition (the built-in Sierpiński triangle when no file is given) and prints the rewritten sequence.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(args)
		if err != nil {
			return err
		}

		fractal, err := sys.Fractal(iterations)
		if err != nil {
			return err
		}
		logger.Info("rewrote system",
			"name", sys.Name(),
			"iterations", fractal.Depth(),
			"length", fractal.Current().Len(),
		)

		out := cmd.OutOrStdout()
		if describe {
			fmt.Fprintln(out, sys)
		}
		if history {
			fmt.Fprintln(out, fractal)
			return nil
		}
		fmt.Fprintln(out, formatTokens(fractal.Result()))
		return nil
	},
}

func formatTokens(tokens []lsystem.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func init() {
	runCmd.Flags().IntVarP(&iterations, "iterations", "n", 3, "number of recursions to apply")
	runCmd.Flags().BoolVar(&history, "history", false, "print every iteration")
	runCmd.Flags().BoolVar(&describe, "describe", false, "print the system description first")
	rootCmd.AddCommand(runCmd)
}
