package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	lsystem "github.com/viktordanov/go-lsystem"
)

var (
	analyseDepth int
	chartPath    string
)

var analyseCmd = &cobra.Command{
	Use:   "analyse [file]",
	Short: "Report how fast each variable grows",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(args)
		if err != nil {
			return err
		}

		rates, err := lsystem.AnalyseProductionRates(sys.Grammar(), analyseDepth, logger)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, sym := range sys.Grammar().Variables().AsSlice() {
			profile := rates[sym]
			fmt.Fprintf(out, "%s\tavg growth %s\tlengths %v\n",
				sym, strconv.FormatFloat(profile.AverageGrowth(), 'f', 4, 64), profile.Lengths)
		}

		if chartPath == "" {
			return nil
		}
		fractal, err := sys.Fractal(analyseDepth)
		if err != nil {
			return err
		}
		f, err := os.Create(chartPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := lsystem.AnalyseGrowth(sys.Name(), fractal).RenderChart(f); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		logger.Info("wrote growth chart", "path", chartPath)
		return nil
	},
}

func init() {
	analyseCmd.Flags().IntVarP(&analyseDepth, "iterations", "n", 5, "number of recursions to profile")
	analyseCmd.Flags().StringVar(&chartPath, "chart", "", "write an HTML growth chart to this file")
	rootCmd.AddCommand(analyseCmd)
}
