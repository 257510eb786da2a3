// Command d1 decodes data from Advent of Code '23, Day 1.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calbot/aoc"
)

func main() {
	if err := newD1Cmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newD1Cmd() *cobra.Command {
	var infile string
	var wordCorrection bool

	cmd := &cobra.Command{
		Use:          "d1",
		Short:        "Sum the calibration values of a calibration document",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			total, err := aoc.SumCalibrations(infile, wordCorrection)
			if err != nil {
				return fmt.Errorf("summing %s: %w", infile, err)
			}
			fmt.Println("CALIBRATION VALUE:", total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&infile, "infile", "i", "in/d1.txt", "calibration document to decode")
	cmd.Flags().BoolVarP(&wordCorrection, "wordcorrection", "w", false, "count spelled-out digits (e.g. \"three\") as digits")
	return cmd
}
