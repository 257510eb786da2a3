// Command d2 decodes data from Advent of Code '23, Day 2.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calbot/aoc"
)

func main() {
	if err := newD2Cmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newD2Cmd() *cobra.Command {
	var infile string
	var bag aoc.DiceGroup

	cmd := &cobra.Command{
		Use:          "d2",
		Short:        "Validate cube games against a bag and sum their powers",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			games, err := aoc.ReadGames(infile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", infile, err)
			}
			fmt.Println("VALID TOTAL:", aoc.SumValidGameIDs(games, bag))
			fmt.Println("POWER TOTAL:", aoc.SumPowers(games))
			return nil
		},
	}

	cmd.Flags().StringVarP(&infile, "infile", "i", "in/d2.txt", "games file to read")
	cmd.Flags().IntVarP(&bag.Red, "red", "r", 12, "red dice in the bag")
	cmd.Flags().IntVarP(&bag.Green, "green", "g", 13, "green dice in the bag")
	cmd.Flags().IntVarP(&bag.Blue, "blue", "b", 14, "blue dice in the bag")
	return cmd
}
