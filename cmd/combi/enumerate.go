package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/combi/combinat"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product <token>...",
	Short: "All length-p tuples over the tokens (repeats allowed, any order)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVariant(combinat.Product[string]),
}

var permutationsCmd = &cobra.Command{
	Use:   "permutations <token>...",
	Short: "Length-p tuples with pairwise-distinct tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVariant(combinat.Permutations[string]),
}

var combinationsCmd = &cobra.Command{
	Use:   "combinations <token>...",
	Short: "Length-p token sets in canonical ascending order, no repeats",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVariant(combinat.Combinations[string]),
}

var cwrCmd = &cobra.Command{
	Use:   "cwr <token>...",
	Short: "Combinations with replacement: canonical order, repeats allowed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVariant(combinat.CombinationsWithReplacement[string]),
}

// runVariant adapts one facade operation into a cobra handler that prints
// one tuple per line.
func runVariant(variant func(power int, xs []string) [][]string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, tuple := range variant(power, args) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tuple, sep))
		}

		return nil
	}
}

var countCmd = &cobra.Command{
	Use:   "count <token>...",
	Short: "Print result sizes for every variant without enumerating",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := len(args)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "product:       %d\n", combinat.ProductCount(n, power))
		fmt.Fprintf(out, "permutations:  %d\n", combinat.PermutationCount(n, power))
		fmt.Fprintf(out, "combinations:  %d\n", combinat.CombinationCount(n, power))
		fmt.Fprintf(out, "cwr:           %d\n", combinat.CombinationWithReplacementCount(n, power))

		return nil
	},
}
