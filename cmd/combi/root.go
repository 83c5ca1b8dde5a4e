package main

import (
	"github.com/spf13/cobra"
)

var (
	power int
	sep   string
)

var rootCmd = &cobra.Command{
	Use:   "combi",
	Short: "Enumerate tuples over command-line tokens",
	Long: `combi enumerates Cartesian powers, permutations and combinations over
the tokens you pass as arguments, printing one tuple per line in the
library's fixed enumeration order.

Example:
  combi combinations --power 2 A B C D
  AB
  AC
  AD
  BC
  BD
  CD`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&power, "power", "p", 2, "tuple length")
	rootCmd.PersistentFlags().StringVar(&sep, "sep", "", "separator printed between tuple elements")

	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(permutationsCmd)
	rootCmd.AddCommand(combinationsCmd)
	rootCmd.AddCommand(cwrCmd)
	rootCmd.AddCommand(windowsCmd)
	rootCmd.AddCommand(countCmd)
}
