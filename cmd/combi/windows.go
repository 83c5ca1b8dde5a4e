package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/combi/seqgen"
	"github.com/spf13/cobra"
)

var windowLength int

var windowsCmd = &cobra.Command{
	Use:   "windows <token>...",
	Short: "Slide a fixed-length window over the tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWindows,
}

func init() {
	windowsCmd.Flags().IntVarP(&windowLength, "length", "l", 2, "window length (must be positive)")
}

func runWindows(cmd *cobra.Command, args []string) error {
	windows, err := seqgen.Infixes(windowLength, args)
	if err != nil {
		return fmt.Errorf("windows: %w", err)
	}

	for _, window := range windows {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(window, sep))
	}

	return nil
}
