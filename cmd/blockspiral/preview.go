package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockspiral/internal/spiral"
)

var flagPreviewCount int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the spiral order",
	Long: `Print the first N cells of the spiral with the cursor state after each
one. Needs no store.

Examples:
  blockspiral preview
  blockspiral preview -n 25`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().IntVarP(&flagPreviewCount, "count", "n", 10, "Number of cells to print")
}

func runPreview(_ *cobra.Command, _ []string) {
	if flagPreviewCount < 1 {
		return
	}

	// The origin is emitted without advancing.
	states := []spiral.State{spiral.Initial()}
	more, err := spiral.Walk(spiral.Initial(), flagPreviewCount-1)
	if err != nil {
		fatalf("Error: %v", err)
	}
	states = append(states, more...)

	fmt.Printf("  %4s  %-10s  %-5s  %s\n", "#", "Position", "Dir", "Ring")
	for i, s := range states {
		fmt.Printf("  %4d  %-10s  %-5s  %dx%d\n", i+1, s.Position(), s.Dir, s.MaxX, s.MaxY)
	}
}
