package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockspiral/internal/placement"
)

var flagPlaceCount int

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Place blocks without the UI",
	Long: `Load the blocks from the store, then place the next N blocks along the
spiral, one request at a time. Stops at the first failure.

Examples:
  blockspiral place
  blockspiral place -n 20 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlace,
}

func init() {
	placeCmd.Flags().IntVarP(&flagPlaceCount, "count", "n", 1, "Number of blocks to place")
}

func runPlace(cmd *cobra.Command, _ []string) {
	if flagPlaceCount < 1 {
		fatalf("Error: --count must be at least 1")
	}

	cfg := loadConfig(cmd)
	logger := newLogger(os.Stderr, "place")
	ctrl := newController(newClient(cfg), cfg, logger)
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		fatalf("%s", placement.UserMessage(err))
	}

	for i := 0; i < flagPlaceCount; i++ {
		b, err := ctrl.Place(ctx)
		if err != nil {
			fatalf("%s", placement.UserMessage(err))
		}
		fmt.Println(b)
	}
	logger.Debug("placement done", "count", flagPlaceCount, "cursor", ctrl.Cursor())
}
