package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockspiral/internal/placement"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every block",
	Long:  `Delete every block in the store. The next placement starts at the origin.`,
	Args:  cobra.NoArgs,
	Run:   runClear,
}

func runClear(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	ctrl := newController(newClient(cfg), cfg, newLogger(os.Stderr, "clear"))

	if err := ctrl.Clear(context.Background()); err != nil {
		fatalf("%s", placement.UserMessage(err))
	}
	fmt.Println("Cleared.")
}
