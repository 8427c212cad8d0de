package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockspiral/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the grid in the terminal",
	Long: `Load the blocks from the store and show them on the spiral grid.

Controls:
  Space/Enter - Add the next block
  C           - Clear every block
  R           - Reload from the store
  T           - Toggle the block table
  ?           - More keys
  Q/Ctrl+C    - Quit

Examples:
  blockspiral play
  blockspiral play --url http://blocks.example.com
  blockspiral play --seed 42 --log-file ./blockspiral.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is taken by the UI)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fatalf("Error opening log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "play")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := newController(newClient(cfg), cfg, logger)
	if err := tui.Run(ctx, ctrl, runtimeConfig(cfg, width, height)); err != nil {
		logger.Error("ui exited", "error", err)
		fatalf("Error running grid: %v", err)
	}
}
