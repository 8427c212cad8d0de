// blockspiral places colored blocks on an outward square spiral and keeps
// them in a remote blocks store.
//
// Usage:
//
//	blockspiral play             - Open the grid in the terminal
//	blockspiral serve            - Run the reference blocks store (HTTP, optional SSH UI)
//	blockspiral ssh              - Serve the grid over SSH against a remote store
//	blockspiral list             - Print the stored blocks
//	blockspiral place -n <count> - Place blocks without the UI
//	blockspiral clear            - Delete every block
//	blockspiral preview -n <count> - Print the spiral order
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.blockspiral/config.yaml, ./configs/blockspiral.yaml)
//	--url <url>         - Blocks store URL (overrides client.url)
//	--seed <value>      - RNG seed for block colors
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockspiral/internal/client"
	"github.com/vovakirdan/blockspiral/internal/config"
	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/placement"
)

var (
	// Global flags
	flagConfig   string
	flagURL      string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockspiral",
	Short: "Blockspiral - grow a spiral of colored blocks",
	Long: `Blockspiral places colored blocks one at a time along an outward
square spiral. Blocks live in a blocks store reached over HTTP, so the
spiral picks up where it left off after a restart.

Available commands:
  play     - Open the grid in the terminal
  serve    - Run the reference blocks store
  ssh      - Serve the grid over SSH
  list     - Print the stored blocks
  place    - Place blocks without the UI
  clear    - Delete every block
  preview  - Print the spiral order

Examples:
  blockspiral serve --ssh
  blockspiral play --url http://localhost:8080
  blockspiral place -n 10
  blockspiral preview -n 25`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Blocks store URL (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for colors (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}

	if flagURL != "" {
		cfg.Client.URL = flagURL
	}
	if cmd.Flags().Changed("seed") {
		cfg.UI.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		fatalf("Error: %v", err)
	}
	return cfg
}

// newLogger creates a logger at the --log-level level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// newClient creates the blocks store client from cfg.
func newClient(cfg config.Config) *client.Client {
	c, err := client.New(client.Config{
		BaseURL:   cfg.Client.URL,
		Timeout:   cfg.Client.Timeout,
		UserAgent: "blockspiral",
	})
	if err != nil {
		fatalf("Error: %v", err)
	}
	return c
}

// newController creates a controller over store.
func newController(store placement.Store, cfg config.Config, logger *log.Logger) *placement.Controller {
	return placement.NewController(store,
		placement.WithLogger(logger),
		placement.WithColors(placement.NewRandomColors(cfg.UI.Seed)),
	)
}

// runtimeConfig builds the grid view config for a width x height terminal.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		CellW:      cfg.UI.CellWidth,
		CellH:      cfg.UI.CellHeight,
		Seed:       cfg.UI.Seed,
		ShowCursor: cfg.UI.ShowCursor,
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
