package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/blockspiral/internal/platform/tui"
	"github.com/vovakirdan/blockspiral/internal/server"
	"github.com/vovakirdan/blockspiral/internal/storage"
)

var (
	flagAddr    string
	flagDBPath  string
	flagWithSSH bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference blocks store",
	Long: `Start the HTTP blocks store backed by SQLite.

  GET    /blocks   list blocks in creation order
  POST   /blocks   store {"position":{"x":0,"y":0},"color":"#rrggbb"}
  DELETE /blocks   delete every block
  GET    /health   liveness
  GET    /metrics  Prometheus metrics

With --ssh the grid is also served over SSH, working directly on the
same database.

Examples:
  blockspiral serve                      # Listen on :8080
  blockspiral serve --addr :9000 --db ./blocks.db
  blockspiral serve --ssh --ssh-addr :2222

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (default from config, :8080)")
	serveCmd.Flags().StringVar(&flagDBPath, "db", "", "Path to blocks database (default from config)")
	serveCmd.Flags().BoolVar(&flagWithSSH, "ssh", false, "Also serve the grid over SSH")
	addSSHFlags(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	if flagAddr != "" {
		cfg.Server.Addr = flagAddr
	}
	if flagDBPath != "" {
		cfg.Server.DBPath = flagDBPath
	}

	logger := newLogger(os.Stderr, "blockspiral")

	store, err := storage.Open(cfg.Server.DBPath)
	if err != nil {
		fatalf("Error opening blocks database: %v", err)
	}
	defer store.Close()

	srv := server.New(store, server.Config{
		Addr:   cfg.Server.Addr,
		Logger: logger.WithPrefix("http"),
	})

	var sshSrv *tui.SSHServer
	if flagWithSSH {
		sshCfg := sshServerConfig(cfg)
		sshCfg.Logger = logger.WithPrefix("ssh")
		sshSrv, err = tui.NewSSHServer(store, sshCfg)
		if err != nil {
			fatalf("Error creating SSH server: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	if sshSrv != nil {
		g.Go(func() error { return sshSrv.Run(ctx) })
	}

	logger.Info("blocks store started", "http", cfg.Server.Addr, "db", cfg.Server.DBPath, "ssh", flagWithSSH)
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		stop()
		store.Close()
		os.Exit(1)
	}
	logger.Info("stopped")
}
