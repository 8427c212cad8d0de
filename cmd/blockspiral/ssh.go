package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockspiral/internal/config"
	"github.com/vovakirdan/blockspiral/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Serve the grid over SSH",
	Long: `Start an SSH server that shows the grid to every connecting user.

Each SSH connection gets its own view, all working on the blocks store
at --url (or client.url from the config).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses ssh.host_key_path from the config

Examples:
  blockspiral ssh                                  # Listen on :2222
  blockspiral ssh --ssh-addr :23234 --url http://blocks:8080

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runSSH,
}

func init() {
	addSSHFlags(sshCmd)
}

// addSSHFlags registers the SSH listener flags on cmd.
func addSSHFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSSHAddr, "ssh-addr", "", "SSH listen address (default from config, :2222)")
	cmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if missing)")
	cmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle sessions after this long (default from config)")
}

// sshServerConfig builds the SSH server config from cfg and the SSH flags.
func sshServerConfig(cfg config.Config) tui.SSHServerConfig {
	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = cfg.SSH.Addr
	sshCfg.HostKeyPath = cfg.SSH.HostKeyPath
	sshCfg.IdleTimeout = cfg.SSH.IdleTimeout
	sshCfg.Grid = runtimeConfig(cfg, 80, 24)

	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = flagIdleTimeout
	}
	return sshCfg
}

func runSSH(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	logger := newLogger(os.Stderr, "blockspiral-ssh")

	sshCfg := sshServerConfig(cfg)
	sshCfg.Logger = logger

	srv, err := tui.NewSSHServer(newClient(cfg), sshCfg)
	if err != nil {
		fatalf("Error creating server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("serving grid", "ssh", srv.Addr(), "store", cfg.Client.URL)
	if err := srv.Run(ctx); err != nil {
		fatalf("Server error: %v", err)
	}
}
