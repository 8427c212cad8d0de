// Package config provides YAML-based configuration loading for blockspiral.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config contains all blockspiral settings.
type Config struct {
	Client ClientConfig `yaml:"client"`
	Server ServerConfig `yaml:"server"`
	SSH    SSHConfig    `yaml:"ssh"`
	UI     UIConfig     `yaml:"ui"`
}

// ClientConfig defines how the grid reaches the blocks store.
type ClientConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ServerConfig defines the reference blocks store.
type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the SSH front end.
type SSHConfig struct {
	Addr        string        `yaml:"addr"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// UIConfig defines grid rendering.
type UIConfig struct {
	CellWidth  int   `yaml:"cell_width"`  // terminal columns per grid cell
	CellHeight int   `yaml:"cell_height"` // terminal rows per grid cell
	Seed       int64 `yaml:"seed"`        // 0 = seed colors from the clock
	ShowCursor bool  `yaml:"show_cursor"`
}

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Client: ClientConfig{
			URL:     "http://localhost:8080",
			Timeout: 5 * time.Second,
		},
		Server: ServerConfig{
			Addr:   ":8080",
			DBPath: "~/.blockspiral/blocks.db",
		},
		SSH: SSHConfig{
			Addr:        ":2222",
			HostKeyPath: ".ssh/blockspiral_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		UI: UIConfig{
			CellWidth:  4,
			CellHeight: 2,
			ShowCursor: true,
		},
	}
}

// Validate reports every setting that cannot work.
func (c Config) Validate() error {
	var errs []error

	if c.Client.URL == "" {
		errs = append(errs, errors.New("client.url is required"))
	} else if u, err := url.Parse(c.Client.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("client.url %q must be an http(s) URL", c.Client.URL))
	}
	if c.Client.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("client.timeout must be positive, got %s", c.Client.Timeout))
	}
	if c.UI.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("ui.cell_width must be at least 1, got %d", c.UI.CellWidth))
	}
	if c.UI.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("ui.cell_height must be at least 1, got %d", c.UI.CellHeight))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
