// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the game and its front ends.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	Colors    bool `yaml:"colors"`
	ShowMoves bool `yaml:"show_moves"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty means ~/.t2048/scores.db
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address must not be empty"))
	}
	if c.Server.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must be positive, got %s", c.Server.IdleTimeout))
	}
	if c.Server.HostKey == "" {
		errs = append(errs, errors.New("server.host_key must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
