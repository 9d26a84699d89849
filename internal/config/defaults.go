package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Colors:    true,
			ShowMoves: true,
		},
		Server: ServerConfig{
			Address:     ":2048",
			HostKey:     ".ssh/t2048_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
