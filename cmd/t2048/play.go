package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048 right away.

Controls:
  W/A/S/D, Arrows  - Slide the board
  R                - Restart with a fresh board
  O/Q/Ctrl+C       - Quit
  Ctrl+S           - Save a text screenshot to ~/.t2048/screenshots

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --no-color`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	rc := runtimeConfig(cfg)

	game, err := registry.Create(t2048.GameID)
	if err != nil {
		fatal("cannot create game", err)
	}

	store := openStore(cfg)
	state, runErr := tui.Run(game, tui.AsResultStore(store), rc, "local")
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fatal("game failed", runErr)
	}

	fmt.Printf("Final score: %d\n", state.Score)
}
