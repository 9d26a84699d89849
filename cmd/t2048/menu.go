package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	rc := runtimeConfig(cfg)

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		rc = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoicePlay:
			game, err := registry.Create(t2048.GameID)
			if err != nil {
				logger.Error("cannot create game", "error", err)
				return
			}
			state, err := tui.Run(game, tui.AsResultStore(store), rc, "local")
			if err != nil {
				logger.Error("game failed", "error", err)
			}
			logger.Debug("game finished", "score", state.Score)

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, "", rc.ScreenW, rc.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
