package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded games.

Examples:
  t2048 scores
  t2048 scores --limit 20
  t2048 scores --player alice
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show results of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatal("cannot open scores database", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fatal("cannot clear scores", err)
		}
		fmt.Println("All scores cleared.")
		return
	}

	var results []storage.Result
	if flagPlayer != "" {
		results, err = store.PlayerResults(flagPlayer, flagLimit)
	} else {
		results, err = store.TopResults(flagLimit)
	}
	if err != nil {
		fatal("cannot retrieve scores", err)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Max Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-6s  %s\n", "----", "------", "-----", "--------", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-12s  %-8d  %-8d  %-6d  %s\n",
			i+1, r.Player, r.Score, r.MaxTile, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Best tile: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	}
}
