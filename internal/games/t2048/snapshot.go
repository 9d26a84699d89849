package t2048

// Snapshot captures the complete game state for determinism testing and for
// the result recorded when a game ends.
type Snapshot struct {
	Moves   int
	Score   int
	Board   Grid
	MaxTile int
	Phase   Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Moves:   g.moves,
		Score:   g.board.Score(),
		Board:   *g.board,
		MaxTile: g.board.MaxTile(),
		Phase:   g.phase,
	}
}
