package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
	Colors  bool  // Whether the renderer should colour cells

	ShowMoves bool // Whether the HUD shows the move counter
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Colors:  true,

		ShowMoves: true,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Quit     bool // Whether the player asked to leave
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State   GameState
	Changed bool // Whether the input altered the board
}
