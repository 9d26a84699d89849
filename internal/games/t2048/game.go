package t2048

import (
	"math/rand"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/registry"
)

// GameID is the registry identifier and the key scores are stored under.
const GameID = "2048"

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseTerminated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Game implements the 2048 puzzle game.
type Game struct {
	rng   *rand.Rand
	board *Grid
	moves int // Moves that changed the board
	phase Phase

	// Screen dimensions
	screenW   int
	screenH   int
	colors    bool
	showMoves bool
	tooSmall  bool
}

// New creates a new 2048 game. Call Reset before use.
func New() *Game {
	return &Game{board: &Grid{}}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes the game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.colors = cfg.Colors
	g.showMoves = cfg.ShowMoves
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.restart()
}

// restart replaces the board wholesale and clears the move counter.
func (g *Game) restart() {
	g.board = MakeBoard(g.rng)
	g.moves = 0
	g.phase = PhasePlaying
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies one input frame.
// Quit always ends the game; Restart is honoured in any live phase;
// moves are only accepted while playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	changed := false

	switch {
	case g.phase == PhaseTerminated:
	case in.Has(core.ActionQuit):
		g.phase = PhaseTerminated
	case in.Has(core.ActionRestart):
		g.restart()
		changed = true
	case g.phase == PhasePlaying:
		if dir, ok := directionFor(in); ok {
			changed = g.processMove(dir)
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor picks the move requested by the frame, if any.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove applies a move and spawns a tile if the board changed.
func (g *Game) processMove(dir Direction) bool {
	if !MakeMove(dir, g.board) {
		// Board didn't change - don't spawn new tile
		return false
	}

	PopulateAnEmptyCell(g.board, g.rng)
	g.moves++

	if GameOver(g.board) {
		g.phase = PhaseGameOver
	}
	return true
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// Board returns a copy of the current board.
func (g *Game) Board() Grid {
	return *g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.phase != PhasePlaying,
		Quit:     g.phase == PhaseTerminated,
	}
}
