// Package tui runs term2048 in a terminal with Bubble Tea, locally or over SSH via Wish.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

// ResultStore records finished games. *storage.Store implements it.
type ResultStore interface {
	SaveResult(r storage.Result) (int64, error)
}

// AsResultStore keeps a nil *storage.Store from becoming a non-nil ResultStore.
func AsResultStore(s *storage.Store) ResultStore {
	if s == nil {
		return nil
	}
	return s
}

// GameModel is the Bubble Tea model for one game of 2048.
// Every key press is one Step; there is no tick loop.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     ResultStore
	config    core.RuntimeConfig
	player    string
	keyMapper *KeyMapper
	gameState core.GameState
	recorded  bool // Whether the current game has been saved
	done      bool
	saveErr   error
}

// NewGameModel creates a model and deals the first board.
func NewGameModel(game registry.Game, store ResultStore, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = "local"
	}

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		player:    player,
		keyMapper: NewKeyMapper(),
		gameState: game.State(),
	}
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey turns one key press into one game step.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if !m.keyMapper.MapKeyToFrame(msg, &frame) {
		return m, nil
	}

	// A restart abandons the current game; keep its tally if it got anywhere.
	if frame.Has(core.ActionRestart) {
		m.recordResult()
		m.recorded = false
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordResult()
	}
	if m.gameState.Quit {
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// recordResult saves the current game once. Games without a move are skipped.
func (m *GameModel) recordResult() {
	if m.recorded || m.store == nil {
		return
	}
	m.recorded = true

	r := storage.Result{Player: m.player, Score: m.gameState.Score}
	if g, ok := m.game.(*t2048.Game); ok {
		snap := g.Snapshot()
		if snap.Moves == 0 {
			return
		}
		r.Score = snap.Score
		r.Moves = snap.Moves
		r.MaxTile = snap.MaxTile
	}

	_, m.saveErr = m.store.SaveResult(r)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.done {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the player quit the game.
func (m GameModel) Done() bool {
	return m.done
}

// State returns the state after the last step.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// SaveErr returns the last error from recording a result, if any.
func (m GameModel) SaveErr() error {
	return m.saveErr
}

// Run plays one game in the local terminal until the player quits.
func Run(game registry.Game, store ResultStore, cfg core.RuntimeConfig, player string) (core.GameState, error) {
	model := NewGameModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if m, ok := finalModel.(GameModel); ok {
		if m.SaveErr() != nil {
			return m.State(), fmt.Errorf("tui: save result: %w", m.SaveErr())
		}
		return m.State(), nil
	}
	return model.State(), nil
}
