package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KhushveerS/shift2048/internal/config"
	"github.com/KhushveerS/shift2048/internal/core"
	"github.com/KhushveerS/shift2048/internal/engine"
	"github.com/KhushveerS/shift2048/internal/storage"
)

// Model is the Bubble Tea model for a running game session.
type Model struct {
	game    *engine.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	gameCfg config.GameConfig
	keys    *KeyMapper

	// Spawn pop animation. Input is held back while it runs.
	animating bool
	animTicks int
	popX      int
	popY      int

	won        bool // Win banner is showing
	wonShown   bool // Win banner was already dismissed this game
	tooSmall   bool
	quitting   bool
	scoreSaved bool // Whether the final score was saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *engine.Game, store *storage.Store, cfg core.RuntimeConfig, gameCfg config.GameConfig) Model {
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		gameCfg: gameCfg,
		keys:    NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.game.Reset()
		m.animating = false
		m.animTicks = 0
		m.won = false
		m.wonShown = false
		m.scoreSaved = false

	case core.ActionConfirm:
		// Dismiss the win banner and keep playing.
		if m.won {
			m.won = false
		}

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if m.animating || m.won || m.game.Over() {
			return m, nil
		}
		dir, ok := Direction(action)
		if !ok {
			return m, nil
		}
		if m.game.Move(dir) {
			if x, y, ok := m.game.LastSpawn(); ok {
				m.animating = true
				m.animTicks = 0
				m.popX, m.popY = x, y
			}
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.tooSmall = msg.Width < minScreenW || msg.Height < minScreenH
	return m, nil
}

// handleTick advances the spawn animation and runs end-of-move checks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.animating {
		m.animTicks++
		if m.animTicks >= m.gameCfg.Animation.PopTicks {
			m.animating = false
			m.animTicks = 0

			// Move settled: check for the win tile and for game over.
			if !m.wonShown && m.gameCfg.Win.Tile > 0 && m.game.Board().MaxTile() >= m.gameCfg.Win.Tile {
				m.won = true
				m.wonShown = true
			}
		}
	}

	if m.game.Over() && !m.scoreSaved {
		if m.store != nil && m.game.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(storage.GameID, m.game.Score(), m.game.Board().MaxTile())
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen buffer to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".shift2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", storage.GameID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *engine.Game, store *storage.Store, cfg core.RuntimeConfig, gameCfg config.GameConfig) error {
	model := NewModel(game, store, cfg, gameCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
