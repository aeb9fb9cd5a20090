package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// footerHeight is the number of terminal lines kept for the help footer.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	finished   bool // Whether the end of the current game was logged
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop. The game is expected to be loaded already.
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
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keyMapper.Keys().Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.Finished():
		// Restart is only offered once the game has ended.
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its own
// fixed board; only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes driver ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restart := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if restart {
		m.finished = false
	}
	if m.gameState.Finished() && !m.finished {
		m.logger.Info("game finished",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"high_score", m.gameState.HighScore,
			"won", m.gameState.Won)
		m.finished = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".frogger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// playHeight returns the rows left for the board once the footer is drawn.
func playHeight(h int) int {
	if h-footerHeight < 1 {
		return 1
	}
	return h - footerHeight
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits. It returns the last observed game state.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if m, ok := finalModel.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
