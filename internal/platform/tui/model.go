// Package tui runs a game full-screen in the terminal with Bubble Tea.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minesweeper/internal/core"
)

// Game is a turn-based game driven by discrete input events.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running a game.
// The game only advances on key presses, so there is no tick loop.
type Model struct {
	game     Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	theme    Theme
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   h,
		theme:  DefaultTheme(),
		config: cfg,
		logger: logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("session started", "game", m.game.Title(), "seed", m.config.Seed)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		st := m.game.State()
		m.logger.Info("session ended", "moves", st.Moves, "game_over", st.GameOver, "won", st.Won)
		return m, tea.Quit

	case core.ActionRestart:
		if !m.game.State().GameOver {
			return m, nil
		}
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.logger.Debug("restarted", "seed", m.config.Seed)
		return m, nil
	}

	m.game.Step(core.NewInputFrame(action))
	return m, nil
}

// boardHeight is the screen height left for the game once the help footer is drawn.
func (m Model) boardHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(m.config.ScreenH-lines, 0)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.boardHeight()
	return cfg
}

func (m *Model) resize() {
	h := m.boardHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.theme.Render(m.screen) + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
