package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxfish/internal/config"
	"github.com/vovakirdan/boxfish/internal/core"
	"github.com/vovakirdan/boxfish/internal/game"
	"github.com/vovakirdan/boxfish/internal/stage"
	"github.com/vovakirdan/boxfish/internal/storage"
)

// Session bundles what a player's game needs from its host.
type Session struct {
	Stages     []*stage.Stage
	Config     config.Config
	Store      *storage.Store // may be nil
	Sink       game.Sink      // may be nil
	Player     string
	StartStage string
	Logger     *log.Logger
}

// NewGame builds a game for the session, wiring results into the store.
func (s Session) NewGame() *game.Game {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	return game.New(s.Stages, s.Config, game.Options{
		StartStage: s.StartStage,
		Sink:       s.Sink,
		Results:    storeResults{store: s.Store, player: s.Player, logger: logger},
		Logger:     logger,
	})
}

// Model is the Bubble Tea model for running a boxfish game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	painter    *Painter
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	scoreboard bool // tab pressed; the host shows the scoreboard
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	g.Reset(cfg)
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:    NewPainter(g.Palette()),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		m.scoreboard = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The run is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the measured time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.gameState = m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.gameState.StageID, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Render(m.screen)
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the player asked for the scoreboard.
func (m Model) WantsScoreboard() bool {
	return m.scoreboard
}

// closeScoreboard clears the scoreboard request.
func (m *Model) closeScoreboard() {
	m.scoreboard = false
	m.lastTick = time.Time{}
}

// Run starts the Bubble Tea program for a local session.
func Run(s Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(s, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
