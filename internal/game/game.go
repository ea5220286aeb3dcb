// Package game runs a boxfish campaign: it feeds player input to the engine,
// advances through the stage list, turns engine events into sounds and
// highlights, and renders everything into a core.Screen.
// It has no Bubble Tea dependency; the platform owns timing and the terminal.
package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxfish/internal/audio"
	"github.com/vovakirdan/boxfish/internal/boxfish"
	"github.com/vovakirdan/boxfish/internal/config"
	"github.com/vovakirdan/boxfish/internal/core"
	"github.com/vovakirdan/boxfish/internal/grid"
	"github.com/vovakirdan/boxfish/internal/stage"
)

// Sink plays sound cues. *audio.Manager satisfies it.
type Sink interface {
	Play(s audio.Sound)
}

// Results receives finished stages and runs, typically to persist them.
type Results interface {
	StageCleared(stageID string, steps int)
	RunFinished(steps int, rank string, stages int)
}

// Options configures a Game.
type Options struct {
	StartStage string // stage ID to begin on; empty starts at the first
	Sink       Sink
	Results    Results
	Logger     *log.Logger
}

type nopSink struct{}

func (nopSink) Play(audio.Sound) {}

type nopResults struct{}

func (nopResults) StageCleared(string, int)     {}
func (nopResults) RunFinished(int, string, int) {}

// highlight flashes a gate register after an EQUAL mismatch.
type highlight struct {
	at        grid.TileCoord
	remaining float64
}

// Game is one campaign run.
type Game struct {
	cfg     config.Config
	stages  []*stage.Stage
	start   int
	sink    Sink
	results Results
	logger  *log.Logger

	engine *boxfish.Engine
	index  int

	queued     grid.Travel // direction waiting for the head to settle
	inflate    bool        // latched inflate toggle
	paused     bool
	stageClear bool
	clearTimer float64
	won        bool
	rank       string
	stageSteps int // engine steps when the current stage was entered

	highlights []highlight

	screenW int
	screenH int
}

// New creates a game over the given stages. It panics on an empty list.
func New(stages []*stage.Stage, cfg config.Config, opts Options) *Game {
	if len(stages) == 0 {
		panic("game: no stages")
	}

	g := &Game{
		cfg:     cfg,
		stages:  stages,
		sink:    opts.Sink,
		results: opts.Results,
		logger:  opts.Logger,
	}
	if g.sink == nil {
		g.sink = nopSink{}
	}
	if g.results == nil {
		g.results = nopResults{}
	}
	if g.logger == nil {
		g.logger = log.WithPrefix("game")
	}

	for i, s := range stages {
		if s.ID == opts.StartStage {
			g.start = i
			break
		}
	}

	g.engine = boxfish.NewEngine(cfg.Movement.Tuning())
	g.engine.SetLogger(g.logger.WithPrefix("boxfish"))
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "boxfish"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Boxfish"
}

// Reset starts a new run at the start stage.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.index = g.start
	g.paused = false
	g.won = false
	g.rank = ""
	g.engine.ResetSteps()
	g.stageSteps = 0
	g.loadStage()
}

// Resize updates the screen dimensions without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// loadStage places a fresh boxfish on the current stage. Steps carry over.
func (g *Game) loadStage() {
	st := g.stages[g.index]
	g.engine.Load(st.Geometry(), st.Spawn)
	g.queued = grid.None
	g.inflate = false
	g.stageClear = false
	g.clearTimer = 0
	g.highlights = nil
	g.logger.Info("stage loaded", "id", st.ID, "name", st.Name, "steps", g.engine.Steps())
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.GameState {
	if g.won {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		}
		return g.State()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.State()
	}

	g.decayHighlights(dt)

	if g.stageClear {
		g.clearTimer += dt
		if g.clearTimer >= g.cfg.Display.ClearDelaySeconds {
			g.advance()
		}
		return g.State()
	}

	if in.Has(core.ActionReload) {
		g.loadStage()
		return g.State()
	}

	if in.Has(core.ActionInflate) {
		g.inflate = !g.inflate
	}
	if travel := travelFor(in); !travel.IsZero() {
		g.queued = travel
	}
	undo := in.Has(core.ActionUndo)
	if undo {
		g.queued = grid.None
	}

	g.engine.Tick(boxfish.Intent{
		Travel:  g.queued,
		Inflate: g.inflate,
		Undo:    undo,
	}, dt)
	g.handleEvents(g.engine.Drain())

	if g.engine.Motion().Phase == boxfish.MotionSettled && g.engine.OnGoal() {
		g.clearStage()
	}
	return g.State()
}

// travelFor picks the direction requested this frame, if any.
func travelFor(in core.InputFrame) grid.Travel {
	switch {
	case in.Has(core.ActionUp):
		return grid.Up
	case in.Has(core.ActionDown):
		return grid.Down
	case in.Has(core.ActionLeft):
		return grid.Left
	case in.Has(core.ActionRight):
		return grid.Right
	}
	return grid.None
}

// handleEvents reacts to the engine outbox.
func (g *Game) handleEvents(events []boxfish.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case boxfish.EventMoved:
			g.queued = grid.None
		case boxfish.EventCollided:
			g.queued = grid.None
			g.sink.Play(audio.SoundBump)
		case boxfish.EventGateMismatch:
			g.queued = grid.None
			g.highlights = append(g.highlights, highlight{at: ev.At, remaining: g.cfg.Display.HighlightSeconds})
			g.sink.Play(audio.SoundMismatch)
		case boxfish.EventStartled:
			g.inflate = false
			g.sink.Play(audio.SoundStartled)
		case boxfish.EventUndone:
			g.queued = grid.None
			g.sink.Play(audio.SoundUndo)
		case boxfish.EventInflated:
			if ev.Expanding {
				g.sink.Play(audio.SoundInflate)
			} else {
				g.sink.Play(audio.SoundDeflate)
			}
		}
	}
}

func (g *Game) decayHighlights(dt float64) {
	kept := g.highlights[:0]
	for _, h := range g.highlights {
		h.remaining -= dt
		if h.remaining > 0 {
			kept = append(kept, h)
		}
	}
	g.highlights = kept
}

// highlighted reports whether the register at c is flashing.
func (g *Game) highlighted(c grid.TileCoord) bool {
	for _, h := range g.highlights {
		if h.at == c {
			return true
		}
	}
	return false
}

// clearStage marks the current stage as finished and reports it.
func (g *Game) clearStage() {
	st := g.stages[g.index]
	spent := g.engine.Steps() - g.stageSteps
	g.stageClear = true
	g.clearTimer = 0
	g.sink.Play(audio.SoundStageClear)
	g.results.StageCleared(st.ID, spent)
	g.logger.Info("stage cleared", "id", st.ID, "steps", spent, "total", g.engine.Steps())
}

// advance moves on to the next stage or finishes the run.
func (g *Game) advance() {
	g.index++
	g.stageSteps = g.engine.Steps()
	if g.index < len(g.stages) {
		g.loadStage()
		return
	}

	g.index = len(g.stages) - 1
	g.stageClear = false
	g.won = true
	g.rank = g.cfg.Scoring.Rank(g.engine.Steps())
	g.sink.Play(audio.SoundGameClear)
	cleared := len(g.stages) - g.start
	g.results.RunFinished(g.engine.Steps(), g.rank, cleared)
	g.logger.Info("run finished", "steps", g.engine.Steps(), "rank", g.rank, "stages", cleared)
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	return core.GameState{
		StageID:    g.stages[g.index].ID,
		StageIndex: g.index,
		Steps:      g.engine.Steps(),
		Cleared:    g.won,
		Rank:       g.rank,
		Paused:     g.paused,
	}
}

// Engine exposes the underlying engine for inspection.
func (g *Game) Engine() *boxfish.Engine {
	return g.engine
}

// Palette returns the configured screen colors.
func (g *Game) Palette() core.Palette {
	return g.cfg.Theme.Palette()
}

// Stage returns the stage being played.
func (g *Game) Stage() *stage.Stage {
	return g.stages[g.index]
}
