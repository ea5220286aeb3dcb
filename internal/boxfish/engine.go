package boxfish

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxfish/internal/grid"
	"github.com/vovakirdan/boxfish/internal/stage"
)

// Tuning holds the animation speeds.
type Tuning struct {
	SecondsPerTile       float64 // head slide duration per tile
	ShrinkSecondsPerTile float64 // segment inflate/deflate duration per tile
	BounceSpeed          float64 // bounce angle speed in radians per second
}

// DefaultTuning returns the stock animation speeds.
func DefaultTuning() Tuning {
	return Tuning{
		SecondsPerTile:       0.2,
		ShrinkSecondsPerTile: 0.05,
		BounceSpeed:          6,
	}
}

// Intent is the player's input for one tick.
type Intent struct {
	Travel  grid.Travel // zero when no direction is held
	Inflate bool        // inflate held (or latched)
	Undo    bool        // undo pressed this tick
}

// Engine runs the boxfish on one stage.
type Engine struct {
	tuning Tuning
	logger *log.Logger

	geo    *stage.Geometry
	avatar *Avatar
	motion Motion
	steps  int
	events []Event
}

// NewEngine creates an engine with no stage loaded.
func NewEngine(tuning Tuning) *Engine {
	def := DefaultTuning()
	if tuning.SecondsPerTile <= 0 {
		tuning.SecondsPerTile = def.SecondsPerTile
	}
	if tuning.ShrinkSecondsPerTile <= 0 {
		tuning.ShrinkSecondsPerTile = def.ShrinkSecondsPerTile
	}
	if tuning.BounceSpeed <= 0 {
		tuning.BounceSpeed = def.BounceSpeed
	}
	return &Engine{
		tuning: tuning,
		logger: log.WithPrefix("boxfish"),
	}
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l *log.Logger) {
	e.logger = l
}

// Load places a fresh boxfish on the given geometry. The step counter is
// left alone so a run can span several stages; see ResetSteps.
func (e *Engine) Load(geo *stage.Geometry, spawn stage.Spawn) {
	e.geo = geo
	e.avatar = NewAvatar(spawn)
	e.motion = Motion{}
	e.events = nil
	e.logger.Debug("stage loaded", "origin", spawn.Origin, "bits", len(spawn.Bits))
}

// Loaded reports whether Load has been called.
func (e *Engine) Loaded() bool {
	return e.avatar != nil
}

func (e *Engine) mustBeLoaded() {
	if e.avatar == nil || e.geo == nil {
		panic("boxfish: engine used before a stage was loaded")
	}
}

// Tick advances the engine by dt seconds. An undo that restores anything
// ends the tick, so it is never followed by a move.
func (e *Engine) Tick(in Intent, dt float64) {
	e.mustBeLoaded()

	if in.Undo && e.undo() {
		return
	}
	e.tickExpansion(in.Inflate, dt)
	if e.tickMotion(dt) && !in.Travel.IsZero() {
		e.move(in.Travel)
	}
}

// move tries to take one step.
func (e *Engine) move(travel grid.Travel) {
	a := e.avatar
	from := a.Head.Tile

	blockers := e.geo.Blockers(a.Head.Expanding)
	for i := 0; i <= a.Extent(); i++ {
		if blockers.SweepBlocked(from.Behind(i), travel) {
			e.bounce(travel, false)
			e.emit(EventCollided{Travel: travel})
			return
		}
	}

	res := sweepGates(e.geo, a, from, travel)
	if res.vetoed() {
		first := res.mismatches[0]
		e.logger.Debug("move vetoed", "travel", travel, "gate", first, "mismatches", len(res.mismatches))
		e.bounce(travel, false)
		e.emit(EventGateMismatch{At: first, Travel: travel})
		return
	}

	commitGates(a, res)
	a.Head.history = append(a.Head.history, from)
	a.Head.Tile = travel.Apply(from)
	e.steps++
	e.motion = Motion{Phase: MotionInterpolating}
	e.emit(EventMoved{Travel: travel, From: from, To: a.Head.Tile})
}

// undo steps the head and every register back one entry each. It reports
// whether anything was restored.
func (e *Engine) undo() bool {
	a := e.avatar
	restored := false

	if n := len(a.Head.history); n > 0 {
		a.Head.Tile = a.Head.history[n-1]
		a.Head.history = a.Head.history[:n-1]
		a.Head.Pos = grid.ToWorld(a.Head.Tile)
		e.motion = Motion{}
		restored = true
	}
	for _, r := range a.Registers() {
		if r.pop() {
			restored = true
		}
	}

	if restored {
		e.emit(EventUndone{To: a.Head.Tile})
	}
	return restored
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// Drain returns the queued events and empties the outbox.
func (e *Engine) Drain() []Event {
	evs := e.events
	e.events = nil
	return evs
}

// Steps returns the number of committed moves since the last ResetSteps.
func (e *Engine) Steps() int {
	return e.steps
}

// ResetSteps zeroes the step counter.
func (e *Engine) ResetSteps() {
	e.steps = 0
}

// Avatar returns the boxfish. Callers must not mutate it.
func (e *Engine) Avatar() *Avatar {
	e.mustBeLoaded()
	return e.avatar
}

// Geometry returns the loaded stage geometry.
func (e *Engine) Geometry() *stage.Geometry {
	e.mustBeLoaded()
	return e.geo
}

// Motion returns the head's animation state.
func (e *Engine) Motion() Motion {
	return e.motion
}

// OnGoal reports whether any tile the boxfish occupies is a goal.
func (e *Engine) OnGoal() bool {
	e.mustBeLoaded()
	for _, c := range e.avatar.Occupied() {
		if e.geo.Goals.Contains(c) {
			return true
		}
	}
	return false
}
