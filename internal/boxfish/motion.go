package boxfish

import (
	"math"

	"github.com/vovakirdan/boxfish/internal/grid"
)

// MotionPhase is the head's animation state.
type MotionPhase uint8

const (
	// MotionSettled means the head rests on its tile and accepts input.
	MotionSettled MotionPhase = iota
	// MotionInterpolating means the head is sliding toward its tile.
	MotionInterpolating
	// MotionCollided means a bounce is playing; input is ignored.
	MotionCollided
)

// String returns the phase name.
func (p MotionPhase) String() string {
	switch p {
	case MotionSettled:
		return "settled"
	case MotionInterpolating:
		return "interpolating"
	case MotionCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// snapDistance is how close, in world units, counts as arrived.
const snapDistance = 0.1

// Motion holds the head's animation state.
type Motion struct {
	Phase    MotionPhase
	Bounce   grid.Travel // direction of the bounce while Collided
	Progress float64     // bounce angle in radians, 0..π
	Startled bool        // bounce was caused by a cancelled inflate
}

// Expansion phases, derived from the head flag and the segment offsets.
type ExpansionPhase uint8

const (
	Contracted ExpansionPhase = iota
	Extending
	Extended
	Retracting
)

// String returns the phase name.
func (p ExpansionPhase) String() string {
	switch p {
	case Contracted:
		return "contracted"
	case Extending:
		return "extending"
	case Extended:
		return "extended"
	case Retracting:
		return "retracting"
	default:
		return "unknown"
	}
}

// bounce starts a bounce animation toward travel.
func (e *Engine) bounce(travel grid.Travel, startled bool) {
	e.motion = Motion{Phase: MotionCollided, Bounce: travel, Startled: startled}
	e.avatar.Head.Pos = grid.ToWorld(e.avatar.Head.Tile)
}

// tickMotion advances the head animation. It returns true when the head is
// settled and may accept a move this tick.
func (e *Engine) tickMotion(dt float64) bool {
	head := &e.avatar.Head
	target := grid.ToWorld(head.Tile)

	switch e.motion.Phase {
	case MotionCollided:
		e.motion.Progress += e.tuning.BounceSpeed * dt
		if e.motion.Progress > math.Pi {
			e.motion = Motion{Phase: MotionSettled}
			head.Pos = target
			return false
		}
		head.Pos = target.Add(e.motion.Bounce.HalfWorld().Scale(math.Sin(e.motion.Progress)))
		return false

	case MotionInterpolating:
		diff := target.Sub(head.Pos)
		dist := math.Hypot(diff.X, diff.Y)
		step := grid.TileSize / e.tuning.SecondsPerTile * dt
		if dist-step < snapDistance {
			head.Pos = target
			e.motion.Phase = MotionSettled
			return false
		}
		head.Pos = head.Pos.Add(diff.Scale(step / dist))
		return false
	}

	head.Pos = target
	return true
}
