package boxfish

import (
	"github.com/vovakirdan/boxfish/internal/grid"
)

// tickExpansion animates the segments toward their ideals. The inflate input
// is only sampled once the whole body has arrived.
func (e *Engine) tickExpansion(inflate bool, dt float64) {
	a := e.avatar
	if a.BodySettled() {
		if e.motion.Startled {
			return
		}
		if inflate != a.Head.Expanding {
			if inflate {
				e.inflate()
			} else {
				e.deflate()
			}
		}
		return
	}

	step := dt / e.tuning.ShrinkSecondsPerTile
	for i := range a.Segments {
		s := &a.Segments[i]
		ideal := float64(s.Ideal)
		switch {
		case s.Offset < ideal:
			s.Offset += step
			if s.Offset > ideal {
				s.Offset = ideal
			}
		case s.Offset > ideal:
			s.Offset -= step
			if s.Offset < ideal {
				s.Offset = ideal
			}
		}
	}
}

// inflate stretches every segment to Index+1 tiles behind the head, stopping
// one tile short of the nearest wall behind it. If even the foremost register
// cannot move, the boxfish gets startled and stays contracted.
func (e *Engine) inflate() {
	a := e.avatar
	n := len(a.Segments)
	limit := n
	if hit, ok := e.geo.Walls.SweepFirstHit(a.Head.Tile, grid.Travel{Axis: grid.AxisX, Amount: -n}); ok {
		limit = a.Head.Tile.X - hit.X - 1
	}

	if n > 0 && a.Segments[0].expandedIdeal() > limit {
		e.logger.Debug("inflate cancelled", "head", a.Head.Tile, "limit", limit)
		e.emit(EventStartled{})
		e.bounce(grid.Left, true)
		return
	}

	a.Head.Expanding = true
	for i := range a.Segments {
		s := &a.Segments[i]
		s.Ideal = min(s.expandedIdeal(), limit)
	}
	e.emit(EventInflated{Expanding: true})
}

// deflate pulls every segment back to its resting distance.
func (e *Engine) deflate() {
	a := e.avatar
	a.Head.Expanding = false
	for i := range a.Segments {
		s := &a.Segments[i]
		s.Ideal = s.contractedIdeal()
	}
	e.emit(EventInflated{Expanding: false})
}

// Expansion returns the current inflate phase.
func (e *Engine) Expansion() ExpansionPhase {
	e.mustBeLoaded()
	settled := e.avatar.BodySettled()
	switch {
	case e.avatar.Head.Expanding && settled:
		return Extended
	case e.avatar.Head.Expanding:
		return Extending
	case settled:
		return Contracted
	default:
		return Retracting
	}
}
