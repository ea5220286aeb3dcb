package boxfish

import "github.com/vovakirdan/boxfish/internal/grid"

// Event is something the engine wants the outside world to know about.
// Events are queued during Tick and collected with Engine.Drain.
type Event interface {
	event()
}

// EventMoved is emitted for every committed move.
type EventMoved struct {
	Travel grid.Travel
	From   grid.TileCoord
	To     grid.TileCoord
}

// EventCollided is emitted when a move is blocked by geometry.
type EventCollided struct {
	Travel grid.Travel
}

// EventGateMismatch is emitted when an EQUAL gate vetoes a move. At is the
// first disagreeing gate in register order, then route order.
type EventGateMismatch struct {
	At     grid.TileCoord
	Travel grid.Travel
}

// EventStartled is emitted when inflating was cancelled by a wall.
type EventStartled struct{}

// EventUndone is emitted when an undo restored anything.
type EventUndone struct {
	To grid.TileCoord
}

// EventInflated is emitted when the boxfish starts to inflate or deflate.
type EventInflated struct {
	Expanding bool
}

func (EventMoved) event()        {}
func (EventCollided) event()     {}
func (EventGateMismatch) event() {}
func (EventStartled) event()     {}
func (EventUndone) event()       {}
func (EventInflated) event()     {}
