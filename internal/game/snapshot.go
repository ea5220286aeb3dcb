package game

import "github.com/vovakirdan/boxfish/internal/grid"

// Phase represents the run's current state.
type Phase string

const (
	PhasePlaying    Phase = "playing"
	PhaseStageClear Phase = "stage_clear"
	PhaseWon        Phase = "won"
	PhasePaused     Phase = "paused"
)

// Snapshot captures the observable game state for tests and replays.
type Snapshot struct {
	StageID   string
	Stage     int // 1-indexed for display
	Steps     int
	Head      grid.TileCoord
	Bits      []bool
	Expanding bool
	Inflate   bool // latched toggle
	Rank      string
	Phase     Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.won:
		phase = PhaseWon
	case g.paused:
		phase = PhasePaused
	case g.stageClear:
		phase = PhaseStageClear
	}

	a := g.engine.Avatar()
	return Snapshot{
		StageID:   g.stages[g.index].ID,
		Stage:     g.index + 1,
		Steps:     g.engine.Steps(),
		Head:      a.Head.Tile,
		Bits:      a.Bits(),
		Expanding: a.Head.Expanding,
		Inflate:   g.inflate,
		Rank:      g.rank,
		Phase:     phase,
	}
}
