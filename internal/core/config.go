package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a run.
type GameState struct {
	StageID    string // Current stage
	StageIndex int    // Zero-based position in the campaign
	Steps      int    // Committed moves this run
	Cleared    bool   // Whole campaign finished
	Rank       string // Set once Cleared
	Paused     bool
}
