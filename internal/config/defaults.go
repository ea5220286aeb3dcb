package config

import (
	_ "embed"
)

//go:embed defaults/boxfish.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Movement: MovementConfig{
			SecondsPerTile:       0.2,
			ShrinkSecondsPerTile: 0.05,
			BounceSpeed:          6.0,
		},
		Scoring: ScoringConfig{
			Ranks: []RankThreshold{
				{Rank: "S", Below: 300},
				{Rank: "A", Below: 350},
				{Rank: "B", Below: 400},
			},
			Fallback: "C",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Display: DisplayConfig{
			FPS:               60,
			HighlightSeconds:  1.0,
			ClearDelaySeconds: 1.5,
		},
	}
}
