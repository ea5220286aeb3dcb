package config

import "math"

// Rank returns the rank earned by a run that took steps moves.
func (s ScoringConfig) Rank(steps int) string {
	for _, t := range s.Ranks {
		if steps < t.Below {
			return t.Rank
		}
	}
	if s.Fallback == "" {
		return "C"
	}
	return s.Fallback
}

// normalize fills zero or out-of-range values from the defaults.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.Movement.SecondsPerTile <= 0 {
		c.Movement.SecondsPerTile = def.Movement.SecondsPerTile
	}
	if c.Movement.ShrinkSecondsPerTile <= 0 {
		c.Movement.ShrinkSecondsPerTile = def.Movement.ShrinkSecondsPerTile
	}
	if c.Movement.BounceSpeed <= 0 {
		c.Movement.BounceSpeed = def.Movement.BounceSpeed
	}

	if len(c.Scoring.Ranks) == 0 {
		c.Scoring.Ranks = def.Scoring.Ranks
	}
	if c.Scoring.Fallback == "" {
		c.Scoring.Fallback = def.Scoring.Fallback
	}

	c.Audio.Volume = clampF(c.Audio.Volume, 0.0, 1.0)
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}

	if c.Display.FPS <= 0 {
		c.Display.FPS = def.Display.FPS
	}
	if c.Display.HighlightSeconds < 0 {
		c.Display.HighlightSeconds = 0
	}
	if c.Display.ClearDelaySeconds < 0 {
		c.Display.ClearDelaySeconds = 0
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
