// Package config provides YAML-based tuning for the boxfish game:
// animation speeds, rank thresholds, audio, display settings and colors.
package config

import (
	"github.com/vovakirdan/boxfish/internal/boxfish"
	"github.com/vovakirdan/boxfish/internal/core"
)

// Config contains all configuration for the game.
type Config struct {
	Movement MovementConfig `yaml:"movement"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Audio    AudioConfig    `yaml:"audio"`
	Display  DisplayConfig  `yaml:"display"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// MovementConfig defines the boxfish animation speeds.
type MovementConfig struct {
	SecondsPerTile       float64 `yaml:"seconds_per_tile"`
	ShrinkSecondsPerTile float64 `yaml:"shrink_seconds_per_tile"`
	BounceSpeed          float64 `yaml:"bounce_speed"` // radians per second
}

// Tuning converts the movement settings for the engine.
func (m MovementConfig) Tuning() boxfish.Tuning {
	return boxfish.Tuning{
		SecondsPerTile:       m.SecondsPerTile,
		ShrinkSecondsPerTile: m.ShrinkSecondsPerTile,
		BounceSpeed:          m.BounceSpeed,
	}
}

// ScoringConfig defines how a finished run is ranked.
type ScoringConfig struct {
	Ranks    []RankThreshold `yaml:"ranks"`    // checked in order
	Fallback string          `yaml:"fallback"` // rank when no threshold matches
}

// RankThreshold awards Rank to runs finished in fewer than Below steps.
type RankThreshold struct {
	Rank  string `yaml:"rank"`
	Below int    `yaml:"below"`
}

// AudioConfig defines the sound effect settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DisplayConfig defines presentation timings.
type DisplayConfig struct {
	FPS               int     `yaml:"fps"`
	HighlightSeconds  float64 `yaml:"highlight_seconds"`   // gate mismatch flash
	ClearDelaySeconds float64 `yaml:"clear_delay_seconds"` // pause on a cleared stage
}

// ThemeConfig overrides the colors of individual screen roles.
// Keys are role names such as "wall" or "head_inflated"; values are ANSI
// codes ("208") or hex colors ("#ff8800").
type ThemeConfig struct {
	Colors map[string]string `yaml:"colors"`
}

// Palette returns the default palette with the theme's overrides applied.
// Unknown role names are ignored.
func (t ThemeConfig) Palette() core.Palette {
	overrides := make(core.Palette, len(t.Colors))
	for name, value := range t.Colors {
		if c, ok := core.ParseColor(name); ok {
			overrides[c] = value
		}
	}
	return core.DefaultPalette().With(overrides)
}
