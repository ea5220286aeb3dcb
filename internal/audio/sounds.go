package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound is a game sound cue.
type Sound int

const (
	SoundBump       Sound = iota // move blocked by a wall or gate
	SoundMismatch                // equal gate refused the bits
	SoundStartled                // inflate cancelled by a wall
	SoundInflate                 // started inflating
	SoundDeflate                 // started deflating
	SoundUndo                    // stepped back
	SoundStageClear              // reached a goal
	SoundGameClear               // finished the campaign
	soundCount
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundBump:
		return "bump"
	case SoundMismatch:
		return "mismatch"
	case SoundStartled:
		return "startled"
	case SoundInflate:
		return "inflate"
	case SoundDeflate:
		return "deflate"
	case SoundUndo:
		return "undo"
	case SoundStageClear:
		return "stage_clear"
	case SoundGameClear:
		return "game_clear"
	default:
		return "unknown"
	}
}

// note is one shaped tone within a cue.
type note struct {
	wave     Wave
	from, to float64
	d        time.Duration
	gain     float64
}

// cues describes every sound as a sequence of notes.
var cues = [soundCount][]note{
	SoundBump:     {{WaveTriangle, 110, 70, 90 * time.Millisecond, 0.8}},
	SoundMismatch: {{WaveSquare, 196, 196, 80 * time.Millisecond, 0.35}, {WaveSquare, 147, 147, 140 * time.Millisecond, 0.35}},
	SoundStartled: {{WaveSine, 880, 1320, 120 * time.Millisecond, 0.5}},
	SoundInflate:  {{WaveSine, 330, 520, 100 * time.Millisecond, 0.4}},
	SoundDeflate:  {{WaveSine, 520, 330, 100 * time.Millisecond, 0.4}},
	SoundUndo:     {{WaveTriangle, 660, 440, 70 * time.Millisecond, 0.5}},
	SoundStageClear: {
		{WaveSine, 784, 784, 110 * time.Millisecond, 0.6},
		{WaveSine, 1047, 1047, 220 * time.Millisecond, 0.6},
	},
	SoundGameClear: {
		{WaveSquare, 523, 523, 120 * time.Millisecond, 0.3},
		{WaveSquare, 659, 659, 120 * time.Millisecond, 0.3},
		{WaveSquare, 784, 784, 120 * time.Millisecond, 0.3},
		{WaveSquare, 1047, 1047, 360 * time.Millisecond, 0.3},
	},
}

// Duration returns the length of a cue.
func (s Sound) Duration() time.Duration {
	if s < 0 || s >= soundCount {
		return 0
	}
	var d time.Duration
	for _, n := range cues[s] {
		d += n.d
	}
	return d
}

// Streamer builds a fresh streamer for the cue at the given volume.
// It returns nil for an unknown cue.
func (s Sound) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	if s < 0 || s >= soundCount {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(cues[s]))
	for _, n := range cues[s] {
		osc := Tone(rate, n.wave, n.from, n.to, n.d)
		shaped := Envelope(osc, rate, n.d, 5*time.Millisecond, n.d/3)
		parts = append(parts, withVolume(shaped, n.gain))
	}
	return withVolume(beep.Seq(parts...), volume)
}
