// Package audio plays short synthesized sound cues for game events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a sound.
type Cue int

const (
	CueBrick Cue = iota
	CueWall
	CuePaddle
	CueLifeLost
	CueWin
	CueLose
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueBrick:
		return "brick"
	case CueWall:
		return "wall"
	case CuePaddle:
		return "paddle"
	case CueLifeLost:
		return "life_lost"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// note is one tone of a cue. A non-zero overtone is mixed in at a third
// of the volume.
type note struct {
	freq     float64
	overtone float64
	dur      time.Duration
}

var cueNotes = map[Cue][]note{
	CueBrick:  {{freq: 660, dur: 40 * time.Millisecond}},
	CueWall:   {{freq: 330, dur: 30 * time.Millisecond}},
	CuePaddle: {{freq: 440, dur: 40 * time.Millisecond}},
	CueLifeLost: {
		{freq: 330, dur: 120 * time.Millisecond},
		{freq: 220, dur: 180 * time.Millisecond},
	},
	CueWin: {
		{freq: 523.25, dur: 120 * time.Millisecond},
		{freq: 659.25, dur: 120 * time.Millisecond},
		{freq: 783.99, dur: 120 * time.Millisecond},
		{freq: 1046.5, overtone: 2093, dur: 240 * time.Millisecond},
	},
	CueLose: {
		{freq: 392, dur: 150 * time.Millisecond},
		{freq: 329.63, dur: 150 * time.Millisecond},
		{freq: 261.63, dur: 150 * time.Millisecond},
		{freq: 196, overtone: 98, dur: 300 * time.Millisecond},
	},
}

// Duration returns the total length of a cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// Build synthesizes the streamer for a cue at the given sample rate and
// volume (0.0 - 1.0).
func Build(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(sr, n)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %s: %w", c, err)
		}
		parts = append(parts, s)
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

func tone(sr beep.SampleRate, n note) (beep.Streamer, error) {
	samples := sr.N(n.dur)
	fund, err := generators.SineTone(sr, n.freq)
	if err != nil {
		return nil, err
	}
	if n.overtone == 0 {
		return beep.Take(samples, fund), nil
	}

	over, err := generators.SineTone(sr, n.overtone)
	if err != nil {
		return nil, err
	}
	return beep.Take(samples, beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)), nil
}

// newVolume scales a streamer linearly. Zero or less is silent, since
// the volume effect works on a log scale.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
