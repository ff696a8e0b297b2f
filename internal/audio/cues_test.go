package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/arcade-vanilla/internal/config"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute sample value.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > 10*44100 {
			t.Fatal("cue did not terminate")
		}
	}
}

func TestBuildCueLengths(t *testing.T) {
	sr := beep.SampleRate(44100)
	tests := []struct {
		cue      Cue
		expected time.Duration
	}{
		{CueBrick, 40 * time.Millisecond},
		{CueWall, 30 * time.Millisecond},
		{CuePaddle, 40 * time.Millisecond},
		{CueLifeLost, 300 * time.Millisecond},
		{CueWin, 600 * time.Millisecond},
		{CueLose, 750 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			if got := tc.cue.Duration(); got != tc.expected {
				t.Errorf("Duration() = %v, expected %v", got, tc.expected)
			}

			s, err := Build(tc.cue, sr, 0.5)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			want := 0
			for _, n := range cueNotes[tc.cue] {
				want += sr.N(n.dur)
			}
			n, peak := drain(t, s)
			if n != want {
				t.Errorf("streamed %d samples, expected %d", n, want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestBuildSilent(t *testing.T) {
	s, err := Build(CuePaddle, beep.SampleRate(44100), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("peak = %v, expected silence", peak)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(Cue(42), beep.SampleRate(44100), 1); err == nil {
		t.Error("expected error for unknown cue")
	}
	// 660 Hz cannot be represented at 800 Hz sampling.
	if _, err := Build(CueBrick, beep.SampleRate(800), 1); err == nil {
		t.Error("expected error for tone above Nyquist")
	}
}

func TestPlayerDisabled(t *testing.T) {
	var nilPlayer *Player
	nilPlayer.Play(CueWin)
	nilPlayer.Close()

	p := NewPlayer(config.DefaultBreakoutConfig().Sound)
	p.Play(CueBrick) // Not initialized: no-op
	p.Close()

	if p.initialized {
		t.Error("player should not be initialized without Init")
	}
}
