package breakout

import "github.com/vovakirdan/arcade-vanilla/internal/core"

// Autopilot plays the game through the InputAdapter by holding the key that
// moves the paddle toward the ball. Offset shifts the aim point off the
// paddle center, which changes rebound angles between runs.
type Autopilot struct {
	Offset float64
	held   core.Key
}

// NewAutopilot creates an autopilot aiming offset pixels right of center.
func NewAutopilot(offset float64) *Autopilot {
	return &Autopilot{Offset: offset}
}

// Steer queues the key changes needed for the next tick.
func (a *Autopilot) Steer(w *World, in *InputAdapter) {
	p := w.Paddle()
	aim := core.ClampF(a.Offset, -p.Width/2+1, p.Width/2-1)
	target := w.Ball().X - aim
	center := p.X + p.Width/2
	deadZone := w.cfg.Paddle.Speed

	want := core.KeyNone
	switch {
	case center < target-deadZone:
		want = core.KeyRight
	case center > target+deadZone:
		want = core.KeyLeft
	}
	if want == a.held {
		return
	}

	if a.held != core.KeyNone {
		in.OnKeyUp(a.held.String())
	}
	if want != core.KeyNone {
		in.OnKeyDown(want.String())
	}
	a.held = want
}
