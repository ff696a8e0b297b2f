package breakout

import (
	"math"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// EventKind identifies something that happened during a Step.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota
	EventWallBounce               // Left, right or top wall
	EventPaddleHit
	EventLifeLost
	EventWin
	EventLose
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventLifeLost:
		return "life_lost"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Event is one occurrence reported by Step.
type Event struct {
	Kind   EventKind
	Column int // Brick events only
	Row    int // Brick events only
}

// StepResult is the result of advancing the world by one frame.
// Events is only valid until the next Step.
type StepResult struct {
	Outcome core.Outcome
	Events  []Event
}

// Step advances the world by one frame. A non-None outcome is terminal;
// the caller must not step the world again.
func Step(w *World) StepResult {
	w.tick++
	w.events = w.events[:0]

	if w.collideBricks() {
		w.emit(Event{Kind: EventWin})
		return StepResult{Outcome: core.OutcomeWin, Events: w.events}
	}

	if w.bounceWalls() {
		w.emit(Event{Kind: EventLose})
		return StepResult{Outcome: core.OutcomeLose, Events: w.events}
	}

	w.ball.Move()
	w.movePaddle()

	return StepResult{Outcome: core.OutcomeNone, Events: w.events}
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// collideBricks tests the ball's top-left corner against every alive brick,
// column by column. Each hit reverses dy, so two hits in one frame cancel out.
// It reports whether the last brick was destroyed.
func (w *World) collideBricks() bool {
	total := w.TotalBricks()
	for c := range w.bricks {
		for r := range w.bricks[c] {
			if !w.bricks[c][r].Alive() {
				continue
			}
			if !w.BrickBox(c, r).ContainsStrict(w.ball.X, w.ball.Y) {
				continue
			}
			w.ball.BounceY()
			w.bricks[c][r].Status = BrickDestroyed
			w.destroyed++
			w.score++
			w.emit(Event{Kind: EventBrickDestroyed, Column: c, Row: r})
		}
	}
	return w.destroyed == total
}

// bounceWalls reflects the ball off the side and top walls and resolves the
// bottom edge against the paddle. It reports whether the last life was lost.
func (w *World) bounceWalls() bool {
	size := 2 * w.ball.Radius
	nextX := w.ball.X + w.ball.DX
	nextY := w.ball.Y + w.ball.DY

	if nextX > w.cfg.Canvas.Width-size || nextX < 0 {
		w.ball.BounceX()
		w.emit(Event{Kind: EventWallBounce})
	}

	switch {
	case nextY < 0:
		w.ball.BounceY()
		w.emit(Event{Kind: EventWallBounce})
	case nextY > w.cfg.Canvas.Height-size:
		if w.paddle.Spans(w.ball.X) {
			f := w.cfg.Physics.BounceFactor
			w.ball.DY = w.capSpeed(-w.ball.DY * f)
			w.ball.DX = w.capSpeed(w.ball.DX * f)
			w.emit(Event{Kind: EventPaddleHit})
			return false
		}
		if w.lives > 0 {
			w.lives--
		}
		w.emit(Event{Kind: EventLifeLost})
		if w.lives == 0 {
			return true
		}
		w.serve()
	}
	return false
}

// capSpeed limits one velocity component to physics.max_speed, keeping its sign.
func (w *World) capSpeed(v float64) float64 {
	limit := w.cfg.Physics.MaxSpeed
	if limit <= 0 || math.Abs(v) <= limit {
		return v
	}
	return math.Copysign(limit, v)
}

// movePaddle applies held keys. Right wins when both are held.
func (w *World) movePaddle() {
	minX, maxX := w.paddleBounds()
	speed := w.cfg.Paddle.Speed
	switch {
	case w.intent.Right:
		w.paddle.X = math.Min(w.paddle.X+speed, maxX)
	case w.intent.Left:
		w.paddle.X = math.Max(w.paddle.X-speed, minX)
	}
}
