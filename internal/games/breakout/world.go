// Package breakout implements a single-screen Breakout game: a ball bounces
// around a fixed canvas, the player's paddle deflects it, and a grid of bricks
// is destroyed on contact.
//
// The package is host-independent. A World holds all mutable state, Step
// advances it by one frame, Render paints it into a core.Screen, and a Driver
// runs the frame loop until the game is won or lost.
package breakout

import (
	"github.com/vovakirdan/arcade-vanilla/internal/config"
	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// BrickStatus is the life state of a brick.
type BrickStatus int

const (
	BrickAlive     BrickStatus = iota // Still on the board
	BrickDestroyed                    // Hit once, gone for good
)

// String returns a human-readable name for the status.
func (s BrickStatus) String() string {
	if s == BrickDestroyed {
		return "destroyed"
	}
	return "alive"
}

// Brick is one cell of the brick grid.
type Brick struct {
	X, Y   float64 // Top-left corner, fixed at construction
	Status BrickStatus
}

// Alive reports whether the brick can still be hit.
func (b Brick) Alive() bool {
	return b.Status == BrickAlive
}

// Ball is the ball state in canvas pixels. X and Y are the top-left corner
// of the sprite box, which is 2*Radius wide and tall.
type Ball struct {
	X, Y   float64
	DX, DY float64 // Velocity per frame
	Radius float64
}

// Move applies velocity to position.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Box returns the sprite box of the ball.
func (b Ball) Box() core.RectF {
	return core.NewRectF(b.X, b.Y, 2*b.Radius, 2*b.Radius)
}

// Paddle is the player's paddle. Y is fixed at the canvas bottom.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Spans reports whether x lies strictly between the paddle edges.
func (p Paddle) Spans(x float64) bool {
	return x > p.X && x < p.X+p.Width
}

// Intent is the player's held movement keys.
type Intent struct {
	Left  bool
	Right bool
}

// World is the complete mutable game state. Only Step and the input drain
// mutate it; Render reads it.
type World struct {
	cfg config.BreakoutConfig

	ball   Ball
	paddle Paddle
	bricks [][]Brick // [column][row]
	intent Intent

	score     int
	lives     int
	destroyed int
	tick      uint64

	events []Event // Reused per frame by Step
}

// NewWorld builds the initial state from a configuration.
// The brick grid is laid out once here and never resized.
func NewWorld(cfg config.BreakoutConfig) *World {
	w := &World{
		cfg:   cfg,
		lives: cfg.Gameplay.Lives,
	}

	w.bricks = make([][]Brick, cfg.Bricks.Columns)
	for c := range cfg.Bricks.Columns {
		w.bricks[c] = make([]Brick, cfg.Bricks.Rows)
		for r := range cfg.Bricks.Rows {
			w.bricks[c][r] = Brick{
				X:      float64(c)*(cfg.Bricks.Width+cfg.Bricks.Padding) + cfg.Bricks.OffsetLeft,
				Y:      float64(r)*(cfg.Bricks.Height+cfg.Bricks.Padding) + cfg.Bricks.OffsetTop,
				Status: BrickAlive,
			}
		}
	}

	w.paddle = Paddle{
		Y:      cfg.Canvas.Height - cfg.Paddle.Height,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
	w.ball.Radius = cfg.Ball.Radius
	w.serve()

	return w
}

// serve puts the ball at its start position with the default velocity
// and recenters the paddle.
func (w *World) serve() {
	w.ball.X = w.cfg.Canvas.Width / 2
	w.ball.Y = w.cfg.Canvas.Height - w.cfg.Ball.StartOffsetY
	w.ball.DX = w.cfg.Ball.SpeedX
	w.ball.DY = w.cfg.Ball.SpeedY
	w.paddle.X = (w.cfg.Canvas.Width - w.paddle.Width) / 2
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.BreakoutConfig { return w.cfg }

// Ball returns a copy of the ball state.
func (w *World) Ball() Ball { return w.ball }

// Paddle returns a copy of the paddle state.
func (w *World) Paddle() Paddle { return w.paddle }

// Intent returns the held movement keys.
func (w *World) Intent() Intent { return w.intent }

// Score returns the number of bricks destroyed so far.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Tick returns the number of frames stepped.
func (w *World) Tick() uint64 { return w.tick }

// TotalBricks returns the size of the grid.
func (w *World) TotalBricks() int { return w.cfg.Bricks.Total() }

// DestroyedCount returns how many bricks have been destroyed.
func (w *World) DestroyedCount() int { return w.destroyed }

// Columns returns the number of brick columns.
func (w *World) Columns() int { return len(w.bricks) }

// Rows returns the number of brick rows.
func (w *World) Rows() int {
	if len(w.bricks) == 0 {
		return 0
	}
	return len(w.bricks[0])
}

// Bricks returns a copy of the brick grid indexed [column][row].
func (w *World) Bricks() [][]Brick {
	out := make([][]Brick, len(w.bricks))
	for c := range w.bricks {
		out[c] = append([]Brick(nil), w.bricks[c]...)
	}
	return out
}

// Brick returns a copy of the brick at column c, row r.
func (w *World) Brick(c, r int) Brick { return w.bricks[c][r] }

// BrickBox returns the rectangle covered by the brick at column c, row r.
func (w *World) BrickBox(c, r int) core.RectF {
	b := w.bricks[c][r]
	return core.NewRectF(b.X, b.Y, w.cfg.Bricks.Width, w.cfg.Bricks.Height)
}

// paddleBounds returns the range the paddle's left edge may occupy.
func (w *World) paddleBounds() (float64, float64) {
	inset := w.cfg.Paddle.Inset
	return inset, w.cfg.Canvas.Width - w.paddle.Width - inset
}

// setKey updates the held state of a movement key.
func (w *World) setKey(k core.Key, down bool) {
	switch k {
	case core.KeyLeft:
		w.intent.Left = down
	case core.KeyRight:
		w.intent.Right = down
	}
}

// pointerTo moves the paddle so that its center follows a pointer.
// clientX is the pointer position in host coordinates and offsetLeft the
// distance from the host origin to the canvas left edge, both in pixels.
func (w *World) pointerTo(clientX, offsetLeft float64) {
	half := w.paddle.Width / 2
	target := clientX - offsetLeft + w.ball.Radius
	lo, hi := half, w.cfg.Canvas.Width-half

	if target <= lo || target >= hi {
		if w.cfg.Input.PointerEdge != config.PointerEdgeClamp {
			return
		}
		target = core.ClampF(target, lo, hi)
	}

	minX, maxX := w.paddleBounds()
	w.paddle.X = core.ClampF(target-half, minX, maxX)
}
