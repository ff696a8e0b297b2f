package breakout

import (
	"fmt"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// Glyphs used for drawing.
const (
	BlockChar = '█'
)

// Colors used for drawing.
const (
	BrickColor  = core.ColorOrange
	PaddleColor = core.ColorLime
	HUDColor    = core.ColorLime
)

// HUD text anchors in canvas pixels. The y values are text baselines.
const (
	hudFontPx float64 = 16
	scoreX    float64 = 8
	hudY      float64 = 20
	livesDX   float64 = 65 // Lives text starts this far from the right edge
)

// Render draws the world scaled onto dst. It never mutates w.
// A nil or still-loading sprite leaves the ball undrawn.
func Render(w *World, dst *core.Screen, sprite *Sprite) {
	dst.Clear()

	vp := core.Viewport{
		CanvasW: w.cfg.Canvas.Width,
		CanvasH: w.cfg.Canvas.Height,
		Cols:    dst.Width(),
		Rows:    dst.Height(),
	}

	renderBricks(w, dst, vp)
	renderBall(w, dst, vp, sprite.Bitmap())
	renderPaddle(w, dst, vp)
	renderHUD(w, dst, vp)
}

func renderBricks(w *World, dst *core.Screen, vp core.Viewport) {
	for c := range w.bricks {
		for r := range w.bricks[c] {
			if !w.bricks[c][r].Alive() {
				continue
			}
			dst.FillRect(vp.ToCells(w.BrickBox(c, r)), BlockChar, BrickColor)
		}
	}
}

// renderBall samples the bitmap at the center of every cell the ball covers.
func renderBall(w *World, dst *core.Screen, vp core.Viewport, bm *Bitmap) {
	if bm == nil {
		return
	}
	box := w.ball.Box()
	cells := vp.ToCells(box)
	halfW := vp.ColToPixel(1) / 2
	halfH := vp.RowToPixel(1) / 2

	for y := cells.Y; y < cells.Bottom(); y++ {
		v := (vp.RowToPixel(y) + halfH - box.Y) / box.H
		for x := cells.X; x < cells.Right(); x++ {
			u := (vp.ColToPixel(x) + halfW - box.X) / box.W
			if c, ok := bm.Sample(u, v); ok {
				dst.SetCell(x, y, BlockChar, c)
			}
		}
	}
}

func renderPaddle(w *World, dst *core.Screen, vp core.Viewport) {
	dst.FillRect(vp.ToCells(w.paddle.Box()), BlockChar, PaddleColor)
}

func renderHUD(w *World, dst *core.Screen, vp core.Viewport) {
	y := hudY - hudFontPx/2
	sx, sy := vp.ToCell(scoreX, y)
	dst.DrawTextColor(sx, sy, fmt.Sprintf("Score: %d", w.score), HUDColor)

	lx, ly := vp.ToCell(w.cfg.Canvas.Width-livesDX, y)
	dst.DrawTextColor(lx, ly, fmt.Sprintf("Lives: %d", w.lives), HUDColor)
}
