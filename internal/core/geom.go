// Package core provides fundamental types and utilities for the arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in real-valued canvas pixels.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new real-valued rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// ContainsStrict reports whether (x, y) lies strictly inside the rectangle.
// Points on any edge are outside.
func (r RectF) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Viewport maps a canvas of logical pixels onto a grid of cells.
type Viewport struct {
	CanvasW, CanvasH float64 // Logical canvas size in pixels
	Cols, Rows       int     // Destination size in cells
}

// ScaleX returns cells per pixel horizontally.
func (v Viewport) ScaleX() float64 {
	if v.CanvasW <= 0 {
		return 0
	}
	return float64(v.Cols) / v.CanvasW
}

// ScaleY returns cells per pixel vertically.
func (v Viewport) ScaleY() float64 {
	if v.CanvasH <= 0 {
		return 0
	}
	return float64(v.Rows) / v.CanvasH
}

// ToCells converts a pixel rectangle into the cell rectangle that covers it.
// Edges are snapped with floor/ceil so that adjacent pixel boxes separated by
// padding stay separated when the scale allows it.
func (v Viewport) ToCells(r RectF) Rect {
	x0 := int(math.Floor(v.colOf(r.X)))
	y0 := int(math.Floor(v.rowOf(r.Y)))
	x1 := int(math.Ceil(v.colOf(r.Right())))
	y1 := int(math.Ceil(v.rowOf(r.Bottom())))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ToCell converts a pixel point into the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(v.colOf(x))), int(math.Floor(v.rowOf(y)))
}

// colOf and rowOf multiply before dividing so that pixel edges landing
// exactly on a cell boundary are not pushed over it by rounding.
func (v Viewport) colOf(x float64) float64 {
	if v.CanvasW <= 0 {
		return 0
	}
	return x * float64(v.Cols) / v.CanvasW
}

func (v Viewport) rowOf(y float64) float64 {
	if v.CanvasH <= 0 {
		return 0
	}
	return y * float64(v.Rows) / v.CanvasH
}

// ColToPixel converts a cell column to the pixel x at its left edge.
func (v Viewport) ColToPixel(col int) float64 {
	if v.Cols <= 0 {
		return 0
	}
	return float64(col) * v.CanvasW / float64(v.Cols)
}

// RowToPixel converts a cell row to the pixel y at its top edge.
func (v Viewport) RowToPixel(row int) float64 {
	if v.Rows <= 0 {
		return 0
	}
	return float64(row) * v.CanvasH / float64(v.Rows)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
