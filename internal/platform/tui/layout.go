package tui

import "github.com/vovakirdan/arcade-vanilla/internal/core"

// Layout constants
const (
	cellAspect = 2.0 // Terminal cells are about twice as tall as wide
	helpLines  = 1   // Help bar below the playfield
	minCols    = 30
	minRows    = 10

	buttonW = 11
	buttonH = 3
)

// layout places the playfield on the terminal. The playfield keeps the
// canvas aspect ratio and is centered horizontally.
type layout struct {
	originX int // Column of the playfield's left edge
	cols    int
	rows    int
}

func computeLayout(width, height int, canvasW, canvasH float64) layout {
	avail := height - helpLines
	if width <= 0 || avail <= 0 || canvasW <= 0 || canvasH <= 0 {
		return layout{}
	}

	ratio := canvasW / canvasH * cellAspect
	cols := width
	rows := int(float64(cols) / ratio)
	if rows > avail {
		rows = avail
		cols = int(float64(rows) * ratio)
	}
	return layout{
		originX: (width - cols) / 2,
		cols:    cols,
		rows:    rows,
	}
}

func (l layout) tooSmall() bool {
	return l.cols < minCols || l.rows < minRows
}

// pixelsPerCol returns how many canvas pixels one column covers.
func (l layout) pixelsPerCol(canvasW float64) float64 {
	if l.cols <= 0 {
		return 0
	}
	return canvasW / float64(l.cols)
}

// pointer converts a terminal column into the pointer position and canvas
// offset the game expects, both in canvas pixels.
func (l layout) pointer(x int, canvasW float64) (clientX, offsetLeft float64) {
	ppc := l.pixelsPerCol(canvasW)
	return (float64(x) + 0.5) * ppc, float64(l.originX) * ppc
}

// button returns the start button rectangle in playfield cells.
func (l layout) button() core.Rect {
	return core.NewRect((l.cols-buttonW)/2, l.rows/2-1, buttonW, buttonH)
}

// hitsButton reports whether terminal position (x, y) is on the button.
func (l layout) hitsButton(x, y int) bool {
	return l.button().Contains(x-l.originX, y)
}
