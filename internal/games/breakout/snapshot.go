package breakout

import "math"

// Snapshot is a flat copy of the world state, used for determinism checks
// and by the simulate command.
type Snapshot struct {
	Tick    uint64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64
	PaddleX float64
	Score   int
	Lives   int

	// Brick states flattened column-major: col*rows + row.
	// 1 = alive, 0 = destroyed.
	BrickData []int
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	rows := w.Rows()
	brickData := make([]int, len(w.bricks)*rows)
	for c := range w.bricks {
		for r := range w.bricks[c] {
			if w.bricks[c][r].Alive() {
				brickData[c*rows+r] = 1
			}
		}
	}

	return Snapshot{
		Tick:      w.tick,
		BallX:     w.ball.X,
		BallY:     w.ball.Y,
		BallDX:    w.ball.DX,
		BallDY:    w.ball.DY,
		PaddleX:   w.paddle.X,
		Score:     w.score,
		Lives:     w.lives,
		BrickData: brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
