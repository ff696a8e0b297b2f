package breakout

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"sync/atomic"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// Bitmap is a decoded sprite reduced to the terminal palette.
type Bitmap struct {
	width, height int
	pixels        []core.Color
	opaque        []bool
}

// NewBitmap converts an image to a palette bitmap. Pixels with less than
// half alpha are transparent.
func NewBitmap(img image.Image) *Bitmap {
	b := img.Bounds()
	bm := &Bitmap{
		width:  b.Dx(),
		height: b.Dy(),
		pixels: make([]core.Color, b.Dx()*b.Dy()),
		opaque: make([]bool, b.Dx()*b.Dy()),
	}
	for y := range bm.height {
		for x := range bm.width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := y*bm.width + x
			bm.opaque[i] = c.A >= 0x80
			bm.pixels[i] = core.NearestColor(core.RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return bm
}

// Size returns the bitmap dimensions in pixels.
func (bm *Bitmap) Size() (int, int) {
	return bm.width, bm.height
}

// Sample returns the color at normalized coordinates u, v in [0, 1).
// The second result is false for transparent or out-of-range positions.
func (bm *Bitmap) Sample(u, v float64) (core.Color, bool) {
	if bm.width == 0 || bm.height == 0 || u < 0 || u >= 1 || v < 0 || v >= 1 {
		return core.ColorDefault, false
	}
	i := int(v*float64(bm.height))*bm.width + int(u*float64(bm.width))
	if !bm.opaque[i] {
		return core.ColorDefault, false
	}
	return bm.pixels[i], true
}

// discSize is the side of the built-in ball bitmap in pixels.
const discSize = 20

// discBitmap draws a filled white circle.
func discBitmap() *Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, discSize, discSize))
	r := float64(discSize) / 2
	for y := range discSize {
		for x := range discSize {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}
	return NewBitmap(img)
}

// Sprite is the ball image. It may be loaded in the background; until the
// load completes Bitmap returns nil and the ball is not drawn.
type Sprite struct {
	bitmap atomic.Pointer[Bitmap]
	done   chan struct{}
	err    error // Written before done is closed
}

// DefaultSprite returns the built-in disc, ready immediately.
func DefaultSprite() *Sprite {
	s := &Sprite{done: make(chan struct{})}
	s.bitmap.Store(discBitmap())
	close(s.done)
	return s
}

// LoadSpriteAsync starts decoding the image at path in a goroutine and
// returns at once. An empty path yields DefaultSprite. If decoding fails
// the sprite falls back to the disc and Wait reports the error.
func LoadSpriteAsync(path string) *Sprite {
	if path == "" {
		return DefaultSprite()
	}

	s := &Sprite{done: make(chan struct{})}
	go func() {
		defer close(s.done)
		bm, err := decodeFile(path)
		if err != nil {
			s.err = err
			bm = discBitmap()
		}
		s.bitmap.Store(bm)
	}()
	return s
}

func decodeFile(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode %s: %w", path, err)
	}
	return NewBitmap(img), nil
}

// Bitmap returns the decoded bitmap, or nil while loading.
func (s *Sprite) Bitmap() *Bitmap {
	if s == nil {
		return nil
	}
	return s.bitmap.Load()
}

// Ready reports whether loading has finished.
func (s *Sprite) Ready() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until loading finishes or ctx is done, and returns the
// load error, if any.
func (s *Sprite) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
