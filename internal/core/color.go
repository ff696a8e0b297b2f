package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorLime // #caf045, the default drawing color of paddle and HUD
)

// RGB is an 8-bit per channel color value.
type RGB struct {
	R, G, B uint8
}

// palette holds the reference RGB value of every named color.
// ColorDefault is not listed: it means "terminal foreground".
var palette = map[Color]RGB{
	ColorRed:     {0xcd, 0x31, 0x31},
	ColorGreen:   {0x0d, 0xbc, 0x79},
	ColorYellow:  {0xe5, 0xe5, 0x10},
	ColorBlue:    {0x24, 0x72, 0xc8},
	ColorMagenta: {0xbc, 0x3f, 0xbc},
	ColorCyan:    {0x11, 0xa8, 0xcd},
	ColorWhite:   {0xe5, 0xe5, 0xe5},
	ColorOrange:  {0xff, 0xa5, 0x00},
	ColorGray:    {0x8a, 0x8a, 0x8a},
	ColorLime:    {0xca, 0xf0, 0x45},
}

// Hex returns the "#rrggbb" form of a named color, or "" for ColorDefault.
func (c Color) Hex() string {
	rgb, ok := palette[c]
	if !ok {
		return ""
	}
	const digits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{rgb.R, rgb.G, rgb.B} {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0f]
	}
	return string(buf)
}

// NearestColor maps an arbitrary RGB value to the closest named color
// using squared euclidean distance.
func NearestColor(c RGB) Color {
	best := ColorWhite
	bestDist := -1
	// Iterate in a fixed order so ties resolve deterministically.
	for col := ColorRed; col <= ColorLime; col++ {
		ref := palette[col]
		dr := int(c.R) - int(ref.R)
		dg := int(c.G) - int(ref.G)
		db := int(c.B) - int(ref.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best = col
			bestDist = dist
		}
	}
	return best
}
