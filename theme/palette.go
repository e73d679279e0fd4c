package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"topo-field/config"
)

// Color is an RGB triple with a fractional alpha, matching the rgba() values
// the palette is specified in. It implements color.Color.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGBA returns alpha-premultiplied components in the 16-bit range.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) NRGBA() color.NRGBA {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Palette is an immutable snapshot of the colors used for one frame. Node and
// Edge share Packet's RGB and only differ in alpha.
type Palette struct {
	Packet Color
	Node   Color
	Edge   Color
}

// Refresh derives the palette for the given accent color and theme mode.
// Unparseable colors fall back to config.ColorFallback without error.
func Refresh(accent string, mode Mode) Palette {
	r, g, b, ok := ParseHex(accent)
	if !ok {
		r, g, b = config.ColorFallback.R, config.ColorFallback.G, config.ColorFallback.B
	}

	nodeAlpha, edgeAlpha := config.NodeAlphaDark, config.EdgeAlphaDark
	if mode == Light {
		nodeAlpha, edgeAlpha = config.NodeAlphaLight, config.EdgeAlphaLight
	}

	return Palette{
		Packet: Color{R: r, G: g, B: b, A: 1},
		Node:   Color{R: r, G: g, B: b, A: nodeAlpha},
		Edge:   Color{R: r, G: g, B: b, A: edgeAlpha},
	}
}

// ParseHex parses "#rgb" or "#rrggbb". Surrounding whitespace is ignored.
func ParseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
