package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"topo-field/canvas"
)

// Cell size in canvas units. Terminal cells are roughly twice as tall as
// wide, so a terminal of c×r cells becomes a (c*CellWidth)×(r*CellHeight)
// canvas and keeps node density comparable to a window.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const (
	runeEdge   = '·'
	runeNode   = '•'
	runePacket = '●'
)

// Surface renders drawing commands as glyphs on a tcell screen.
type Surface struct {
	Screen tcell.Screen
	View   canvas.Viewport
	BG     color.RGBA
}

func NewSurface(s tcell.Screen, cols, rows int, bg color.RGBA) *Surface {
	return &Surface{
		Screen: s,
		View: canvas.Viewport{
			Width:  float64(cols) * CellWidth,
			Height: float64(rows) * CellHeight,
			Cols:   cols,
			Rows:   rows,
		},
		BG: bg,
	}
}

// Clear paints every cell with the background color.
func (s *Surface) Clear() {
	style := tcell.StyleDefault.Background(s.rgb(s.BG))
	for row := 0; row < s.View.Rows; row++ {
		for col := 0; col < s.View.Cols; col++ {
			s.Screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *Surface) FillCircle(x, y, r float64, clr color.Color) {
	s.plot(x, y, runeNode, clr)
}

func (s *Surface) GlowCircle(x, y, r, blur float64, clr color.Color) {
	s.plot(x, y, runePacket, clr)
}

// StrokeLine samples the segment once per cell it crosses.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	c1, r1 := s.View.CanvasToCell(x1, y1)
	c2, r2 := s.View.CanvasToCell(x2, y2)
	steps := int(math.Max(math.Abs(float64(c2-c1)), math.Abs(float64(r2-r1))))
	if steps == 0 {
		return
	}
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(x1+(x2-x1)*t, y1+(y2-y1)*t, runeEdge, clr)
	}
}

func (s *Surface) plot(x, y float64, ch rune, clr color.Color) {
	col, row := s.View.CanvasToCell(x, y)
	if !s.View.Contains(col, row) {
		return
	}
	style := tcell.StyleDefault.
		Background(s.rgb(s.BG)).
		Foreground(s.rgb(blend(clr, s.BG)))
	s.Screen.SetContent(col, row, ch, nil, style)
}

func (s *Surface) rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend composites clr over an opaque background.
func blend(clr color.Color, bg color.RGBA) color.RGBA {
	r, g, b, a := clr.RGBA()
	inv := 0xffff - a
	mix := func(fg uint32, back uint8) uint8 {
		return uint8((fg + uint32(back)*0x101*inv/0xffff) >> 8)
	}
	return color.RGBA{R: mix(r, bg.R), G: mix(g, bg.G), B: mix(b, bg.B), A: 255}
}
