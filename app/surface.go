package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"topo-field/canvas"
)

// Screen adapts an ebiten image to the field's drawing commands. The canvas
// package must not import ebiten.
type Screen struct {
	Img *ebiten.Image
}

func (s Screen) Clear(bg color.Color) {
	s.Img.Fill(bg)
}

func (s Screen) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.Img, float32(x), float32(y), float32(r), clr, true)
}

func (s Screen) GlowCircle(x, y, r, blur float64, clr color.Color) {
	for _, ring := range canvas.GlowRings(r, blur, clr) {
		vector.DrawFilledCircle(s.Img, float32(x), float32(y), float32(ring.Radius), ring.Color, true)
	}
	s.FillCircle(x, y, r, clr)
}

func (s Screen) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(s.Img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}
