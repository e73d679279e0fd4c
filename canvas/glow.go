package canvas

import (
	"image/color"
	"math"
)

// Ring is one translucent halo circle of a glow.
type Ring struct {
	Radius float64
	Color  color.NRGBA
}

const glowRings = 4

// GlowRings approximates a canvas shadow blur as concentric halos fading
// outward from r to r+blur. Rings are ordered outermost first.
func GlowRings(r, blur float64, clr color.Color) []Ring {
	if blur <= 0 {
		return nil
	}
	base := color.NRGBAModel.Convert(clr).(color.NRGBA)
	rings := make([]Ring, 0, glowRings)
	for i := glowRings; i >= 1; i-- {
		t := float64(i) / glowRings
		a := float64(base.A) * 0.35 * (1 - t*0.8)
		rings = append(rings, Ring{
			Radius: r + blur*t,
			Color:  color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(math.Round(a))},
		})
	}
	return rings
}
