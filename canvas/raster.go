package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xvector "golang.org/x/image/vector"
)

// Raster draws into an in-memory RGBA image. It is used for headless
// snapshots and screenshots outside a window.
type Raster struct {
	Img *image.RGBA
	z   *xvector.Rasterizer
}

func NewRaster(width, height int) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Raster{
		Img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   xvector.NewRasterizer(width, height),
	}
}

func (r *Raster) Clear(bg color.Color) {
	draw.Draw(r.Img, r.Img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (r *Raster) FillCircle(x, y, rad float64, clr color.Color) {
	r.begin()
	segments := int(math.Max(12, rad*6))
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		px := float32(x + rad*math.Cos(a))
		py := float32(y + rad*math.Sin(a))
		if i == 0 {
			r.z.MoveTo(px, py)
		} else {
			r.z.LineTo(px, py)
		}
	}
	r.z.ClosePath()
	r.paint(clr)
}

func (r *Raster) GlowCircle(x, y, rad, blur float64, clr color.Color) {
	for _, ring := range GlowRings(rad, blur, clr) {
		r.FillCircle(x, y, ring.Radius, ring.Color)
	}
	r.FillCircle(x, y, rad, clr)
}

func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Offset perpendicular to the segment by half the width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	r.begin()
	r.z.MoveTo(float32(x1+nx), float32(y1+ny))
	r.z.LineTo(float32(x2+nx), float32(y2+ny))
	r.z.LineTo(float32(x2-nx), float32(y2-ny))
	r.z.LineTo(float32(x1-nx), float32(y1-ny))
	r.z.ClosePath()
	r.paint(clr)
}

func (r *Raster) begin() {
	b := r.Img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *Raster) paint(clr color.Color) {
	r.z.Draw(r.Img, r.Img.Bounds(), image.NewUniform(clr), image.Point{})
}

func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.Img)
}

func (r *Raster) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	if err := r.WritePNG(f); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
