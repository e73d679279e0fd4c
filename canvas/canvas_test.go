package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"topo-field/field"
	"topo-field/theme"
)

var _ field.Surface = (*Raster)(nil)

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(40, 40)
	r.Clear(color.Black)
	r.FillCircle(20, 20, 5, color.RGBA{255, 0, 0, 255})

	if c := r.Img.RGBAAt(20, 20); c.R != 255 || c.G != 0 {
		t.Errorf("Expected red center, got %v", c)
	}
	if c := r.Img.RGBAAt(2, 2); c.R != 0 {
		t.Errorf("Expected untouched corner, got %v", c)
	}
}

func TestRasterStrokeLine(t *testing.T) {
	r := NewRaster(50, 20)
	r.Clear(color.Black)
	r.StrokeLine(5, 10, 45, 10, 2, color.RGBA{0, 255, 0, 255})

	if c := r.Img.RGBAAt(25, 10); c.G == 0 {
		t.Errorf("Expected green on the line, got %v", c)
	}
	if c := r.Img.RGBAAt(25, 2); c.G != 0 {
		t.Errorf("Expected black off the line, got %v", c)
	}

	// Degenerate segments draw nothing.
	r.StrokeLine(1, 1, 1, 1, 2, color.White)
}

func TestRasterClipsOutOfBounds(t *testing.T) {
	r := NewRaster(10, 10)
	r.FillCircle(-5, -5, 8, color.White)
	r.StrokeLine(-20, 5, 30, 5, 1, color.White)
	r.GlowCircle(12, 12, 3, 5, color.White)
}

func TestRasterPNG(t *testing.T) {
	r := NewRaster(0, 0)
	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("Expected 1x1 minimum image, got %v", b)
	}
}

func TestRasterDrawsField(t *testing.T) {
	pal := theme.Refresh("#64ffda", theme.Dark)
	f := field.New(field.NewRand(4), pal)
	f.Initialize(300, 200)

	r := NewRaster(300, 200)
	r.Clear(color.Black)
	f.Step(r)

	for _, n := range f.Nodes {
		x, y := int(n.X), int(n.Y)
		if x < 1 || y < 1 || x >= 299 || y >= 199 {
			continue
		}
		if c := r.Img.RGBAAt(x, y); c.G == 0 {
			t.Errorf("Expected node pixel at (%d,%d), got %v", x, y, c)
		}
	}
}

func TestGlowRings(t *testing.T) {
	rings := GlowRings(2.5, 5, theme.Color{R: 10, G: 20, B: 30, A: 1})
	if len(rings) != 4 {
		t.Fatalf("Expected 4 rings, got %d", len(rings))
	}
	if rings[0].Radius != 7.5 {
		t.Errorf("Expected outermost ring at 7.5, got %v", rings[0].Radius)
	}
	for i := 1; i < len(rings); i++ {
		if rings[i].Radius >= rings[i-1].Radius {
			t.Errorf("Rings not ordered outermost first: %v", rings)
		}
		if rings[i].Color.A < rings[i-1].Color.A {
			t.Errorf("Inner ring fainter than outer: %v", rings)
		}
	}
	if GlowRings(2, 0, color.White) != nil {
		t.Error("Expected no rings without blur")
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{Width: 800, Height: 400, Cols: 80, Rows: 20}

	col, row := v.CanvasToCell(405, 199)
	if col != 40 || row != 9 {
		t.Errorf("Expected cell (40,9), got (%d,%d)", col, row)
	}
	x, y := v.CellToCanvas(40, 9)
	if x != 405 || y != 190 {
		t.Errorf("Expected (405,190), got (%v,%v)", x, y)
	}
	if v.Contains(80, 0) || !v.Contains(79, 19) {
		t.Error("Contains bounds wrong")
	}
	if c, r := (Viewport{}).CanvasToCell(1, 1); c != -1 || r != -1 {
		t.Error("Empty viewport must map nowhere")
	}
}
