package canvas

import "math"

// Viewport maps canvas coordinates onto a coarser grid of cells, such as a
// terminal, and back.
type Viewport struct {
	Width, Height float64 // canvas size
	Cols, Rows    int
}

func (v Viewport) CanvasToCell(x, y float64) (int, int) {
	if v.Width <= 0 || v.Height <= 0 {
		return -1, -1
	}
	col := int(math.Floor(x / v.Width * float64(v.Cols)))
	row := int(math.Floor(y / v.Height * float64(v.Rows)))
	return col, row
}

// CellToCanvas returns the canvas position of a cell's center.
func (v Viewport) CellToCanvas(col, row int) (float64, float64) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) / float64(v.Cols) * v.Width
	y := (float64(row) + 0.5) / float64(v.Rows) * v.Height
	return x, y
}

func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
