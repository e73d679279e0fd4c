package field

import "image/color"

// Surface receives the drawing commands issued by a frame step. Clearing is
// the driver's job and happens before Step is called.
type Surface interface {
	FillCircle(x, y, r float64, clr color.Color)
	// GlowCircle fills a circle and surrounds it with a soft shadow of the
	// same color extending roughly blur units outward.
	GlowCircle(x, y, r, blur float64, clr color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
}

// Op identifies a recorded drawing command.
type Op int

const (
	OpCircle Op = iota
	OpGlow
	OpLine
)

// Call is one recorded drawing command.
type Call struct {
	Op     Op
	X1, Y1 float64
	X2, Y2 float64
	R      float64
	Blur   float64
	Width  float64
	Color  color.Color
}

// Recorder is a Surface that keeps every call for inspection.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillCircle(x, y, rad float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X1: x, Y1: y, R: rad, Color: clr})
}

func (r *Recorder) GlowCircle(x, y, rad, blur float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpGlow, X1: x, Y1: y, R: rad, Blur: blur, Color: clr})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: clr})
}

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
