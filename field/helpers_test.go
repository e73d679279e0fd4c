package field

import (
	"topo-field/graph"
	"topo-field/theme"
)

// seqRand replays fixed values so selection paths can be forced.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

var testPalette = theme.Refresh("#64ffda", theme.Dark)

func node(x, y float64, neighbors ...int) Node {
	return Node{Point: graph.Point{X: x, Y: y}, Neighbors: neighbors}
}

func containsInt(ns []int, v int) bool {
	for _, n := range ns {
		if n == v {
			return true
		}
	}
	return false
}
