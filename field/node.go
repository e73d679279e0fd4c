package field

import (
	"math"

	"topo-field/config"
	"topo-field/graph"
	"topo-field/theme"
)

// NoNode marks a packet endpoint that does not refer to any node.
const NoNode = -1

// Pointer is the cursor position in canvas coordinates. Set is false while
// the cursor is outside the surface.
type Pointer struct {
	X, Y float64
	Set  bool
}

// Node is one moving point. Neighbors holds indices into the owning field's
// node slice and is only valid for the frame it was built in.
type Node struct {
	graph.Point
	VX, VY    float64
	Neighbors []int
}

func newNode(x, y float64, rng Rand) Node {
	return Node{
		Point: graph.Point{X: x, Y: y},
		VX:    (rng.Float64() - 0.5) * config.MaxNodeSpeed,
		VY:    (rng.Float64() - 0.5) * config.MaxNodeSpeed,
	}
}

// Update moves the node by its velocity, pushes it away from the pointer and
// bounces it off the bounds. On a crossing the velocity component is pointed
// back inside (made positive past 0, negative past the far edge) instead of
// being negated, so a node that is still outside on the next frame keeps
// heading in.
func (n *Node) Update(width, height float64, p Pointer) {
	n.X += n.VX
	n.Y += n.VY

	if p.Set {
		dx := p.X - n.X
		dy := p.Y - n.Y
		dist := math.Hypot(dx, dy)
		// A node exactly under the pointer has no direction to flee in.
		if dist > 0 && dist < config.RepulsionRadius {
			force := (config.RepulsionRadius - dist) / config.RepulsionRadius * config.RepulsionForce
			n.X -= dx / dist * force
			n.Y -= dy / dist * force
		}
	}

	if n.X < 0 {
		n.VX = math.Abs(n.VX)
	} else if n.X > width {
		n.VX = -math.Abs(n.VX)
	}
	if n.Y < 0 {
		n.VY = math.Abs(n.VY)
	} else if n.Y > height {
		n.VY = -math.Abs(n.VY)
	}
}

func (n *Node) Draw(s Surface, pal theme.Palette) {
	s.FillCircle(n.X, n.Y, config.NodeRadius, pal.Node)
}
