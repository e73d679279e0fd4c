package field

import (
	"log/slog"
	"math"

	"topo-field/config"
	"topo-field/graph"
	"topo-field/theme"
)

// Field owns the nodes and packets of the animation and drives one frame per
// Step. It is not safe for concurrent use; callers serialize Step with the
// pointer, palette and resize setters.
type Field struct {
	Width   float64
	Height  float64
	Nodes   []Node
	Packets []Packet

	palette     theme.Palette
	pointer     Pointer
	adj         graph.Adjacency
	rng         Rand
	initialized bool
}

func New(rng Rand, pal theme.Palette) *Field {
	return &Field{rng: rng, palette: pal}
}

// Initialize discards all nodes and packets and regenerates them for a
// width×height surface.
func (f *Field) Initialize(width, height float64) {
	f.Width, f.Height = width, height
	f.Nodes = f.Nodes[:0]
	f.Packets = f.Packets[:0]

	count := 0
	if width > 0 && height > 0 {
		count = int(math.Floor(width * height / config.NodeDensity))
	}
	for i := 0; i < count; i++ {
		f.Nodes = append(f.Nodes, newNode(f.rng.Float64()*width, f.rng.Float64()*height, f.rng))
	}

	f.rebuild(nil)

	if len(f.Nodes) > 0 {
		for i := 0; i < config.PacketCount; i++ {
			start := f.rng.Intn(len(f.Nodes))
			ns := f.Nodes[start].Neighbors
			if len(ns) == 0 {
				continue
			}
			f.Packets = append(f.Packets, newPacket(start, ns[f.rng.Intn(len(ns))], f.rng))
		}
	}

	f.initialized = true
	slog.Debug("network initialized",
		"width", width, "height", height,
		"nodes", len(f.Nodes), "packets", len(f.Packets))
}

// Resize reinitializes the field when the dimensions changed or it was never
// initialized. It reports whether it did so.
func (f *Field) Resize(width, height float64) bool {
	if f.initialized && width == f.Width && height == f.Height {
		return false
	}
	f.Initialize(width, height)
	return true
}

func (f *Field) Initialized() bool { return f.initialized }

func (f *Field) SetPointer(x, y float64) {
	f.pointer = Pointer{X: x, Y: y, Set: true}
}

func (f *Field) ClearPointer() {
	f.pointer = Pointer{}
}

func (f *Field) Pointer() Pointer { return f.pointer }

func (f *Field) SetPalette(p theme.Palette) {
	f.palette = p
}

func (f *Field) Palette() theme.Palette { return f.palette }

// Step runs one frame: move nodes, rebuild the proximity graph while drawing
// its edges, draw nodes, then advance and draw packets.
func (f *Field) Step(s Surface) {
	for i := range f.Nodes {
		f.Nodes[i].Update(f.Width, f.Height, f.pointer)
	}

	edge := f.palette.Edge
	f.rebuild(func(e graph.Edge) {
		a, b := f.Nodes[e.A], f.Nodes[e.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, config.EdgeWidth, edge)
	})

	for i := range f.Nodes {
		f.Nodes[i].Draw(s, f.palette)
	}

	for i := range f.Packets {
		f.Packets[i].Update(f.Nodes, f.rng)
		f.Packets[i].Draw(s, f.Nodes, f.palette)
	}
}

func (f *Field) rebuild(visit func(graph.Edge)) {
	f.adj = graph.Proximity(f.adj, len(f.Nodes), f.position, config.ProximityThreshold, visit)
	for i := range f.Nodes {
		f.Nodes[i].Neighbors = f.adj[i]
	}
}

func (f *Field) position(i int) graph.Point {
	return f.Nodes[i].Point
}

// Adjacency exposes the graph built by the last step.
func (f *Field) Adjacency() graph.Adjacency { return f.adj }

// Stats summarizes the current frame.
type Stats struct {
	Nodes         int
	Edges         int
	Packets       int
	ActivePackets int
}

func (f *Field) Stats() Stats {
	st := Stats{
		Nodes:   len(f.Nodes),
		Edges:   f.adj.EdgeCount(),
		Packets: len(f.Packets),
	}
	for i := range f.Packets {
		if f.Packets[i].Active(f.Nodes) {
			st.ActivePackets++
		}
	}
	return st
}
