package field

import (
	"topo-field/config"
	"topo-field/theme"
)

// Packet travels from Start to End. Progress stays in [0,1) after every
// Update. End is NoNode while the packet has nowhere to go.
type Packet struct {
	Start    int
	End      int
	Progress float64
	Speed    float64
}

func newPacket(start, end int, rng Rand) Packet {
	return Packet{
		Start: start,
		End:   end,
		Speed: config.PacketSpeedMin + rng.Float64()*config.PacketSpeedRange,
	}
}

// Update advances the packet. On reaching End it continues to a random
// neighbor of End, or respawns elsewhere when End is isolated.
func (p *Packet) Update(nodes []Node, rng Rand) {
	if !valid(p.End, nodes) {
		p.Progress = 0
		p.respawn(nodes, rng)
		return
	}

	p.Progress += p.Speed
	if p.Progress < 1 {
		return
	}

	p.Progress = 0
	p.Start = p.End
	if ns := nodes[p.Start].Neighbors; len(ns) > 0 {
		p.End = ns[rng.Intn(len(ns))]
		return
	}
	p.respawn(nodes, rng)
}

// respawn moves the packet to a random node, preferring one with neighbors.
// With no edge anywhere, End becomes NoNode and the packet stops drawing.
func (p *Packet) respawn(nodes []Node, rng Rand) {
	p.End = NoNode
	if len(nodes) == 0 {
		p.Start = NoNode
		return
	}

	p.Start = rng.Intn(len(nodes))
	if len(nodes[p.Start].Neighbors) == 0 {
		active := activeNodes(nodes)
		if len(active) == 0 {
			return
		}
		p.Start = active[rng.Intn(len(active))]
	}

	ns := nodes[p.Start].Neighbors
	p.End = ns[rng.Intn(len(ns))]
}

func (p *Packet) Draw(s Surface, nodes []Node, pal theme.Palette) {
	if !valid(p.Start, nodes) || !valid(p.End, nodes) {
		return
	}
	a, b := nodes[p.Start], nodes[p.End]
	x := a.X + (b.X-a.X)*p.Progress
	y := a.Y + (b.Y-a.Y)*p.Progress
	s.GlowCircle(x, y, config.PacketRadius, config.PacketGlow, pal.Packet)
}

// Active reports whether the packet currently has a drawable edge.
func (p *Packet) Active(nodes []Node) bool {
	return valid(p.Start, nodes) && valid(p.End, nodes)
}

func valid(i int, nodes []Node) bool {
	return i >= 0 && i < len(nodes)
}

func activeNodes(nodes []Node) []int {
	active := []int{}
	for i := range nodes {
		if len(nodes[i].Neighbors) > 0 {
			active = append(active, i)
		}
	}
	return active
}
