package field

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"topo-field/config"
	"topo-field/graph"
)

type NodeState struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

type PacketState struct {
	Start    int     `yaml:"start"`
	End      int     `yaml:"end"`
	Progress float64 `yaml:"progress"`
	Speed    float64 `yaml:"speed"`
}

// State is the persisted form of a field. Neighbor lists are not stored;
// they are rebuilt from positions on load.
type State struct {
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Nodes   []NodeState   `yaml:"nodes"`
	Packets []PacketState `yaml:"packets"`
}

func (f *Field) State() State {
	st := State{Width: f.Width, Height: f.Height}
	for _, n := range f.Nodes {
		st.Nodes = append(st.Nodes, NodeState{X: n.X, Y: n.Y, VX: n.VX, VY: n.VY})
	}
	for _, p := range f.Packets {
		st.Packets = append(st.Packets, PacketState{Start: p.Start, End: p.End, Progress: p.Progress, Speed: p.Speed})
	}
	return st
}

// Restore replaces the field contents with st. Nodes with non-finite
// position or velocity are dropped and packet indices follow the surviving
// nodes. Packets referring to nodes that do not exist are dropped;
// out-of-range progress restarts at zero and out-of-range speed is redrawn.
func (f *Field) Restore(st State) {
	f.Width, f.Height = st.Width, st.Height
	f.Nodes = f.Nodes[:0]
	f.Packets = f.Packets[:0]

	remap := make([]int, len(st.Nodes))
	droppedNodes := 0
	for i, ns := range st.Nodes {
		if !finite(ns.X, ns.Y, ns.VX, ns.VY) {
			remap[i] = NoNode
			droppedNodes++
			continue
		}
		remap[i] = len(f.Nodes)
		f.Nodes = append(f.Nodes, Node{Point: graph.Point{X: ns.X, Y: ns.Y}, VX: ns.VX, VY: ns.VY})
	}
	if droppedNodes > 0 {
		slog.Warn("dropped nodes with non-finite values", "count", droppedNodes)
	}

	dropped := 0
	for _, ps := range st.Packets {
		start := lookup(remap, ps.Start)
		end := NoNode
		if ps.End != NoNode {
			end = lookup(remap, ps.End)
		}
		if start == NoNode || (ps.End != NoNode && end == NoNode) {
			dropped++
			continue
		}
		p := Packet{Start: start, End: end, Progress: ps.Progress, Speed: ps.Speed}
		if !(p.Progress >= 0 && p.Progress < 1) {
			p.Progress = 0
		}
		if !(p.Speed >= config.PacketSpeedMin && p.Speed < config.PacketSpeedMin+config.PacketSpeedRange) {
			p.Speed = config.PacketSpeedMin + f.rng.Float64()*config.PacketSpeedRange
		}
		f.Packets = append(f.Packets, p)
	}
	if dropped > 0 {
		slog.Warn("dropped packets with invalid endpoints", "count", dropped)
	}

	f.rebuild(nil)
	f.initialized = true
}

// lookup maps a saved node index to its index after loading.
func lookup(remap []int, i int) int {
	if i < 0 || i >= len(remap) {
		return NoNode
	}
	return remap[i]
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func SaveState(f *Field, filename string) error {
	st := f.State()

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}
	defer file.Close()

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	if err := enc.Encode(&st); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return enc.Close()
}

func LoadState(f *Field, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read state file: %w", err)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode state: %w", err)
	}

	f.Restore(st)
	return nil
}
