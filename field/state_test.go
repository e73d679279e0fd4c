package field

import (
	"os"
	"path/filepath"
	"testing"

	"topo-field/config"
)

func TestSaveLoadState(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "state.yaml")

	f := New(NewRand(21), testPalette)
	f.Initialize(1000, 600)
	for i := 0; i < 10; i++ {
		f.Step(&Recorder{})
	}

	if err := SaveState(f, filename); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	f2 := New(NewRand(99), testPalette)
	if err := LoadState(f2, filename); err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}

	if !f2.Initialized() {
		t.Error("Expected loaded field to count as initialized")
	}
	if f2.Width != 1000 || f2.Height != 600 {
		t.Errorf("Expected 1000x600, got %vx%v", f2.Width, f2.Height)
	}
	if len(f2.Nodes) != len(f.Nodes) {
		t.Fatalf("Expected %d nodes, got %d", len(f.Nodes), len(f2.Nodes))
	}
	if len(f2.Packets) != len(f.Packets) {
		t.Fatalf("Expected %d packets, got %d", len(f.Packets), len(f2.Packets))
	}
	for i := range f.Nodes {
		if f.Nodes[i].Point != f2.Nodes[i].Point || len(f.Nodes[i].Neighbors) != len(f2.Nodes[i].Neighbors) {
			t.Errorf("Node %d differs after load", i)
		}
	}
	if f2.Resize(1000, 600) {
		t.Error("Loaded field with same dimensions must not reinitialize")
	}
}

func TestLoadStateDropsInvalidPackets(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "state.yaml")
	data := `width: 300
height: 300
nodes:
  - {x: 10, y: 10, vx: 0.1, vy: 0}
  - {x: 20, y: 10, vx: 0, vy: 0.1}
  - {x: .nan, y: 10, vx: 0, vy: 0}
  - {x: 30, y: 10, vx: 0, vy: 0}
  - {x: 40, y: 10, vx: .inf, vy: 0}
packets:
  - {start: 0, end: 1, progress: 0.5, speed: 0.01}
  - {start: 0, end: 7, progress: 0.5, speed: 0.01}
  - {start: 1, end: -1, progress: 3, speed: 0.01}
  - {start: 0, end: 1, progress: 0.5, speed: -0.3}
  - {start: 0, end: 1, progress: 0.5, speed: 0}
  - {start: 0, end: 2, progress: 0.5, speed: 0.01}
  - {start: 3, end: 0, progress: .nan, speed: 0.01}
`
	if err := os.WriteFile(filename, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f := New(NewRand(1), testPalette)
	if err := LoadState(f, filename); err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}

	if len(f.Nodes) != 3 {
		t.Fatalf("Expected 3 finite nodes, got %d", len(f.Nodes))
	}
	if len(f.Packets) != 5 {
		t.Fatalf("Expected 5 packets, got %d", len(f.Packets))
	}
	if f.Packets[1].Progress != 0 {
		t.Errorf("Expected out-of-range progress reset, got %v", f.Packets[1].Progress)
	}
	for _, i := range []int{2, 3} {
		sp := f.Packets[i].Speed
		if sp < config.PacketSpeedMin || sp >= config.PacketSpeedMin+config.PacketSpeedRange {
			t.Errorf("Packet %d: expected speed redrawn into range, got %v", i, sp)
		}
	}
	if p := f.Packets[4]; p.Start != 2 || p.End != 0 || p.Progress != 0 {
		t.Errorf("Expected packet remapped to node 2 with progress 0, got %+v", p)
	}
	if !containsInt(f.Nodes[0].Neighbors, 1) {
		t.Error("Expected neighbors rebuilt on load")
	}

	for i := 0; i < 3; i++ {
		f.Step(&Recorder{})
	}
	for i, p := range f.Packets {
		if p.Progress < 0 || p.Progress >= 1 {
			t.Errorf("Packet %d: progress %v out of [0,1) after stepping", i, p.Progress)
		}
	}
	for i, n := range f.Nodes {
		if !finite(n.X, n.Y, n.VX, n.VY) {
			t.Errorf("Node %d: non-finite after stepping: %+v", i, n)
		}
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	f := New(NewRand(1), testPalette)
	if err := LoadState(f, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
