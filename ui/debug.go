package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"topo-field/config"
	"topo-field/field"
)

type DebugPanel struct {
	Visible bool
	Lines   []string
}

func (d *DebugPanel) Toggle() {
	d.Visible = !d.Visible
}

// SetStats replaces the panel text with frame statistics.
func (d *DebugPanel) SetStats(tps, fps float64, st field.Stats) {
	d.Lines = append(d.Lines[:0],
		fmt.Sprintf("TPS %.1f  FPS %.1f", tps, fps),
		fmt.Sprintf("nodes %d  edges %d", st.Nodes, st.Edges),
		fmt.Sprintf("packets %d/%d", st.ActivePackets, st.Packets),
	)
}

func (d *DebugPanel) Draw(screen *ebiten.Image, w, h int, face font.Face) {
	if d == nil || !d.Visible || len(d.Lines) == 0 {
		return
	}
	pw, ph := 220, 20+16*len(d.Lines)
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), config.ColorDebugPanel, false)
	if face == nil {
		return
	}
	text := ""
	for i, l := range d.Lines {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	DrawTextLines(screen, face, text, x+8, y+8, config.ColorDebugText)
}
