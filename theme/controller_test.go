package theme

import (
	"path/filepath"
	"testing"

	"topo-field/config"
)

func TestControllerToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	var got []Palette
	src := &Source{Dark: config.ThemeColors{Accent: "#64ffda"}, Light: config.ThemeColors{Accent: "#6fd"}}
	c := NewController(src, path, Dark, func(p Palette) { got = append(got, p) })

	c.Toggle()
	if c.Mode() != Light {
		t.Fatalf("Expected light, got %s", c.Mode())
	}
	if len(got) != 1 || got[0].Node.A != 0.3 || got[0].Packet.R != 102 {
		t.Errorf("Unexpected palette push: %+v", got)
	}

	p, err := LoadPrefs(path)
	if err != nil || p.Theme != Light {
		t.Errorf("Expected persisted light theme, got %+v err=%v", p, err)
	}

	c.Set(Light)
	if len(got) != 2 || got[1] != got[0] {
		t.Errorf("Redundant Set must push an identical palette: %+v", got)
	}
}
