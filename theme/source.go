package theme

import (
	"log/slog"

	"topo-field/config"
)

// Source resolves the particle color for a theme from settings and an optional
// script. It plays the role of the document's computed style.
type Source struct {
	Dark   config.ThemeColors
	Light  config.ThemeColors
	Script *Script
}

func NewSource(s config.ThemeSettings) *Source {
	src := &Source{Dark: s.Dark, Light: s.Light}
	if s.Script != "" {
		script, err := LoadScript(s.Script)
		if err != nil {
			slog.Warn("theme script unavailable, using configured colors", "err", err)
		} else {
			src.Script = script
		}
	}
	return src
}

// Color returns the particle color, falling back to the accent color.
func (s *Source) Color(mode Mode) string {
	colors := s.Dark
	if mode == Light {
		colors = s.Light
	}

	if s.Script != nil {
		particle, accent, err := s.Script.Colors(mode)
		if err != nil {
			slog.Warn("theme script failed, using configured colors", "err", err)
		} else {
			if particle != "" {
				colors.Particle = particle
			}
			if accent != "" {
				colors.Accent = accent
			}
		}
	}

	if colors.Particle != "" {
		return colors.Particle
	}
	return colors.Accent
}

// Palette reads the current color for mode and derives the palette from it.
func (s *Source) Palette(mode Mode) Palette {
	return Refresh(s.Color(mode), mode)
}
