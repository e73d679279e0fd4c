package theme

import "log/slog"

// Controller holds the active mode and pushes a fresh palette to OnChange
// whenever it changes. Toggle also persists the choice to PrefsPath.
type Controller struct {
	Source    *Source
	PrefsPath string
	OnChange  func(Palette)

	mode Mode
}

func NewController(src *Source, prefsPath string, mode Mode, onChange func(Palette)) *Controller {
	return &Controller{Source: src, PrefsPath: prefsPath, OnChange: onChange, mode: mode}
}

func (c *Controller) Mode() Mode { return c.mode }

// Palette returns the palette for the active mode.
func (c *Controller) Palette() Palette { return c.Source.Palette(c.mode) }

// Set switches to m and recolors. Setting the current mode again only
// recomputes the same palette.
func (c *Controller) Set(m Mode) {
	c.mode = m
	if c.OnChange != nil {
		c.OnChange(c.Palette())
	}
	slog.Info("theme changed", "theme", m)
}

// Toggle flips the mode and persists it. A failed save is logged and the new
// mode stays active.
func (c *Controller) Toggle() {
	c.Set(c.mode.Toggle())
	if c.PrefsPath == "" {
		return
	}
	if err := SavePrefs(c.PrefsPath, Prefs{Theme: c.mode}); err != nil {
		slog.Warn("could not persist theme", "err", err)
	}
}
