package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"topo-field/config"
	"topo-field/theme"
)

// UISystem owns the overlay widgets: the theme toggle and the debug panel.
type UISystem struct {
	toggle        *Button
	face          font.Face
	getScreenSize func() (int, int)
	getMode       func() theme.Mode
	Debug         *DebugPanel
}

func NewUISystem(face font.Face, getScreenSize func() (int, int), getMode func() theme.Mode, onToggleTheme func()) *UISystem {
	ui := &UISystem{
		face:          face,
		getScreenSize: getScreenSize,
		getMode:       getMode,
		Debug:         &DebugPanel{},
		toggle: &Button{
			W:       config.ButtonWidth,
			H:       config.ButtonHeight,
			OnClick: onToggleTheme,
		},
	}
	ui.layout()
	return ui
}

// layout pins the toggle to the top-right corner and labels it with the mode
// a click switches to.
func (ui *UISystem) layout() {
	w, _ := ui.getScreenSize()
	ui.toggle.X = float32(w) - ui.toggle.W - config.ButtonMargin
	ui.toggle.Y = config.ButtonMargin
	ui.toggle.Label = string(ui.getMode().Toggle())
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.layout()
	return ui.toggle.IsMouseOver(mx, my)
}

// Click handles a left click at (mx, my) and reports whether a widget took it.
func (ui *UISystem) Click(mx, my int) bool {
	if !ui.IsMouseOver(mx, my) {
		return false
	}
	if ui.toggle.OnClick != nil {
		ui.toggle.OnClick()
	}
	return true
}

func (ui *UISystem) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.layout()
	bg, fg := config.ColorButtonDark, config.ColorTextDark
	if ui.getMode().IsLight() {
		bg, fg = config.ColorButtonLight, config.ColorTextLight
	}
	ui.toggle.Draw(screen, ui.face, bg, fg)

	w, h := ui.getScreenSize()
	ui.Debug.Draw(screen, w, h, ui.face)
}
