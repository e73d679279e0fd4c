package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Host defines the callbacks the input system needs from the main game.
type Host interface {
	ScreenSize() (int, int)
	SetPointer(x, y float64)
	ClearPointer()
	ToggleTheme()
	ToggleDebug()
	RequestScreenshot()
	SaveState(filename string) error
}

// A cursor that rests within EdgeMargin pixels of the border for
// EdgeIdleFrames frames is treated as having left the window. ebiten keeps
// reporting the last position after the cursor exits a focused window.
const (
	EdgeMargin     = 2
	EdgeIdleFrames = 30
)

type InputSystem struct {
	host Host

	// StateFile is where F2 writes the field state.
	StateFile string

	pointerSet   bool
	lastX, lastY int
	idle         int
}

func NewInputSystem(h Host) *InputSystem {
	return &InputSystem{host: h, StateFile: "state.yaml"}
}

// Update reads ebiten input for this frame. It returns ebiten.Termination
// when the user asked to quit.
func (is *InputSystem) Update() error {
	mx, my := ebiten.CursorPosition()
	w, h := is.host.ScreenSize()
	is.TrackPointer(mx, my, w, h, ebiten.IsFocused())

	if quit := is.handleControlKeys(); quit {
		return ebiten.Termination
	}
	return nil
}

// TrackPointer forwards the cursor to the host while it is over the surface
// and clears it once when the cursor leaves or parks on the border.
func (is *InputSystem) TrackPointer(mx, my, w, h int, focused bool) {
	if mx == is.lastX && my == is.lastY {
		is.idle++
	} else {
		is.lastX, is.lastY = mx, my
		is.idle = 0
	}

	if PointerInside(mx, my, w, h, focused) && !is.parkedOnEdge(mx, my, w, h) {
		is.host.SetPointer(float64(mx), float64(my))
		is.pointerSet = true
		return
	}
	if is.pointerSet {
		is.host.ClearPointer()
		is.pointerSet = false
	}
}

func (is *InputSystem) parkedOnEdge(mx, my, w, h int) bool {
	if is.idle < EdgeIdleFrames {
		return false
	}
	return mx < EdgeMargin || my < EdgeMargin || mx >= w-EdgeMargin || my >= h-EdgeMargin
}

// PointerInside reports whether a cursor at (mx, my) is over a w×h surface.
func PointerInside(mx, my, w, h int, focused bool) bool {
	return focused && mx >= 0 && my >= 0 && mx < w && my < h
}

func (is *InputSystem) handleControlKeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}

	// --- Theme ---
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		is.host.ToggleTheme()
	}

	// --- Debug Panel ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		is.host.ToggleDebug()
	}

	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		is.host.RequestScreenshot()
	}

	// --- Save State ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		_ = is.host.SaveState(is.StateFile)
	}
	return false
}
