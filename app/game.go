package app

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"topo-field/config"
	"topo-field/field"
	"topo-field/input"
	"topo-field/theme"
	"topo-field/ui"
)

// Options configures a Game.
type Options struct {
	Settings config.Settings
	Mode     theme.Mode
	Rand     field.Rand
	Face     font.Face
	// StateFile, when set, is loaded into the field before the first frame.
	// It survives only if its dimensions match the window.
	StateFile string
}

// Game drives the network field from ebiten's display loop.
type Game struct {
	field *field.Field
	theme *theme.Controller

	screenWidth  int
	screenHeight int

	// Sub-systems
	input *input.InputSystem
	ui    *ui.UISystem

	screenshotRequested bool
}

func NewGame(opts Options) *Game {
	source := theme.NewSource(opts.Settings.Theme)
	rng := opts.Rand
	if rng == nil {
		rng = field.NewRand(opts.Settings.Seed)
	}

	g := &Game{
		field:        field.New(rng, source.Palette(opts.Mode)),
		screenWidth:  opts.Settings.Window.Width,
		screenHeight: opts.Settings.Window.Height,
	}
	g.theme = theme.NewController(source, opts.Settings.Theme.Prefs, opts.Mode, g.field.SetPalette)

	if opts.StateFile != "" {
		if err := field.LoadState(g.field, opts.StateFile); err != nil {
			slog.Warn("could not load state, starting fresh", "err", err)
		}
	}

	g.input = input.NewInputSystem(g)
	g.ui = ui.NewUISystem(opts.Face, g.ScreenSize, g.Mode, g.ToggleTheme)
	return g
}

func (g *Game) Field() *field.Field { return g.field }

func (g *Game) Mode() theme.Mode { return g.theme.Mode() }

func (g *Game) Update() error {
	// Delegate to sub-systems
	if err := g.input.Update(); err != nil {
		return err
	}
	g.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	surface := Screen{Img: screen}
	surface.Clear(g.background())

	g.field.Step(surface)

	if g.ui.Debug.Visible {
		g.ui.Debug.SetStats(ebiten.ActualTPS(), ebiten.ActualFPS(), g.field.Stats())
	}
	g.ui.Draw(screen)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := saveScreenshot(screen); err != nil {
			slog.Error("screenshot failed", "err", err)
		}
	}
}

// Layout resizes the field synchronously so the next Draw already sees the
// regenerated network.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	if g.field.Resize(float64(outsideWidth), float64(outsideHeight)) {
		slog.Debug("surface resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) background() color.Color {
	if g.Mode().IsLight() {
		return config.ColorBackgroundLight
	}
	return config.ColorBackgroundDark
}

// --- input.Host ---

func (g *Game) ScreenSize() (int, int) { return g.screenWidth, g.screenHeight }

func (g *Game) SetPointer(x, y float64) { g.field.SetPointer(x, y) }

func (g *Game) ClearPointer() { g.field.ClearPointer() }

func (g *Game) ToggleTheme() { g.theme.Toggle() }

func (g *Game) SetMode(m theme.Mode) { g.theme.Set(m) }

func (g *Game) ToggleDebug() { g.ui.Debug.Toggle() }

func (g *Game) RequestScreenshot() { g.screenshotRequested = true }

func (g *Game) SaveState(filename string) error {
	if err := field.SaveState(g.field, filename); err != nil {
		slog.Error("save state failed", "file", filename, "err", err)
		return err
	}
	slog.Info("state saved", "file", filename)
	return nil
}

func saveScreenshot(screen *ebiten.Image) error {
	name := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		return err
	}
	slog.Info("screenshot saved", "file", name)
	return nil
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, s config.Settings) error {
	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
