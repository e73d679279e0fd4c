package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"topo-field/config"
	"topo-field/field"
	"topo-field/loop"
	"topo-field/theme"
)

type Options struct {
	Settings config.Settings
	Mode     theme.Mode
	Rand     field.Rand
	// Screen defaults to the real terminal.
	Screen tcell.Screen
	// MaxFrames stops after that many frames when positive.
	MaxFrames int
}

// App runs the field inside a terminal. All field and theme mutations happen
// on the driver goroutine; the tcell event poller only forwards closures.
type App struct {
	screen  tcell.Screen
	field   *field.Field
	theme   *theme.Controller
	surface *Surface
	cancel  context.CancelFunc
	fps     loop.FPS
}

func Run(ctx context.Context, opts Options) error {
	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := newApp(screen, opts, cancel)

	events := make(chan func(), 64)
	go a.poll(ctx, events)

	fps := opts.Settings.TermFPS
	if fps <= 0 {
		fps = config.DefaultTermFPS
	}
	d := &loop.Driver{
		Interval:  time.Second / time.Duration(fps),
		Tick:      a.frame,
		Events:    events,
		MaxFrames: opts.MaxFrames,
	}
	err := d.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newApp(screen tcell.Screen, opts Options, cancel context.CancelFunc) *App {
	rng := opts.Rand
	if rng == nil {
		rng = field.NewRand(opts.Settings.Seed)
	}
	src := theme.NewSource(opts.Settings.Theme)

	a := &App{
		screen: screen,
		field:  field.New(rng, src.Palette(opts.Mode)),
		cancel: cancel,
	}
	a.theme = theme.NewController(src, opts.Settings.Theme.Prefs, opts.Mode, a.field.SetPalette)
	a.resize()
	return a
}

// resize matches the surface and field to the current terminal size. One
// row is reserved for the status line.
func (a *App) resize() {
	cols, rows := a.screen.Size()
	rows--
	if rows < 0 {
		rows = 0
	}
	a.surface = NewSurface(a.screen, cols, rows, a.background())
	if a.field.Resize(a.surface.View.Width, a.surface.View.Height) {
		slog.Debug("terminal resized", "cols", cols, "rows", rows)
	}
}

func (a *App) background() color.RGBA {
	if a.theme != nil && a.theme.Mode().IsLight() {
		return config.ColorBackgroundLight
	}
	return config.ColorBackgroundDark
}

func (a *App) frame() {
	a.surface.BG = a.background()
	a.surface.Clear()
	a.field.Step(a.surface)
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	_, rows := a.screen.Size()
	st := a.field.Stats()
	fps := a.fps.Frame(time.Now())
	line := fmt.Sprintf(" nodes %d  edges %d  packets %d/%d  %.0f fps   [t] %s  [q] quit",
		st.Nodes, st.Edges, st.ActivePackets, st.Packets, fps, a.theme.Mode().Toggle())
	style := tcell.StyleDefault.Reverse(true)
	cols, _ := a.screen.Size()
	runes := []rune(line)
	for col := 0; col < cols; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		a.screen.SetContent(col, rows-1, ch, nil, style)
	}
}

// poll converts tcell events into closures run between frames.
func (a *App) poll(ctx context.Context, out chan<- func()) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		fn := a.handle(ev)
		if fn == nil {
			continue
		}
		select {
		case out <- fn:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) handle(ev tcell.Event) func() {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return func() {
			a.screen.Sync()
			a.resize()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		return func() {
			if !a.surface.View.Contains(col, row) {
				a.field.ClearPointer()
				return
			}
			x, y := a.surface.View.CellToCanvas(col, row)
			a.field.SetPointer(x, y)
		}
	case *tcell.EventFocus:
		if ev.Focused {
			return nil
		}
		return a.field.ClearPointer
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return a.cancel
		case ev.Rune() == 't':
			return a.theme.Toggle
		}
	}
	return nil
}
