package snapshot

import (
	"context"
	"image/color"
	"log/slog"

	"topo-field/canvas"
	"topo-field/config"
	"topo-field/field"
	"topo-field/loop"
	"topo-field/theme"
)

// Options selects the frames to render and where to write them.
type Options struct {
	Out      string
	Frames   int
	Width    int
	Height   int
	SaveFile string
	LoadFile string
}

// Render steps a field headlessly for opts.Frames frames and writes the
// last frame to opts.Out. The field starts from opts.LoadFile when set,
// otherwise from a fresh network sized Width×Height (window size when zero).
func Render(ctx context.Context, s config.Settings, mode theme.Mode, opts Options) (field.Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src := theme.NewSource(s.Theme)
	f := field.New(field.NewRand(s.Seed), src.Palette(mode))

	if opts.LoadFile != "" {
		if err := field.LoadState(f, opts.LoadFile); err != nil {
			return field.Stats{}, err
		}
	} else {
		w, h := opts.Width, opts.Height
		if w <= 0 {
			w = s.Window.Width
		}
		if h <= 0 {
			h = s.Window.Height
		}
		f.Initialize(float64(w), float64(h))
	}

	var bg color.Color = config.ColorBackgroundDark
	if mode.IsLight() {
		bg = config.ColorBackgroundLight
	}
	r := canvas.NewRaster(int(f.Width), int(f.Height))
	frames := opts.Frames
	if frames < 1 {
		frames = 1
	}

	d := &loop.Driver{
		MaxFrames: frames,
		Tick: func() {
			r.Clear(bg)
			f.Step(r)
		},
	}
	if err := d.Run(ctx); err != nil {
		return field.Stats{}, err
	}

	if err := r.SavePNG(opts.Out); err != nil {
		return field.Stats{}, err
	}
	slog.Debug("snapshot written", "file", opts.Out, "frames", frames)

	if opts.SaveFile != "" {
		if err := field.SaveState(f, opts.SaveFile); err != nil {
			return field.Stats{}, err
		}
	}
	return f.Stats(), nil
}
