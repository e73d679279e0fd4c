package loop

import (
	"context"
	"time"
)

// Driver calls Tick once per Interval on the goroutine running Run. Functions
// received on Events run on the same goroutine between ticks, so state they
// touch never races with a tick.
type Driver struct {
	Interval time.Duration
	Tick     func()
	Events   <-chan func()

	// MaxFrames stops the driver after that many ticks when positive.
	MaxFrames int

	frames int
}

// Run blocks until ctx is done or MaxFrames ticks have run.
func (d *Driver) Run(ctx context.Context) error {
	if d.Interval <= 0 {
		return d.runUnpaced(ctx)
	}

	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn, ok := <-d.Events:
			if !ok {
				d.Events = nil
				continue
			}
			fn()
		case <-ticker.C:
			if d.step() {
				return nil
			}
		}
	}
}

// runUnpaced ticks as fast as possible, draining pending events before each
// tick. Used for headless rendering.
func (d *Driver) runUnpaced(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.drain()
		if d.step() {
			return nil
		}
	}
}

func (d *Driver) drain() {
	for {
		select {
		case fn, ok := <-d.Events:
			if !ok {
				d.Events = nil
				return
			}
			fn()
		default:
			return
		}
	}
}

func (d *Driver) step() bool {
	d.Tick()
	d.frames++
	return d.MaxFrames > 0 && d.frames >= d.MaxFrames
}

// Frames returns the number of ticks run so far.
func (d *Driver) Frames() int { return d.frames }

// FPS is a once-per-second frame rate estimate.
type FPS struct {
	last   time.Time
	count  int
	latest float64
}

// Frame records one frame at now and returns the current estimate.
func (f *FPS) Frame(now time.Time) float64 {
	if f.last.IsZero() {
		f.last = now
	}
	f.count++
	if elapsed := now.Sub(f.last); elapsed >= time.Second {
		f.latest = float64(f.count) / elapsed.Seconds()
		f.count = 0
		f.last = now
	}
	return f.latest
}
