package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDriverMaxFramesUnpaced(t *testing.T) {
	ticks := 0
	d := &Driver{Tick: func() { ticks++ }, MaxFrames: 25}
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if ticks != 25 || d.Frames() != 25 {
		t.Errorf("Expected 25 ticks, got %d (frames %d)", ticks, d.Frames())
	}
}

func TestDriverAppliesEventsBetweenTicks(t *testing.T) {
	events := make(chan func(), 4)
	var order []string
	events <- func() { order = append(order, "resize") }

	d := &Driver{
		Tick:      func() { order = append(order, "tick") },
		Events:    events,
		MaxFrames: 2,
	}
	if err := d.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(order) != 3 || order[0] != "resize" {
		t.Errorf("Expected event before first tick, got %v", order)
	}
}

func TestDriverPacedStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	d := &Driver{
		Interval: time.Millisecond,
		Tick: func() {
			ticks++
			if ticks == 3 {
				cancel()
			}
		},
	}
	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if ticks < 3 {
		t.Errorf("Expected at least 3 ticks, got %d", ticks)
	}
}

func TestDriverClosedEvents(t *testing.T) {
	events := make(chan func())
	close(events)
	d := &Driver{Interval: time.Millisecond, Tick: func() {}, Events: events, MaxFrames: 3}
	if err := d.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestFPS(t *testing.T) {
	var f FPS
	start := time.Unix(100, 0)
	for i := 0; i < 30; i++ {
		f.Frame(start.Add(time.Duration(i) * time.Second / 30))
	}
	got := f.Frame(start.Add(time.Second))
	if got < 29 || got > 32 {
		t.Errorf("Expected ~31 fps, got %v", got)
	}
}
