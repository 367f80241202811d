package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// Hooks receives input and frame callbacks from the loop
type Hooks interface {
	// HandleEvent processes one terminal event, returns false to quit
	HandleEvent(ev tcell.Event, now time.Time) bool
	// Update runs before the driver step (hold expiry, turning, timers)
	Update(now time.Time)
	// Render draws the frame after the driver step
	Render(f Frame)
}

// Loop drives frames at a fixed rate on a single goroutine
// Frames never overlap: input drain, step and render complete before the next tick
type Loop struct {
	driver   *Driver
	hooks    Hooks
	clock    Clock
	interval time.Duration
}

// NewLoop creates a loop ticking fps times per second
func NewLoop(driver *Driver, hooks Hooks, clock Clock, fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		driver:   driver,
		hooks:    hooks,
		clock:    clock,
		interval: time.Second / time.Duration(fps),
	}
}

// Interval returns the frame period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run ticks until ctx is cancelled, the hooks request quit, or events closes
// Returns ctx.Err() on cancellation, nil otherwise
func (l *Loop) Run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("frame loop cancelled")
			return ctx.Err()
		case <-ticker.C:
			if !l.drain(events) {
				log.Info().Msg("frame loop quit")
				return nil
			}
			l.Tick()
		}
	}
}

// Tick runs one frame: update hooks, driver step, render
func (l *Loop) Tick() Frame {
	l.hooks.Update(l.clock.Now())
	f := l.driver.Step()
	l.hooks.Render(f)
	return f
}

// drain consumes pending events without blocking
func (l *Loop) drain(events <-chan tcell.Event) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if !l.hooks.HandleEvent(ev, l.clock.Now()) {
				return false
			}
		default:
			return true
		}
	}
}

// Feed delivers events synchronously, returns false if the hooks requested quit
func (l *Loop) Feed(evs ...tcell.Event) bool {
	for _, ev := range evs {
		if !l.hooks.HandleEvent(ev, l.clock.Now()) {
			return false
		}
	}
	return true
}
