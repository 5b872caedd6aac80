// Package loop drives the sample, update and draw cycle of a frame.
package loop

import (
	"context"
	"time"

	"chosenoffset.com/jumpman/internal/input"
)

// Stepper is the game side of a frame.
type Stepper interface {
	Sample() input.State
	Update(in input.State, now float64)
	Draw()
	Terminal() bool
}

// Runner gates frames on a minimum spacing and stops at the terminal state.
type Runner struct {
	MinFrameDelta float64

	last    float64
	started bool
	frames  int
}

// New creates a runner that skips frames closer than minFrameDelta seconds.
func New(minFrameDelta float64) *Runner {
	return &Runner{MinFrameDelta: minFrameDelta}
}

// Tick runs one frame at now, in seconds. Frames too close to the previous
// one are skipped without update or draw. It reports whether the frame ran.
func (r *Runner) Tick(s Stepper, now float64) bool {
	if s.Terminal() {
		return false
	}
	if r.started && now-r.last < r.MinFrameDelta {
		return false
	}
	r.started = true
	r.last = now

	in := s.Sample()
	s.Update(in, now)
	s.Draw()
	r.frames++
	return true
}

// Frames returns the number of frames that ran.
func (r *Runner) Frames() int {
	return r.frames
}

// Run ticks s for every time read from clock until s is terminal or clock
// closes. A cancelled ctx stops the loop with its error.
func (r *Runner) Run(ctx context.Context, s Stepper, clock <-chan float64) error {
	for !s.Terminal() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-clock:
			if !ok {
				return nil
			}
			r.Tick(s, now)
		}
	}
	return nil
}

// Clock sends the seconds elapsed since it started, rate times a second,
// until ctx is done. Slow readers drop ticks.
func Clock(ctx context.Context, rate int) <-chan float64 {
	if rate < 1 {
		rate = 1
	}
	out := make(chan float64)
	go func() {
		defer close(out)
		start := time.Now()
		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				select {
				case out <- t.Sub(start).Seconds():
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
