// Package audio synthesizes the game's sound cues and plays them through the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
)

// tone is a fixed-length periodic wave.
type tone struct {
	freq   float64
	wave   Wave
	rate   beep.SampleRate
	phase  float64
	remain int
}

// NewTone returns a streamer that plays freq for duration. A zero frequency
// is a rest.
func NewTone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, wave: wave, rate: rate, remain: rate.N(duration)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.remain <= 0 {
		return 0, false
	}
	for i := range samples {
		if t.remain <= 0 {
			return i, true
		}
		v := 0.0
		if t.freq > 0 {
			switch t.wave {
			case Square:
				v = 1
				if t.phase >= 0.5 {
					v = -1
				}
			case Triangle:
				v = 4*math.Abs(t.phase-0.5) - 1
			default:
				v = math.Sin(2 * math.Pi * t.phase)
			}
		}
		samples[i] = [2]float64{v, v}
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.remain--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade shapes a streamer with a linear attack and release.
type fade struct {
	s               beep.Streamer
	pos, total      int
	attack, release int
}

// NewFade wraps s so it ramps up over attack and down over the last release of
// total. It removes the clicks of hard note edges.
func NewFade(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, total: rate.N(total), attack: rate.N(attack), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.attack > 0 && f.pos < f.attack {
			g = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			g = math.Min(g, math.Max(0, float64(left)/float64(f.release)))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// repeat restarts a finite streamer each time it drains.
type repeat struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

// Repeat plays the streamers built by next back to back forever.
func Repeat(next func() beep.Streamer) beep.Streamer {
	return &repeat{next: next}
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if r.cur == nil {
			r.cur = r.next()
		}
		m, ok := r.cur.Stream(samples[n:])
		n += m
		if !ok || m == 0 {
			r.cur = nil
		}
	}
	return n, true
}

func (r *repeat) Err() error { return nil }

// withGain scales s by a linear gain in [0, 1].
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(gain, 1))}
}
