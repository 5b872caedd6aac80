package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a game event with a sound.
type Cue int

const (
	CueCoin Cue = iota
	CueHit
	CueGameOver
	CueStart
)

func (c Cue) String() string {
	switch c {
	case CueCoin:
		return "coin"
	case CueHit:
		return "hit"
	case CueGameOver:
		return "game over"
	case CueStart:
		return "start"
	default:
		return "unknown"
	}
}

// Note is one pitch of a phrase. Freq zero is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

type phrase struct {
	wave  Wave
	gain  float64
	notes []Note
}

var cuePhrases = map[Cue]phrase{
	CueCoin: {Sine, 0.8, []Note{
		{987.77, 70 * time.Millisecond},
		{1318.51, 180 * time.Millisecond},
	}},
	CueHit: {Square, 0.35, []Note{
		{146.83, 90 * time.Millisecond},
		{110.00, 160 * time.Millisecond},
	}},
	CueGameOver: {Triangle, 0.9, []Note{
		{392.00, 220 * time.Millisecond},
		{329.63, 220 * time.Millisecond},
		{261.63, 220 * time.Millisecond},
		{196.00, 500 * time.Millisecond},
	}},
	CueStart: {Sine, 0.7, []Note{
		{523.25, 90 * time.Millisecond},
		{659.25, 90 * time.Millisecond},
		{783.99, 160 * time.Millisecond},
	}},
}

// soundtrack is the looping background tune.
var soundtrack = []Note{
	{261.63, 300 * time.Millisecond}, {329.63, 300 * time.Millisecond},
	{392.00, 300 * time.Millisecond}, {329.63, 300 * time.Millisecond},
	{293.66, 300 * time.Millisecond}, {349.23, 300 * time.Millisecond},
	{440.00, 300 * time.Millisecond}, {0, 300 * time.Millisecond},
	{246.94, 300 * time.Millisecond}, {293.66, 300 * time.Millisecond},
	{392.00, 600 * time.Millisecond}, {0, 300 * time.Millisecond},
}

// Phrase plays notes back to back, each faded in and out.
func Phrase(notes []Note, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		edge := n.Duration / 8
		parts = append(parts, NewFade(NewTone(n.Freq, n.Duration, wave, rate), n.Duration, edge, edge, rate))
	}
	return beep.Seq(parts...)
}

// CueStreamer returns the sound of c, or nil for an unknown cue.
func CueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	p, ok := cuePhrases[c]
	if !ok {
		return nil
	}
	return withGain(Phrase(p.notes, p.wave, rate), p.gain)
}

// Length returns the total duration of notes.
func Length(notes []Note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d += n.Duration
	}
	return d
}
