package game

import (
	"errors"

	"chosenoffset.com/jumpman/internal/input"
	"chosenoffset.com/jumpman/internal/render"
	"chosenoffset.com/jumpman/internal/render/pipeline"
)

// ErrQuit ends the game loop without a failure.
var ErrQuit = errors.New("quit requested")

// State is the screen the manager shows.
type State int

const (
	StateSelect State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSelect:
		return "select"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Device is a pipeline device that draws onto a bound screen image.
type Device interface {
	pipeline.Device
	Bind(dst render.Image)
}

// InputSource samples the controls once per frame.
type InputSource interface {
	Sample(width, height int) input.State
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
