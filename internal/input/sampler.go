package input

import (
	"math"

	"chosenoffset.com/jumpman/internal/render"
)

// Sampler turns raw key and pointer state into a State once per frame.
type Sampler struct {
	source       render.InputManager
	maxDragDelta float64

	dragging     bool
	lastX, lastY int
}

// NewSampler creates a sampler reading from source. Drag deltas are clamped
// to ±maxDragDelta radians.
func NewSampler(source render.InputManager, maxDragDelta float64) *Sampler {
	return &Sampler{source: source, maxDragDelta: maxDragDelta}
}

// Sample reads the current controls. width and height are the viewport size
// used to convert pointer pixels into orbit radians.
func (s *Sampler) Sample(width, height int) State {
	src := s.source
	st := State{
		Move: MoveKeys{
			Left:    src.IsKeyPressed(render.KeyA),
			Forward: src.IsKeyPressed(render.KeyW),
			Back:    src.IsKeyPressed(render.KeyS),
			Right:   src.IsKeyPressed(render.KeyD),
		},
		Zoom: ZoomKeys{
			In:  src.IsKeyPressed(render.KeyUp),
			Out: src.IsKeyPressed(render.KeyDown),
		},
		Light: LightKeys{
			Left:    src.IsKeyPressed(render.KeyJ),
			Right:   src.IsKeyPressed(render.KeyK),
			Forward: src.IsKeyPressed(render.KeyI),
			Back:    src.IsKeyPressed(render.KeyM),
			Up:      src.IsKeyPressed(render.KeyU),
			Down:    src.IsKeyPressed(render.KeyN),
		},
		Toggles: Toggles{
			Shadows: src.IsKeyJustPressed(render.KeyL),
			Frustum: src.IsKeyJustPressed(render.KeyF),
			Quit:    src.IsKeyJustPressed(render.KeyEscape),
		},
	}

	x, y := src.GetCursorPosition()
	if !src.IsMouseButtonPressed(render.MouseButtonLeft) {
		s.dragging = false
		return st
	}

	if !s.dragging {
		// Press starts a drag; the first frame has no delta
		s.dragging = true
		s.lastX, s.lastY = x, y
		st.Drag.Active = true
		return st
	}

	// Guard zero-sized viewports
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	st.Drag = PointerDrag{
		Active: true,
		DeltaX: float64(x-s.lastX) * 2 * math.Pi / float64(width),
		DeltaY: float64(y-s.lastY) * 2 * math.Pi / float64(height),
	}.ClampDrag(s.maxDragDelta)
	s.lastX, s.lastY = x, y
	return st
}
