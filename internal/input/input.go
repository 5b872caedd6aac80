// Package input holds the per-frame snapshot of the player's controls.
package input

// MoveKeys are the held movement keys.
type MoveKeys struct {
	Left    bool
	Forward bool
	Back    bool
	Right   bool
}

// ZoomKeys are the held camera zoom keys.
type ZoomKeys struct {
	In  bool
	Out bool
}

// LightKeys are the held keys nudging the spot light position.
type LightKeys struct {
	Left    bool // -x
	Right   bool // +x
	Forward bool // -z
	Back    bool // +z
	Up      bool // +y
	Down    bool // -y
}

// Any reports whether any light key is held.
func (k LightKeys) Any() bool {
	return k.Left || k.Right || k.Forward || k.Back || k.Up || k.Down
}

// PointerDrag is the pointer drag since the previous sample, in radians.
type PointerDrag struct {
	Active bool
	DeltaX float64
	DeltaY float64
}

// Toggles are edge-triggered keys, true only on the frame they were pressed.
type Toggles struct {
	Shadows bool
	Frustum bool
	Quit    bool
}

// State is a sampled snapshot consumed once per frame.
type State struct {
	Move    MoveKeys
	Zoom    ZoomKeys
	Light   LightKeys
	Drag    PointerDrag
	Toggles Toggles
}

// Moving reports whether any movement key is held.
func (s State) Moving() bool {
	return s.Move.Left || s.Move.Forward || s.Move.Back || s.Move.Right
}

// ClampDrag limits both drag deltas to [-limit, limit].
// A non-positive limit leaves the deltas untouched.
func (d PointerDrag) ClampDrag(limit float64) PointerDrag {
	if limit <= 0 {
		return d
	}
	d.DeltaX = clamp(d.DeltaX, -limit, limit)
	d.DeltaY = clamp(d.DeltaY, -limit, limit)
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
