// Package scene turns the world state into world matrices and geometry
// batches for the renderer.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is every placement parameter an entity can have. Zero fields are
// identity: a zero Scale means unscaled and a zero TiltAxis means no tilt.
type Transform struct {
	Position mgl64.Vec3 // Dynamic world position
	Offset   mgl64.Vec3 // Model recentering offset
	Dispose  mgl64.Vec3 // Fixed offset from the anchor, not rotated by Yaw
	Scale    mgl64.Vec3
	Yaw      float64    // Degrees about Y
	Step     mgl64.Vec3 // Offset in the yawed frame
	Tilt     float64    // Degrees about TiltAxis, after Step
	TiltAxis mgl64.Vec3
}

// ComposeWorldTransform builds
//
//	T(Position) T(Offset) T(Dispose) S(Scale) Ry(Yaw) T(Step) R(TiltAxis, Tilt)
//
// so yaw turns about the entity's own origin and the step and tilt that
// follow turn with the body.
func ComposeWorldTransform(t Transform) mgl64.Mat4 {
	anchor := t.Position.Add(t.Offset).Add(t.Dispose)
	m := mgl64.Translate3D(anchor[0], anchor[1], anchor[2])

	if t.Scale != (mgl64.Vec3{}) {
		m = m.Mul4(mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
	}
	if t.Yaw != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(t.Yaw)))
	}
	if t.Step != (mgl64.Vec3{}) {
		m = m.Mul4(mgl64.Translate3D(t.Step[0], t.Step[1], t.Step[2]))
	}
	if t.Tilt != 0 && t.TiltAxis != (mgl64.Vec3{}) {
		m = m.Mul4(mgl64.HomogRotate3D(mgl64.DegToRad(t.Tilt), t.TiltAxis.Normalize()))
	}
	return m
}
