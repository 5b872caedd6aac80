// Package camera provides the orbit camera that looks at the platform.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/input"
)

// Orbit is a camera on a sphere around Target. Angles are in radians.
type Orbit struct {
	Theta    float64 // Azimuth
	Phi      float64 // Polar angle
	Distance float64

	MinDistance float64
	MaxDistance float64
	ZoomStep    float64

	FieldOfView float64 // Vertical, radians
	Near, Far   float64

	Target mgl64.Vec3
	Up     mgl64.Vec3
}

// NewOrbit builds the camera from its config section.
func NewOrbit(cfg config.CameraConfig) *Orbit {
	return &Orbit{
		Theta:       mgl64.DegToRad(cfg.Theta),
		Phi:         mgl64.DegToRad(cfg.Phi),
		Distance:    cfg.Distance,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		ZoomStep:    cfg.ZoomStep,
		FieldOfView: mgl64.DegToRad(cfg.FieldOfView),
		Near:        cfg.Near,
		Far:         cfg.Far,
		Up:          mgl64.Vec3{0, 1, 0},
	}
}

// Apply consumes one frame of drag and zoom input.
func (o *Orbit) Apply(in input.State) {
	if in.Drag.Active {
		o.Theta += in.Drag.DeltaX
		o.Phi += in.Drag.DeltaY
	}
	if in.Zoom.In {
		o.Distance -= o.ZoomStep
	}
	if in.Zoom.Out {
		o.Distance += o.ZoomStep
	}
	o.Distance = mgl64.Clamp(o.Distance, o.MinDistance, o.MaxDistance)
}

// Eye returns the camera position in world space.
func (o *Orbit) Eye() mgl64.Vec3 {
	sp, cp := math.Sincos(o.Phi)
	st, ct := math.Sincos(o.Theta)
	return o.Target.Add(mgl64.Vec3{
		o.Distance * sp * ct,
		o.Distance * sp * st,
		o.Distance * cp,
	})
}

// View returns the world-to-camera matrix.
func (o *Orbit) View() mgl64.Mat4 {
	eye := o.Eye()
	return mgl64.LookAtV(eye, o.Target, o.upFor(eye))
}

// upFor swaps the up vector when the view direction is parallel to it.
func (o *Orbit) upFor(eye mgl64.Vec3) mgl64.Vec3 {
	dir := o.Target.Sub(eye)
	if dir.Len() < 1e-9 || dir.Cross(o.Up).Len() < 1e-9*dir.Len() {
		return mgl64.Vec3{0, 0, -1}
	}
	return o.Up
}

// Aspect returns width/height with the height clamped to at least one pixel.
func Aspect(width, height int) float64 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return float64(width) / float64(height)
}

// Projection returns the perspective projection for a viewport.
func (o *Orbit) Projection(width, height int) mgl64.Mat4 {
	return mgl64.Perspective(o.FieldOfView, Aspect(width, height), o.Near, o.Far)
}

// ViewProjection returns Projection * View.
func (o *Orbit) ViewProjection(width, height int) mgl64.Mat4 {
	return o.Projection(width, height).Mul4(o.View())
}

// SkyboxMatrix returns the inverse of the view-direction-projection matrix,
// the view with its translation removed. It maps clip space back to world
// directions for the background.
func (o *Orbit) SkyboxMatrix(width, height int) mgl64.Mat4 {
	dir := o.View()
	dir[12], dir[13], dir[14] = 0, 0, 0
	return o.Projection(width, height).Mul4(dir).Inv()
}
