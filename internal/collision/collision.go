// Package collision provides the ground-plane hit tests used by the world update.
// Every test works on (x, z); the vertical axis is ignored.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is an axis-aligned rectangle in the ground plane.
type Rect struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Inside reports whether (x, z) lies strictly inside the rectangle.
// Points on an edge count as outside so the boundary push kicks in.
func (r Rect) Inside(x, z float64) bool {
	return x > r.MinX && x < r.MaxX && z > r.MinZ && z < r.MaxZ
}

// Contain pushes pos toward the interior of bounds by step on every violated
// axis. It reports whether a correction was applied. The correction is
// gradual, never a snap, so a player one step outside needs one frame to come
// back and a player far outside takes several.
func Contain(pos mgl64.Vec3, bounds Rect, step float64) (mgl64.Vec3, bool) {
	if bounds.Inside(pos[0], pos[2]) {
		return pos, false
	}

	corrected := false
	if pos[2] <= bounds.MinZ {
		pos[2] += step
		corrected = true
	}
	if pos[2] >= bounds.MaxZ {
		pos[2] -= step
		corrected = true
	}
	if pos[0] <= bounds.MinX {
		pos[0] += step
		corrected = true
	}
	if pos[0] >= bounds.MaxX {
		pos[0] -= step
		corrected = true
	}
	return pos, corrected
}

// DistanceToRect is the planar distance from (x, z) to r, zero inside.
func DistanceToRect(x, z float64, r Rect) float64 {
	dx := math.Max(math.Max(r.MinX-x, 0), x-r.MaxX)
	dz := math.Max(math.Max(r.MinZ-z, 0), z-r.MaxZ)
	return math.Hypot(dx, dz)
}

// PlanarDistance is the Euclidean distance between a and b ignoring Y.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a[0]-b[0], a[2]-b[2])
}

// Box is an obstacle candidate for the hit test.
type Box struct {
	Center mgl64.Vec3
	Active bool
}

// ObstacleTest expands each obstacle into a rectangle and tests the player
// against it.
type ObstacleTest struct {
	ForwardMargin float64 // Half-extent on Z
	LateralMargin float64 // Half-extent on X
	HitDistance   float64 // Hit when the point-to-rectangle distance is below this
}

// Rect returns the hit rectangle around center.
func (t ObstacleTest) Rect(center mgl64.Vec3) Rect {
	return Rect{
		MinX: center[0] - t.LateralMargin,
		MaxX: center[0] + t.LateralMargin,
		MinZ: center[2] - t.ForwardMargin,
		MaxZ: center[2] + t.ForwardMargin,
	}
}

// FirstHit returns the index of the first active box the player touches.
// Only one hit is reported per call.
func (t ObstacleTest) FirstHit(pos mgl64.Vec3, boxes []Box) (int, bool) {
	for i, b := range boxes {
		if !b.Active {
			continue
		}
		if DistanceToRect(pos[0], pos[2], t.Rect(b.Center)) < t.HitDistance {
			return i, true
		}
	}
	return -1, false
}
