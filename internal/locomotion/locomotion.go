// Package locomotion drives the jumpman's walk cycle.
//
// Each foot cycles Behind -> OnPosition -> Ahead -> OnPosition -> Behind.
// The right foot runs the same cycle in the opposite order, and wasBehind
// tells both feet which way to leave OnPosition so they never reach Ahead
// together.
package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Phase is a foot's position in the walk cycle.
type Phase int

const (
	Behind Phase = iota
	OnPosition
	Ahead
)

func (p Phase) String() string {
	switch p {
	case Behind:
		return "behind"
	case OnPosition:
		return "on-position"
	case Ahead:
		return "ahead"
	default:
		return "unknown"
	}
}

// DefaultInterval is the minimum animation time between two transitions.
const DefaultInterval = 0.05

// Foot pose angles and the body sway, in degrees.
const (
	liftRotation  = 340.0
	plantRotation = 20.0
	swayAngle     = 5.0
)

// Foot is one foot's phase and the pose that goes with it.
type Foot struct {
	Phase    Phase
	Rotation float64    // Degrees about the foot's X axis
	Step     mgl64.Vec3 // Offset applied after the body yaw
}

// Pose is everything the transform composition needs from the walk cycle.
type Pose struct {
	Left  Foot
	Right Foot
	Sway  float64 // Degrees about the body's Z axis
}

// Machine is the two-foot walk cycle.
type Machine struct {
	interval float64

	left, right Foot
	sway        float64
	wasBehind   bool

	lastTransition float64
}

// New creates a machine at rest with both feet on position.
func New(interval float64) *Machine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	m := &Machine{interval: interval}
	m.rest()
	return m
}

// Step advances the cycle to animation time now (seconds).
// Nothing happens until interval has elapsed since the last transition.
// When moving, both feet advance one phase and Step returns true. When idle,
// the feet snap back to the rest pose without consuming the interval.
func (m *Machine) Step(now float64, moving bool) bool {
	if math.Abs(now-m.lastTransition) < m.interval {
		return false
	}

	if !moving {
		m.rest()
		return false
	}

	m.lastTransition = now
	m.advanceLeft()
	m.advanceRight()
	return true
}

// Pose returns the current foot and sway pose.
func (m *Machine) Pose() Pose {
	return Pose{Left: m.left, Right: m.right, Sway: m.sway}
}

// WasBehind reports which way the feet will leave OnPosition next.
func (m *Machine) WasBehind() bool {
	return m.wasBehind
}

func (m *Machine) rest() {
	m.left = Foot{Phase: OnPosition}
	m.right = Foot{Phase: OnPosition}
	m.sway = 0
	// Restart from left behind, right ahead
	m.wasBehind = false
}

func (m *Machine) advanceLeft() {
	switch m.left.Phase {
	case Behind:
		m.left = Foot{Phase: OnPosition, Rotation: liftRotation, Step: mgl64.Vec3{0, 0, 0.1}}
		m.wasBehind = true
		m.sway = -swayAngle
	case OnPosition:
		next := Behind
		if m.wasBehind {
			next = Ahead
		}
		m.left = Foot{Phase: next}
		m.sway = 0
	case Ahead:
		m.left = Foot{Phase: OnPosition, Rotation: plantRotation, Step: mgl64.Vec3{0.1, 0, -0.2}}
		m.wasBehind = false
		m.sway = swayAngle
	}
}

// advanceRight mirrors advanceLeft and reads wasBehind after the left foot
// has updated it.
func (m *Machine) advanceRight() {
	switch m.right.Phase {
	case Behind:
		m.right = Foot{Phase: OnPosition, Rotation: liftRotation, Step: mgl64.Vec3{0, 0.1, 0.2}}
	case OnPosition:
		next := Ahead
		if m.wasBehind {
			next = Behind
		}
		m.right = Foot{Phase: next}
	case Ahead:
		m.right = Foot{Phase: OnPosition, Rotation: plantRotation, Step: mgl64.Vec3{0, 0.1, -0.2}}
	}
}
