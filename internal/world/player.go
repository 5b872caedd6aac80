package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/input"
)

// Facing yaws in degrees.
const (
	YawBack         = 0.0
	YawBackRight    = 45.0
	YawRight        = 90.0
	YawForwardRight = 135.0
	YawForward      = 180.0
	YawForwardLeft  = 225.0
	YawLeft         = 270.0
	YawBackLeft     = 315.0
)

// Player is the jumpman's physical state in the world.
type Player struct {
	Position mgl64.Vec3 // Feet level
	Yaw      float64    // Degrees, one of the eight facing values
	Scale    mgl64.Vec3
	Sway     float64 // Lateral body sway in degrees, from the walk cycle
}

// Move applies one frame of held movement keys.
// Each key moves the player speed units along its axis and sets the facing;
// two adjacent keys override the facing with the diagonal. With no keys held
// the yaw is left as it was.
func (p *Player) Move(keys input.MoveKeys, speed float64) {
	if keys.Left {
		p.Position[0] -= speed
		p.Yaw = YawLeft
	}
	if keys.Forward {
		p.Position[2] -= speed
		p.Yaw = YawForward
	}
	if keys.Back {
		p.Position[2] += speed
		p.Yaw = YawBack
	}
	if keys.Right {
		p.Position[0] += speed
		p.Yaw = YawRight
	}

	if keys.Forward && keys.Left {
		p.Yaw = YawForwardLeft
	}
	if keys.Back && keys.Left {
		p.Yaw = YawBackLeft
	}
	if keys.Back && keys.Right {
		p.Yaw = YawBackRight
	}
	if keys.Right && keys.Forward {
		p.Yaw = YawForwardRight
	}
}
