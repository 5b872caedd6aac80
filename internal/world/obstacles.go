package world

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/collision"
)

// Obstacle is one slot of the scrolling obstacle wall.
type Obstacle struct {
	Position mgl64.Vec3
	Visible  bool
}

// Obstacles is the fixed-size wall of obstacles that scrolls toward the
// player. Exactly one slot is hidden per disposition; that is the gap.
type Obstacles struct {
	Items []Obstacle

	nearZ, farZ float64
	speed       float64
	rng         *rand.Rand

	boxes []collision.Box
}

// NewObstacles places one obstacle per lane at nearZ with gap hidden.
func NewObstacles(lanes []float64, height, nearZ, farZ, speed float64, gap int, rng *rand.Rand) Obstacles {
	o := Obstacles{
		Items: make([]Obstacle, len(lanes)),
		nearZ: nearZ,
		farZ:  farZ,
		speed: speed,
		rng:   rng,
		boxes: make([]collision.Box, len(lanes)),
	}
	for i, x := range lanes {
		o.Items[i] = Obstacle{
			Position: mgl64.Vec3{x, height, nearZ},
			Visible:  i != gap,
		}
	}
	return o
}

// Advance scrolls the wall one frame. When the lead obstacle has reached
// farZ the wall is redisposed instead and Advance returns true.
func (o *Obstacles) Advance() bool {
	if len(o.Items) == 0 {
		return false
	}
	if o.Items[0].Position[2] >= o.farZ {
		o.Redispose()
		return true
	}
	for i := range o.Items {
		o.Items[i].Position[2] += o.speed
	}
	return false
}

// Redispose resets every obstacle to nearZ and picks a new gap uniformly at
// random. The previous gap has no influence on the choice.
func (o *Obstacles) Redispose() {
	gap := o.rng.Intn(len(o.Items))
	for i := range o.Items {
		o.Items[i].Visible = i != gap
		o.Items[i].Position[2] = o.nearZ
	}
}

// Gap returns the index of the hidden slot, or -1 if every slot is visible.
func (o *Obstacles) Gap() int {
	for i, ob := range o.Items {
		if !ob.Visible {
			return i
		}
	}
	return -1
}

// Boxes returns the obstacles as hit-test candidates. The slice is reused
// between calls.
func (o *Obstacles) Boxes() []collision.Box {
	for i, ob := range o.Items {
		o.boxes[i] = collision.Box{Center: ob.Position, Active: ob.Visible}
	}
	return o.boxes
}
