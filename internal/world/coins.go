package world

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/collision"
)

// Coin is a collectible spinning above the platform.
type Coin struct {
	Position mgl64.Vec3
	Hit      bool
}

// Coins is the current coin set. Once every coin has been picked up the set
// is regenerated at random spots on the platform.
type Coins struct {
	Items []Coin

	count        int
	height       float64
	pickupRadius float64
	bounds       collision.Rect
	rng          *rand.Rand
}

// NewCoins starts with the given positions. count is the size of every
// regenerated set.
func NewCoins(initial [][3]float64, count int, height, pickupRadius float64, bounds collision.Rect, rng *rand.Rand) Coins {
	c := Coins{
		count:        count,
		height:       height,
		pickupRadius: pickupRadius,
		bounds:       bounds,
		rng:          rng,
	}
	for _, p := range initial {
		c.Items = append(c.Items, Coin{Position: mgl64.Vec3(p)})
	}
	if len(c.Items) == 0 {
		c.Regenerate()
	}
	return c
}

// AllHit reports whether every coin in the set has been picked up.
func (c *Coins) AllHit() bool {
	for _, coin := range c.Items {
		if !coin.Hit {
			return false
		}
	}
	return true
}

// Collect marks every coin within the pickup radius of pos and returns how
// many were picked up. A completed set is regenerated before and after the
// pickup check; regenerated reports whether that happened.
func (c *Coins) Collect(pos mgl64.Vec3) (picked int, regenerated bool) {
	if c.AllHit() {
		c.Regenerate()
		regenerated = true
	}

	for i := range c.Items {
		if c.Items[i].Hit {
			continue
		}
		if collision.PlanarDistance(c.Items[i].Position, pos) < c.pickupRadius {
			c.Items[i].Hit = true
			picked++
		}
	}

	if picked > 0 && c.AllHit() {
		c.Regenerate()
		regenerated = true
	}
	return picked, regenerated
}

// Regenerate replaces the set with count fresh coins at uniformly random
// positions inside the platform bounds.
func (c *Coins) Regenerate() {
	c.Items = c.Items[:0]
	for i := 0; i < c.count; i++ {
		x := c.bounds.MinX + c.rng.Float64()*(c.bounds.MaxX-c.bounds.MinX)
		z := c.bounds.MinZ + c.rng.Float64()*(c.bounds.MaxZ-c.bounds.MinZ)
		c.Items = append(c.Items, Coin{Position: mgl64.Vec3{x, c.height, z}})
	}
}
