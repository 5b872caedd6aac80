package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/locomotion"
	"chosenoffset.com/jumpman/internal/model"
	"chosenoffset.com/jumpman/internal/placeholders"
	"chosenoffset.com/jumpman/internal/world"
)

// Kind tags a draw item with the entity class it came from.
type Kind int

const (
	KindPlatform Kind = iota
	KindCoin
	KindObstacle
	KindBody
	KindFoot
	KindSkybox
)

func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindCoin:
		return "coin"
	case KindObstacle:
		return "obstacle"
	case KindBody:
		return "body"
	case KindFoot:
		return "foot"
	case KindSkybox:
		return "skybox"
	default:
		return "unknown"
	}
}

// ModelInstance is one placed copy of a loaded model.
type ModelInstance struct {
	Model     *model.Model
	Transform Transform
}

// DrawItem is what the renderer consumes for one entity.
type DrawItem struct {
	Kind     Kind
	World    mgl64.Mat4
	Parts    []model.Part
	Caster   bool // Drawn into the shadow map
	Receiver bool // Samples the shadow map
}

// Item composes the instance into a draw item.
func (mi ModelInstance) Item(kind Kind, caster, receiver bool) DrawItem {
	return DrawItem{
		Kind:     kind,
		World:    ComposeWorldTransform(mi.Transform),
		Parts:    mi.Model.Parts,
		Caster:   caster,
		Receiver: receiver,
	}
}

// Side selects a foot.
type Side int

const (
	Left Side = iota
	Right
)

// Composer builds draw items for every entity class.
type Composer struct {
	platform  *model.Model
	coin      *model.Model
	obstacle  *model.Model
	footLeft  *model.Model
	footRight *model.Model
	body      *model.Model

	models     map[string]*model.Model
	hipOffset  float64
	footSpread float64
}

// NewComposer checks that every model the scene needs was loaded.
// The body starts as the first jumpman color.
func NewComposer(models map[string]*model.Model, player config.PlayerConfig) (*Composer, error) {
	c := &Composer{
		models:     models,
		hipOffset:  player.HipOffset,
		footSpread: player.FootSpread,
	}

	required := []struct {
		name string
		dst  **model.Model
	}{
		{placeholders.ModelPlatform, &c.platform},
		{placeholders.ModelCoin, &c.coin},
		{placeholders.ModelObstacle, &c.obstacle},
		{placeholders.ModelFootLeft, &c.footLeft},
		{placeholders.ModelFootRight, &c.footRight},
	}
	for _, r := range required {
		m, ok := models[r.name]
		if !ok {
			return nil, fmt.Errorf("scene needs %s: %w", r.name, model.ErrUnknownModel)
		}
		*r.dst = m
	}

	if err := c.SelectBody(placeholders.JumpmanColors[0].Name); err != nil {
		return nil, err
	}
	return c, nil
}

// SelectBody switches the jumpman body to the named color.
func (c *Composer) SelectBody(colorName string) error {
	name := placeholders.BodyModel(colorName)
	m, ok := c.models[name]
	if !ok {
		return fmt.Errorf("scene body %s: %w", name, model.ErrUnknownModel)
	}
	c.body = m
	return nil
}

// Body places the jumpman body. The hip lift is applied to a copy of the
// feet-level position; p is never modified.
func (c *Composer) Body(p world.Player) DrawItem {
	pos := p.Position
	pos[1] += c.hipOffset
	return ModelInstance{
		Model: c.body,
		Transform: Transform{
			Position: pos,
			Offset:   c.body.Offset,
			Scale:    p.Scale,
			Yaw:      p.Yaw,
			Tilt:     p.Sway,
			TiltAxis: mgl64.Vec3{0, 0, 1},
		},
	}.Item(KindBody, true, false)
}

// Foot places one foot at the un-raised position.
func (c *Composer) Foot(p world.Player, f locomotion.Foot, side Side) DrawItem {
	m := c.footLeft
	dispose := mgl64.Vec3{c.footSpread, 0, 0}
	if side == Right {
		m = c.footRight
		dispose[0] = -c.footSpread
	}
	return ModelInstance{
		Model: m,
		Transform: Transform{
			Position: p.Position,
			Offset:   m.Offset,
			Dispose:  dispose,
			Yaw:      p.Yaw,
			Step:     f.Step,
			Tilt:     f.Rotation,
			TiltAxis: mgl64.Vec3{1, 0, 0},
		},
	}.Item(KindFoot, true, false)
}

// Coin places a coin spinning about Y by time (seconds, one radian each).
func (c *Composer) Coin(pos mgl64.Vec3, time float64) DrawItem {
	return ModelInstance{
		Model: c.coin,
		Transform: Transform{
			Position: pos,
			Offset:   c.coin.Offset,
			Yaw:      mgl64.RadToDeg(time),
		},
	}.Item(KindCoin, true, false)
}

// Obstacle places an obstacle block.
func (c *Composer) Obstacle(pos mgl64.Vec3) DrawItem {
	return ModelInstance{
		Model:     c.obstacle,
		Transform: Transform{Position: pos, Offset: c.obstacle.Offset},
	}.Item(KindObstacle, true, false)
}

// Platform places the level slab.
func (c *Composer) Platform() DrawItem {
	return ModelInstance{
		Model:     c.platform,
		Transform: Transform{Offset: c.platform.Offset},
	}.Item(KindPlatform, false, true)
}

// Preview is the select-scene jumpman spinning about the world Y axis.
func (c *Composer) Preview(time float64) []DrawItem {
	spin := mgl64.RadToDeg(time)
	body := ModelInstance{
		Model: c.body,
		Transform: Transform{
			Yaw:  spin,
			Step: c.body.Offset,
		},
	}.Item(KindBody, true, false)

	feet := make([]DrawItem, 0, 2)
	for _, side := range []Side{Right, Left} {
		m, x := c.footLeft, c.footSpread
		if side == Right {
			m, x = c.footRight, -c.footSpread
		}
		feet = append(feet, ModelInstance{
			Model: m,
			Transform: Transform{
				Position: mgl64.Vec3{0, -c.hipOffset, 0},
				Yaw:      spin,
				Step:     m.Offset.Add(mgl64.Vec3{x, 0, 0}),
			},
		}.Item(KindFoot, true, false))
	}
	return append([]DrawItem{body}, feet...)
}

// Skybox wraps the inverse view-direction-projection matrix.
func (c *Composer) Skybox(inverse mgl64.Mat4) DrawItem {
	return DrawItem{Kind: KindSkybox, World: inverse}
}

// Build collects every visible entity of the game scene. Hit coins and the
// gap obstacle are skipped.
func (c *Composer) Build(s *world.State, time float64) []DrawItem {
	items := make([]DrawItem, 0, 4+len(s.Coins.Items)+len(s.Obstacles.Items))
	items = append(items, c.Platform())

	for _, coin := range s.Coins.Items {
		if !coin.Hit {
			items = append(items, c.Coin(coin.Position, time))
		}
	}
	for _, ob := range s.Obstacles.Items {
		if ob.Visible {
			items = append(items, c.Obstacle(ob.Position))
		}
	}

	pose := s.Pose()
	items = append(items,
		c.Body(s.Player),
		c.Foot(s.Player, pose.Right, Right),
		c.Foot(s.Player, pose.Left, Left),
	)
	return items
}
