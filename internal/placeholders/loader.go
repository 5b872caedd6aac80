// Package placeholders builds procedural stand-in models and textures so the
// game runs without any art assets.
package placeholders

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/model"
)

// Model names served by the Loader.
const (
	ModelPlatform  = "platform"
	ModelCoin      = "coin"
	ModelObstacle  = "obstacle"
	ModelFootLeft  = "foot-left"
	ModelFootRight = "foot-right"

	bodyPrefix = "body-"

	platformCells = 16
)

// BodyModel returns the model name of the jumpman body in the given color.
func BodyModel(colorName string) string {
	return bodyPrefix + colorName
}

// ModelNames returns every model the game preloads.
func ModelNames() []string {
	names := []string{ModelPlatform, ModelCoin, ModelObstacle, ModelFootLeft, ModelFootRight}
	for _, c := range JumpmanColors {
		names = append(names, BodyModel(c.Name))
	}
	return names
}

// Loader serves procedural meshes sized for a level config.
type Loader struct {
	cfg *config.Config
}

// NewLoader creates a loader for the level described by cfg.
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{cfg: cfg}
}

// LoadModel builds the named model.
func (l *Loader) LoadModel(name string) (*model.Model, error) {
	switch name {
	case ModelPlatform:
		return l.platform(), nil
	case ModelCoin:
		return anchored(name, []model.Part{{
			Name:     "coin",
			Mesh:     Cylinder(0.6, 0.15, 20),
			Material: model.Material{Diffuse: ColorPalette.Coin, Shininess: 80},
		}}), nil
	case ModelObstacle:
		h := l.cfg.Obstacles.Height
		return anchored(name, []model.Part{{
			Name:     "block",
			Mesh:     Box(mgl64.Vec3{-0.5, -h, -1}, mgl64.Vec3{0.5, h, 1}),
			Material: model.Material{Diffuse: ColorPalette.Obstacle},
		}}), nil
	case ModelFootLeft, ModelFootRight:
		return anchored(name, []model.Part{{
			Name:     "shoe",
			Mesh:     Box(mgl64.Vec3{-0.18, -0.5, -0.45}, mgl64.Vec3{0.18, -0.2, 0.25}),
			Material: model.Material{Diffuse: ColorPalette.Foot},
		}}), nil
	}

	if colorName, ok := strings.CutPrefix(name, bodyPrefix); ok {
		for _, c := range JumpmanColors {
			if c.Name == colorName {
				return l.body(name, c), nil
			}
		}
	}
	return nil, fmt.Errorf("placeholder %q: %w", name, model.ErrUnknownModel)
}

// platform is a slab with its top face at y=0 covering the walkable bounds.
func (l *Loader) platform() *model.Model {
	p := l.cfg.Platform
	halfX := (p.MaxX - p.MinX) / 2
	halfZ := (p.MaxZ - p.MinZ) / 2
	m := model.New(ModelPlatform, []model.Part{
		{
			Name:     "slab",
			Mesh:     Box(mgl64.Vec3{-halfX, -0.5, -halfZ}, mgl64.Vec3{halfX, 0.5, halfZ}),
			Material: model.Material{Diffuse: ColorPalette.PlatformGrid},
		},
		{
			Name:     "top",
			Mesh:     Grid(-halfX, halfX, -halfZ, halfZ, 0.5, platformCells, platformCells*2),
			Material: model.Material{Diffuse: ColorPalette.Platform},
		},
	})
	m.Offset = mgl64.Vec3{p.MinX + halfX, -0.5, p.MinZ + halfZ}
	return m
}

// body is modelled around the hip: torso, arms and head.
func (l *Loader) body(name string, c JumpmanColor) *model.Model {
	suit := model.Material{Diffuse: c.Color, Shininess: 20}
	return anchored(name, []model.Part{
		{Name: "legs", Mesh: Box(mgl64.Vec3{-0.45, -2.0, -0.25}, mgl64.Vec3{0.45, 0, 0.25}), Material: model.Material{Diffuse: Darken(c.Color, 0.6)}},
		{Name: "torso", Mesh: Box(mgl64.Vec3{-0.6, 0, -0.35}, mgl64.Vec3{0.6, 1.6, 0.35}), Material: suit},
		{Name: "arm-left", Mesh: Box(mgl64.Vec3{0.6, 0.3, -0.2}, mgl64.Vec3{0.9, 1.5, 0.2}), Material: suit},
		{Name: "arm-right", Mesh: Box(mgl64.Vec3{-0.9, 0.3, -0.2}, mgl64.Vec3{-0.6, 1.5, 0.2}), Material: suit},
		{Name: "head", Mesh: Sphere(mgl64.Vec3{0, 2.1, 0}, 0.5, 8, 12), Material: model.Material{Diffuse: ColorPalette.Head}},
	})
}

// anchored builds a model that is already modelled around its origin.
func anchored(name string, parts []model.Part) *model.Model {
	m := model.New(name, parts)
	m.Offset = mgl64.Vec3{}
	return m
}
