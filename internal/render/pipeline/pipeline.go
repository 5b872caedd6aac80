// Package pipeline sequences the two render passes of a frame: the shadow
// pass from the light into an off-screen map, then the camera pass that
// samples it.
package pipeline

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/camera"
	"chosenoffset.com/jumpman/internal/render/lighting"
	"chosenoffset.com/jumpman/internal/scene"
)

// ErrNoContext means the host cannot provide a rendering context. It is
// fatal at startup.
var ErrNoContext = errors.New("rendering context unavailable")

// Program selects how a draw is shaded.
type Program int

const (
	ProgramDepth       Program = iota // Shadow map silhouette
	ProgramEnvironment                // Lit, optionally shadowed
	ProgramSkybox                     // Background from the inverse view-direction-projection
	ProgramLines                      // Unlit wireframe
)

func (p Program) String() string {
	switch p {
	case ProgramDepth:
		return "depth"
	case ProgramEnvironment:
		return "environment"
	case ProgramSkybox:
		return "skybox"
	case ProgramLines:
		return "lines"
	default:
		return "unknown"
	}
}

// Target is where a pass draws.
type Target int

const (
	TargetScreen Target = iota
	TargetShadowMap
)

// Viewport is a pass size in pixels.
type Viewport struct {
	Width, Height int
}

// PassDesc starts a pass.
type PassDesc struct {
	Target     Target
	Viewport   Viewport
	Clear      bool
	ClearColor color.NRGBA
}

// Uniforms are the per-draw shader inputs.
type Uniforms struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Eye        mgl64.Vec3 // Camera position

	LightPosition  mgl64.Vec3
	LightDirection mgl64.Vec3
	Ambient        float64

	// Shadowed is set for receivers when the shadow map is valid. TextureMatrix
	// maps world positions into it.
	Shadowed      bool
	TextureMatrix mgl64.Mat4

	Lines [][2]mgl64.Vec3 // ProgramLines segments in world space
}

// Device is the renderer boundary.
type Device interface {
	// Capable reports whether the device can render at all.
	Capable() error
	BeginFramePass(pass PassDesc)
	SubmitDraw(program Program, u Uniforms, item scene.DrawItem)
	PresentFrame()
}

// CheckDevice fails with ErrNoContext when dev cannot render.
func CheckDevice(dev Device) error {
	if err := dev.Capable(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoContext, err)
	}
	return nil
}

// Frame is everything drawn in one tick.
type Frame struct {
	Items      []scene.DrawItem
	Skybox     *scene.DrawItem // Optional background
	Camera     *camera.Orbit
	Width      int
	Height     int
	ClearColor color.NRGBA
}

// Pipeline issues the passes of a frame.
type Pipeline struct {
	light *lighting.Manager
}

// New creates a pipeline lit by light.
func New(light *lighting.Manager) *Pipeline {
	return &Pipeline{light: light}
}

// Render draws one frame. The shadow pass is skipped while shadows are off.
func (p *Pipeline) Render(dev Device, f Frame) {
	spot := p.light.GetSpotLight()
	shadows := p.light.IsShadowsOn()

	if shadows {
		size := p.light.GetShadowMapSize()
		dev.BeginFramePass(PassDesc{
			Target:   TargetShadowMap,
			Viewport: Viewport{size, size},
			Clear:    true,
		})
		u := Uniforms{
			View:           spot.View(),
			Projection:     spot.Projection(),
			Eye:            spot.Position,
			LightPosition:  spot.Position,
			LightDirection: spot.Direction(),
		}
		for _, item := range f.Items {
			if item.Caster {
				dev.SubmitDraw(ProgramDepth, u, item)
			}
		}
	}

	dev.BeginFramePass(PassDesc{
		Target:     TargetScreen,
		Viewport:   Viewport{f.Width, f.Height},
		Clear:      true,
		ClearColor: f.ClearColor,
	})

	u := Uniforms{
		View:           f.Camera.View(),
		Projection:     f.Camera.Projection(f.Width, f.Height),
		Eye:            f.Camera.Eye(),
		LightPosition:  spot.Position,
		LightDirection: spot.Direction(),
		Ambient:        p.light.GetAmbientLight(),
	}
	if shadows {
		u.TextureMatrix = spot.TextureMatrix()
	}

	if f.Skybox != nil {
		dev.SubmitDraw(ProgramSkybox, u, *f.Skybox)
	}
	for _, item := range f.Items {
		iu := u
		iu.Shadowed = shadows && item.Receiver
		dev.SubmitDraw(ProgramEnvironment, iu, item)
	}

	if p.light.IsFrustumOn() {
		lu := u
		lu.Lines = frustumLines(spot)
		dev.SubmitDraw(ProgramLines, lu, scene.DrawItem{World: mgl64.Ident4()})
	}

	dev.PresentFrame()
}

func frustumLines(l lighting.SpotLight) [][2]mgl64.Vec3 {
	corners := l.FrustumCorners()
	lines := make([][2]mgl64.Vec3, 0, len(lighting.FrustumEdges))
	for _, e := range lighting.FrustumEdges {
		lines = append(lines, [2]mgl64.Vec3{corners[e[0]], corners[e[1]]})
	}
	return lines
}
