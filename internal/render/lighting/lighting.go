package lighting

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/config"
)

// SpotLight is the shadow-casting light of the scene
type SpotLight struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Angle    float64 // Cone angle in degrees
	Near     float64
	Far      float64
	Color    color.NRGBA
}

// shadowBias maps clip space [-1, 1] into texture space [0, 1].
var shadowBias = mgl64.Translate3D(0.5, 0.5, 0.5).Mul4(mgl64.Scale3D(0.5, 0.5, 0.5))

// View returns the light's world-to-view matrix.
func (l SpotLight) View() mgl64.Mat4 {
	up := mgl64.Vec3{0, 1, 0}
	dir := l.Target.Sub(l.Position)
	if dir.Cross(up).Len() < 1e-9 {
		up = mgl64.Vec3{0, 0, -1}
	}
	return mgl64.LookAtV(l.Position, l.Target, up)
}

// Projection returns the light's square perspective projection.
func (l SpotLight) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(l.Angle), 1, l.Near, l.Far)
}

// ViewProjection returns Projection * View.
func (l SpotLight) ViewProjection() mgl64.Mat4 {
	return l.Projection().Mul4(l.View())
}

// TextureMatrix maps world positions to shadow-map coordinates:
// bias * projection * view.
func (l SpotLight) TextureMatrix() mgl64.Mat4 {
	return shadowBias.Mul4(l.ViewProjection())
}

// Direction returns the normalized direction the light points in.
func (l SpotLight) Direction() mgl64.Vec3 {
	d := l.Target.Sub(l.Position)
	if d.Len() == 0 {
		return mgl64.Vec3{0, -1, 0}
	}
	return d.Normalize()
}

// FrustumCorners returns the eight world-space corners of the light frustum,
// near plane first.
func (l SpotLight) FrustumCorners() [8]mgl64.Vec3 {
	inv := l.ViewProjection().Inv()
	var out [8]mgl64.Vec3
	i := 0
	for _, z := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, x := range []float64{-1, 1} {
				out[i] = mgl64.TransformCoordinate(mgl64.Vec3{x, y, z}, inv)
				i++
			}
		}
	}
	return out
}

// FrustumEdges are index pairs into FrustumCorners forming the wireframe.
var FrustumEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // Near
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // Far
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Sides
}

// Manager holds the scene light and the shadow toggles
type Manager struct {
	spot         SpotLight
	ambientLight float64 // Light level of unlit and shadowed surfaces (0.0 to 1.0)
	shadowsOn    bool
	frustumOn    bool
	mapSize      int
}

// NewManager creates a lighting manager from the light config
func NewManager(cfg config.LightConfig) *Manager {
	return &Manager{
		spot: SpotLight{
			Position: mgl64.Vec3(cfg.Position),
			Target:   mgl64.Vec3(cfg.Target),
			Angle:    cfg.Angle,
			Near:     cfg.Near,
			Far:      cfg.Far,
			Color:    color.NRGBA{255, 255, 255, 255},
		},
		ambientLight: cfg.Ambient,
		shadowsOn:    cfg.Shadows,
		frustumOn:    cfg.Frustum,
		mapSize:      cfg.MapSize,
	}
}

// GetSpotLight returns the scene light
func (m *Manager) GetSpotLight() SpotLight {
	return m.spot
}

// SetSpotLight replaces the scene light
func (m *Manager) SetSpotLight(l SpotLight) {
	m.spot = l
}

// GetAmbientLight returns the current ambient light level
func (m *Manager) GetAmbientLight() float64 {
	return m.ambientLight
}

// ToggleShadows flips the shadow pass on or off and returns the new state
func (m *Manager) ToggleShadows() bool {
	m.shadowsOn = !m.shadowsOn
	return m.shadowsOn
}

// IsShadowsOn returns whether the shadow pass runs
func (m *Manager) IsShadowsOn() bool {
	return m.shadowsOn
}

// ToggleFrustum flips the light frustum wireframe and returns the new state
func (m *Manager) ToggleFrustum() bool {
	m.frustumOn = !m.frustumOn
	return m.frustumOn
}

// IsFrustumOn returns whether the light frustum is drawn
func (m *Manager) IsFrustumOn() bool {
	return m.frustumOn
}

// GetShadowMapSize returns the shadow texture edge in pixels
func (m *Manager) GetShadowMapSize() int {
	return m.mapSize
}
