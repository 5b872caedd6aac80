package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/config"
)

func TestTextureMatrixMapsTargetToCenter(t *testing.T) {
	m := NewManager(config.DefaultConfig().Light)
	l := m.GetSpotLight()

	uv := mgl64.TransformCoordinate(l.Target, l.TextureMatrix())
	if math.Abs(uv[0]-0.5) > 1e-9 || math.Abs(uv[1]-0.5) > 1e-9 {
		t.Errorf("Expected the light target at the map center, got %v", uv)
	}
	if uv[2] <= 0 || uv[2] >= 1 {
		t.Errorf("Expected depth inside (0, 1), got %f", uv[2])
	}
}

func TestFrustumCornersSpanNearAndFar(t *testing.T) {
	l := NewManager(config.DefaultConfig().Light).GetSpotLight()
	corners := l.FrustumCorners()
	dir := l.Direction()

	for i, c := range corners {
		depth := c.Sub(l.Position).Dot(dir)
		want := l.Near
		if i >= 4 {
			want = l.Far
		}
		if math.Abs(depth-want) > 1e-6*want {
			t.Errorf("Corner %d: expected depth %f, got %f", i, want, depth)
		}
	}
}

func TestToggles(t *testing.T) {
	m := NewManager(config.DefaultConfig().Light)
	if !m.IsShadowsOn() {
		t.Fatal("Expected shadows on by default")
	}
	if m.ToggleShadows() || m.IsShadowsOn() {
		t.Error("Expected shadows off after toggle")
	}
	if !m.ToggleFrustum() || !m.IsFrustumOn() {
		t.Error("Expected frustum on after toggle")
	}
}

func TestViewHandlesVerticalLight(t *testing.T) {
	l := SpotLight{Position: mgl64.Vec3{0, 10, 0}, Angle: 60, Near: 1, Far: 50}
	for i, v := range l.View() {
		if math.IsNaN(v) {
			t.Fatalf("View element %d is NaN", i)
		}
	}
}
