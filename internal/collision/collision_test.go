package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var platform = Rect{MinX: -12.39, MaxX: 13.49, MinZ: -23.60, MaxZ: 20.30}

func TestContainInsideIsUntouched(t *testing.T) {
	pos := mgl64.Vec3{0, 0.5, 12}
	got, corrected := Contain(pos, platform, 0.1)
	if corrected {
		t.Error("Expected no correction inside the platform")
	}
	if got != pos {
		t.Errorf("Expected %v, got %v", pos, got)
	}
}

func TestContainPushesBackOneStep(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl64.Vec3
		want mgl64.Vec3
	}{
		{"min x", mgl64.Vec3{platform.MinX - 1, 0.5, 0}, mgl64.Vec3{platform.MinX - 0.9, 0.5, 0}},
		{"max x", mgl64.Vec3{platform.MaxX + 1, 0.5, 0}, mgl64.Vec3{platform.MaxX + 0.9, 0.5, 0}},
		{"min z", mgl64.Vec3{0, 0.5, platform.MinZ - 1}, mgl64.Vec3{0, 0.5, platform.MinZ - 0.9}},
		{"max z", mgl64.Vec3{0, 0.5, platform.MaxZ + 1}, mgl64.Vec3{0, 0.5, platform.MaxZ + 0.9}},
		{"corner", mgl64.Vec3{platform.MaxX + 1, 0.5, platform.MinZ - 1}, mgl64.Vec3{platform.MaxX + 0.9, 0.5, platform.MinZ - 0.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, corrected := Contain(tt.pos, platform, 0.1)
			if !corrected {
				t.Fatal("Expected a correction")
			}
			if !got.ApproxEqualThreshold(tt.want, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			// Still on the violated side: no overshoot
			if got[0] > platform.MaxX+1 || got[0] < platform.MinX-1 {
				t.Errorf("Correction moved away from the platform: %v", got)
			}
		})
	}
}

func TestContainNeverOvershoots(t *testing.T) {
	narrow := Rect{MinX: 0, MaxX: 0.05, MinZ: -10, MaxZ: 10}
	got, _ := Contain(mgl64.Vec3{-0.01, 0, 0}, narrow, 0.02)
	if got[0] >= narrow.MaxX {
		t.Errorf("Expected correction to stay short of the far edge, got x=%f", got[0])
	}
}

func TestDistanceToRect(t *testing.T) {
	r := Rect{MinX: -1, MaxX: 1, MinZ: -3, MaxZ: 3}

	tests := []struct {
		x, z float64
		want float64
	}{
		{0, 0, 0},
		{1, 3, 0},
		{4, 0, 3},
		{0, -5, 2},
		{4, 7, 5},
	}
	for _, tt := range tests {
		if got := DistanceToRect(tt.x, tt.z, r); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DistanceToRect(%f, %f): expected %f, got %f", tt.x, tt.z, tt.want, got)
		}
	}
}

func TestPlanarDistanceIgnoresHeight(t *testing.T) {
	a := mgl64.Vec3{0, 100, 0}
	b := mgl64.Vec3{3, -50, 4}
	if got := PlanarDistance(a, b); got != 5 {
		t.Errorf("Expected 5, got %f", got)
	}
}

func TestFirstHit(t *testing.T) {
	test := ObstacleTest{ForwardMargin: 3, LateralMargin: 0.5, HitDistance: 2}
	boxes := []Box{
		{Center: mgl64.Vec3{-10, 2.7, 0}, Active: true},
		{Center: mgl64.Vec3{-3, 2.7, 0}, Active: false},
		{Center: mgl64.Vec3{4, 2.7, 0}, Active: true},
		{Center: mgl64.Vec3{4.5, 2.7, 0}, Active: true},
	}

	if _, hit := test.FirstHit(mgl64.Vec3{-3, 0.5, 0}, boxes); hit {
		t.Error("Expected inactive obstacle to be ignored")
	}

	idx, hit := test.FirstHit(mgl64.Vec3{5, 0.5, 4}, boxes)
	if !hit {
		t.Fatal("Expected a hit near the third obstacle")
	}
	if idx != 2 {
		t.Errorf("Expected first match index 2, got %d", idx)
	}

	// Distance exactly at the threshold is not a hit
	if _, hit := test.FirstHit(mgl64.Vec3{-10, 0.5, 5}, boxes); hit {
		t.Error("Expected no hit at exactly the hit distance")
	}
}
