package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/input"
)

func newTestOrbit() *Orbit {
	return NewOrbit(config.DefaultConfig().Camera)
}

func TestDefaultEye(t *testing.T) {
	o := newTestOrbit()
	eye := o.Eye()
	want := mgl64.Vec3{0, 20 * math.Sin(math.Pi/4), 20 * math.Cos(math.Pi/4)}
	if !eye.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("Expected eye %v, got %v", want, eye)
	}
	if got := eye.Len(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Expected distance 20, got %f", got)
	}
}

func TestZoomIsClamped(t *testing.T) {
	o := newTestOrbit()

	in := input.State{Zoom: input.ZoomKeys{In: true}}
	o.Apply(in)
	if o.Distance != 19 {
		t.Errorf("Expected distance 19, got %f", o.Distance)
	}
	for i := 0; i < 100; i++ {
		o.Apply(in)
	}
	if o.Distance != o.MinDistance {
		t.Errorf("Expected distance clamped to %f, got %f", o.MinDistance, o.Distance)
	}

	out := input.State{Zoom: input.ZoomKeys{Out: true}}
	for i := 0; i < 500; i++ {
		o.Apply(out)
	}
	if o.Distance != o.MaxDistance {
		t.Errorf("Expected distance clamped to %f, got %f", o.MaxDistance, o.Distance)
	}
}

func TestDragRotates(t *testing.T) {
	o := newTestOrbit()
	theta, phi := o.Theta, o.Phi

	o.Apply(input.State{Drag: input.PointerDrag{Active: true, DeltaX: 0.1, DeltaY: -0.2}})
	if math.Abs(o.Theta-(theta+0.1)) > 1e-12 {
		t.Errorf("Expected theta %f, got %f", theta+0.1, o.Theta)
	}
	if math.Abs(o.Phi-(phi-0.2)) > 1e-12 {
		t.Errorf("Expected phi %f, got %f", phi-0.2, o.Phi)
	}

	// Deltas without an active drag are ignored
	o.Apply(input.State{Drag: input.PointerDrag{DeltaX: 1}})
	if math.Abs(o.Theta-(theta+0.1)) > 1e-12 {
		t.Errorf("Expected theta unchanged, got %f", o.Theta)
	}
}

func TestAspectClampsZeroHeight(t *testing.T) {
	if got := Aspect(800, 0); got != 800 {
		t.Errorf("Expected 800, got %f", got)
	}
	if got := Aspect(0, 0); got != 1 {
		t.Errorf("Expected 1, got %f", got)
	}

	o := newTestOrbit()
	m := o.Projection(640, 0)
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Projection element %d is not finite: %f", i, v)
		}
	}
}

func TestViewStaysFiniteWhenLookingAlongUp(t *testing.T) {
	o := newTestOrbit()
	o.Theta = math.Pi / 2
	o.Phi = math.Pi / 2 // Eye straight above the target

	m := o.View()
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("View element %d is not finite: %f", i, v)
		}
	}
}

func TestSkyboxMatrixIgnoresDistance(t *testing.T) {
	o := newTestOrbit()
	a := o.SkyboxMatrix(800, 600)
	o.Distance = 50
	b := o.SkyboxMatrix(800, 600)
	if !a.ApproxEqualThreshold(b, 1e-9) {
		t.Error("Expected the skybox matrix to depend on direction only")
	}
}
