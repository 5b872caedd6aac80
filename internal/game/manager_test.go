package game

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/model"
	"chosenoffset.com/jumpman/internal/placeholders"
	"chosenoffset.com/jumpman/internal/render"
	"chosenoffset.com/jumpman/internal/render/pipeline"
	"chosenoffset.com/jumpman/internal/scene"
)

type fakeInput struct {
	held map[render.Key]bool
	just map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[render.Key]bool{}, just: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool {
	return f.held[key]
}
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool {
	return f.just[key]
}
func (f *fakeInput) GetCursorPosition() (int, int) {
	return 0, 0
}
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool {
	return false
}

type fakeRenderer struct {
	texts []string
}

func (f *fakeRenderer) NewImage(width, height int) render.Image {
	return fakeImage{}
}
func (f *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}
func (f *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	f.texts = append(f.texts, text)
}
func (f *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 7, 14
}

type fakeImage struct{}

func (fakeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, 640, 480)
}
func (fakeImage) Size() (int, int) {
	return 640, 480
}
func (fakeImage) Fill(color.Color)                                 {}
func (fakeImage) Clear()                                           {}
func (fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (fakeImage) Dispose()                                         {}

type fakeDevice struct {
	err      error
	passes   []pipeline.Target
	draws    map[pipeline.Program]int
	presents int
	bound    int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{draws: map[pipeline.Program]int{}}
}

func (d *fakeDevice) Capable() error { return d.err }
func (d *fakeDevice) BeginFramePass(p pipeline.PassDesc) {
	d.passes = append(d.passes, p.Target)
}
func (d *fakeDevice) SubmitDraw(p pipeline.Program, _ pipeline.Uniforms, _ scene.DrawItem) {
	d.draws[p]++
}
func (d *fakeDevice) PresentFrame()         { d.presents++ }
func (d *fakeDevice) Bind(dst render.Image) { d.bound++ }

type testRig struct {
	m   *Manager
	in  *fakeInput
	dev *fakeDevice
	r   *fakeRenderer
	now float64
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	cfg := config.DefaultConfig()
	models, err := model.LoadAll(placeholders.NewLoader(cfg), placeholders.ModelNames()...)
	if err != nil {
		t.Fatalf("Expected models, got %v", err)
	}

	rig := &testRig{in: newFakeInput(), dev: newFakeDevice(), r: &fakeRenderer{}}
	m, err := NewManager(cfg, models, rig.r, rig.in, rig.dev, nil)
	if err != nil {
		t.Fatalf("Expected a manager, got %v", err)
	}
	m.SetClock(func() float64 { return rig.now })
	rig.m = m
	return rig
}

// step runs one host frame 50ms after the previous one.
func (rig *testRig) step(t *testing.T, just ...render.Key) {
	t.Helper()
	rig.now += 0.05
	rig.in.just = map[render.Key]bool{}
	for _, k := range just {
		rig.in.just[k] = true
	}
	if err := rig.m.Update(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	rig.m.Draw(fakeImage{})
}

func TestUpdateFailsWithoutDevice(t *testing.T) {
	rig := newTestRig(t)
	rig.dev.err = errors.New("no gpu")

	if err := rig.m.Update(); !errors.Is(err, pipeline.ErrNoContext) {
		t.Errorf("Expected ErrNoContext, got %v", err)
	}
}

func TestSelectThenPlay(t *testing.T) {
	rig := newTestRig(t)

	rig.step(t)
	if rig.m.State != StateSelect {
		t.Fatalf("Expected select, got %s", rig.m.State)
	}
	if rig.dev.presents != 1 {
		t.Errorf("Expected the preview rendered, got %d frames", rig.dev.presents)
	}

	rig.step(t, render.KeyRight)
	rig.step(t, render.KeySpace)
	if rig.m.State != StatePlaying || rig.m.Game == nil {
		t.Fatalf("Expected a running game, got %s", rig.m.State)
	}

	rig.in.held[render.KeyW] = true
	z := rig.m.Game.World.Player.Position[2]
	rig.step(t)
	if got := rig.m.Game.World.Player.Position[2]; got >= z {
		t.Errorf("Expected W to move forward from z=%f, got %f", z, got)
	}
	if rig.dev.draws[pipeline.ProgramDepth] == 0 {
		t.Error("Expected shadow casters in the frame")
	}
}

func TestShadowToggle(t *testing.T) {
	rig := newTestRig(t)
	rig.step(t, render.KeySpace)

	rig.step(t, render.KeyL)
	if rig.m.Lighting.IsShadowsOn() {
		t.Fatal("Expected L to turn shadows off")
	}

	before := rig.dev.draws[pipeline.ProgramDepth]
	rig.step(t)
	if rig.dev.draws[pipeline.ProgramDepth] != before {
		t.Error("Expected no shadow pass while shadows are off")
	}
}

func TestLightNudge(t *testing.T) {
	rig := newTestRig(t)
	rig.step(t, render.KeySpace)
	start := rig.m.Lighting.GetSpotLight()

	rig.in.held[render.KeyK] = true
	rig.in.held[render.KeyI] = true
	rig.step(t)
	got := rig.m.Lighting.GetSpotLight()
	want := start.Position.Add(mgl64.Vec3{0.1, 0, -0.1})
	if !got.Position.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("Expected the light at %v, got %v", want, got.Position)
	}
	if got.Target != start.Target {
		t.Errorf("Expected the target kept at %v, got %v", start.Target, got.Target)
	}

	// The light stays inside its box
	l := got
	l.Position[0] = 39.95
	rig.m.Lighting.SetSpotLight(l)
	rig.step(t)
	rig.step(t)
	if x := rig.m.Lighting.GetSpotLight().Position[0]; x != 40 {
		t.Errorf("Expected x clamped to 40, got %f", x)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	rig := newTestRig(t)
	rig.step(t, render.KeySpace)

	rig.m.Game.World.Score.Lives = 0
	rig.step(t)
	if rig.m.State != StateGameOver {
		t.Fatalf("Expected game over, got %s", rig.m.State)
	}

	found := false
	for _, text := range rig.r.texts {
		if text == "Game Over! coinPoint: 0" {
			found = true
		}
	}
	if !found {
		t.Error("Expected the final message on screen")
	}

	rig.step(t, render.KeySpace)
	if rig.m.State != StatePlaying {
		t.Fatalf("Expected a restarted game, got %s", rig.m.State)
	}
	if lives := rig.m.Game.World.Score.Lives; lives != 5 {
		t.Errorf("Expected 5 lives, got %d", lives)
	}
}

func TestEscapeReturnsToSelectThenQuits(t *testing.T) {
	rig := newTestRig(t)
	rig.step(t, render.KeySpace)

	rig.step(t, render.KeyEscape)
	if rig.m.State != StateSelect || rig.m.Game != nil {
		t.Fatalf("Expected select, got %s", rig.m.State)
	}

	rig.now += 0.05
	rig.in.just = map[render.Key]bool{render.KeyEscape: true}
	if err := rig.m.Update(); !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestMessagesFade(t *testing.T) {
	g := &Game{}
	g.AddMessage("hello")
	g.updateMessages(1)
	if len(g.Messages) != 1 {
		t.Fatalf("Expected the message kept, got %d", len(g.Messages))
	}
	g.updateMessages(1)
	if len(g.Messages) != 0 {
		t.Errorf("Expected the message gone, got %d", len(g.Messages))
	}
}
