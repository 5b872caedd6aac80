package pipeline

import (
	"errors"
	"testing"

	"chosenoffset.com/jumpman/internal/camera"
	"chosenoffset.com/jumpman/internal/config"
	"chosenoffset.com/jumpman/internal/render/lighting"
	"chosenoffset.com/jumpman/internal/scene"
)

type call struct {
	op       string
	pass     PassDesc
	program  Program
	kind     scene.Kind
	shadowed bool
	lines    int
}

type recordingDevice struct {
	calls []call
	err   error
}

func (d *recordingDevice) Capable() error { return d.err }

func (d *recordingDevice) BeginFramePass(pass PassDesc) {
	d.calls = append(d.calls, call{op: "begin", pass: pass})
}

func (d *recordingDevice) SubmitDraw(program Program, u Uniforms, item scene.DrawItem) {
	d.calls = append(d.calls, call{op: "draw", program: program, kind: item.Kind, shadowed: u.Shadowed, lines: len(u.Lines)})
}

func (d *recordingDevice) PresentFrame() {
	d.calls = append(d.calls, call{op: "present"})
}

func testFrame() Frame {
	return Frame{
		Items: []scene.DrawItem{
			{Kind: scene.KindPlatform, Receiver: true},
			{Kind: scene.KindCoin, Caster: true, Receiver: true},
			{Kind: scene.KindBody, Caster: true, Receiver: true},
		},
		Skybox: &scene.DrawItem{Kind: scene.KindSkybox},
		Camera: camera.NewOrbit(config.DefaultConfig().Camera),
		Width:  800,
		Height: 600,
	}
}

func TestRenderIssuesShadowThenCameraPass(t *testing.T) {
	light := lighting.NewManager(config.DefaultConfig().Light)
	dev := &recordingDevice{}
	New(light).Render(dev, testFrame())

	want := []call{
		{op: "begin", pass: PassDesc{Target: TargetShadowMap, Viewport: Viewport{512, 512}, Clear: true}},
		{op: "draw", program: ProgramDepth, kind: scene.KindCoin},
		{op: "draw", program: ProgramDepth, kind: scene.KindBody},
		{op: "begin", pass: PassDesc{Target: TargetScreen, Viewport: Viewport{800, 600}, Clear: true}},
		{op: "draw", program: ProgramSkybox, kind: scene.KindSkybox},
		{op: "draw", program: ProgramEnvironment, kind: scene.KindPlatform, shadowed: true},
		{op: "draw", program: ProgramEnvironment, kind: scene.KindCoin, shadowed: true},
		{op: "draw", program: ProgramEnvironment, kind: scene.KindBody, shadowed: true},
		{op: "present"},
	}
	if len(dev.calls) != len(want) {
		t.Fatalf("Expected %d calls, got %d: %+v", len(want), len(dev.calls), dev.calls)
	}
	for i := range want {
		if dev.calls[i] != want[i] {
			t.Errorf("Call %d: expected %+v, got %+v", i, want[i], dev.calls[i])
		}
	}
}

func TestRenderWithoutShadows(t *testing.T) {
	light := lighting.NewManager(config.DefaultConfig().Light)
	light.ToggleShadows()
	dev := &recordingDevice{}
	New(light).Render(dev, testFrame())

	for i, c := range dev.calls {
		if c.op == "begin" && c.pass.Target == TargetShadowMap {
			t.Errorf("Call %d: expected no shadow pass", i)
		}
		if c.shadowed {
			t.Errorf("Call %d: expected no shadowed draws", i)
		}
	}
	if last := dev.calls[len(dev.calls)-1]; last.op != "present" {
		t.Errorf("Expected the frame to end with present, got %s", last.op)
	}
}

func TestRenderFrustumLines(t *testing.T) {
	light := lighting.NewManager(config.DefaultConfig().Light)
	light.ToggleFrustum()
	dev := &recordingDevice{}
	New(light).Render(dev, testFrame())

	found := false
	for _, c := range dev.calls {
		if c.program == ProgramLines && c.op == "draw" {
			found = true
			if c.lines != 12 {
				t.Errorf("Expected 12 frustum edges, got %d", c.lines)
			}
		}
	}
	if !found {
		t.Error("Expected a lines draw with the frustum on")
	}
}

func TestCheckDevice(t *testing.T) {
	if err := CheckDevice(&recordingDevice{}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	err := CheckDevice(&recordingDevice{err: errors.New("no webgl")})
	if !errors.Is(err, ErrNoContext) {
		t.Errorf("Expected ErrNoContext, got %v", err)
	}
}
