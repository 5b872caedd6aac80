package menu

import (
	"testing"

	"chosenoffset.com/jumpman/internal/placeholders"
	"chosenoffset.com/jumpman/internal/render"
)

type fakeInput struct {
	just  map[render.Key]bool
	mouse bool
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool {
	return f.just[key]
}
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool {
	return f.just[key]
}
func (f *fakeInput) GetCursorPosition() (int, int) {
	return 0, 0
}
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool {
	return f.mouse
}

func press(in *fakeInput, keys ...render.Key) {
	in.just = map[render.Key]bool{}
	for _, k := range keys {
		in.just[k] = true
	}
}

func TestCycleColors(t *testing.T) {
	in := &fakeInput{}
	m := NewSelectMenu(placeholders.JumpmanColors, nil, in, 800, 600)

	if got := m.Selected().Name; got != "purple" {
		t.Errorf("Expected purple first, got %s", got)
	}

	press(in, render.KeyLeft)
	m.Update()
	if got := m.Selected().Name; got != "green" {
		t.Errorf("Expected Left to wrap to green, got %s", got)
	}

	press(in, render.KeyRight)
	m.Update()
	press(in, render.KeyRight)
	m.Update()
	if got := m.Selected().Name; got != "orange" {
		t.Errorf("Expected orange, got %s", got)
	}
}

func TestStartWithKeys(t *testing.T) {
	for _, key := range []render.Key{render.KeySpace, render.KeyEnter} {
		in := &fakeInput{}
		m := NewSelectMenu(placeholders.JumpmanColors, nil, in, 800, 600)

		press(in)
		if started, _ := m.Update(); started {
			t.Fatal("Expected no start without input")
		}
		press(in, key)
		started, c := m.Update()
		if !started || c.Name != "purple" {
			t.Errorf("Key %d: expected start with purple, got %v %s", key, started, c.Name)
		}
	}
}

func TestStartWithClickEdge(t *testing.T) {
	in := &fakeInput{mouse: true}
	m := NewSelectMenu(placeholders.JumpmanColors, nil, in, 800, 600)
	m.lastMouseClick = true // Button held since before the menu opened

	if started, _ := m.Update(); started {
		t.Error("Expected a held button not to start")
	}
	in.mouse = false
	m.Update()
	in.mouse = true
	if started, _ := m.Update(); !started {
		t.Error("Expected a fresh click to start")
	}
}

func TestEmptyMenu(t *testing.T) {
	m := NewSelectMenu(nil, nil, &fakeInput{}, 800, 600)
	if started, _ := m.Update(); started {
		t.Error("Expected an empty menu never to start")
	}
}
