package model

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type mapLoader map[string]*Model

func (l mapLoader) LoadModel(name string) (*Model, error) {
	m, ok := l[name]
	if !ok {
		return nil, ErrUnknownModel
	}
	return m, nil
}

func TestNewCentersOffset(t *testing.T) {
	mesh := &Mesh{Positions: []mgl64.Vec3{{0, 0, 0}, {4, 2, 0}, {0, 2, 6}}}
	m := New("wedge", []Part{{Mesh: mesh}})

	if m.Bounds.Min != (mgl64.Vec3{0, 0, 0}) || m.Bounds.Max != (mgl64.Vec3{4, 2, 6}) {
		t.Errorf("Expected bounds [0,0,0]-[4,2,6], got %v-%v", m.Bounds.Min, m.Bounds.Max)
	}
	if want := (mgl64.Vec3{-2, -1, -3}); m.Offset != want {
		t.Errorf("Expected offset %v, got %v", want, m.Offset)
	}
}

func TestComputeBoundsEmpty(t *testing.T) {
	if b := ComputeBounds(nil); b != (Bounds{}) {
		t.Errorf("Expected zero bounds, got %v", b)
	}
}

func TestLoadAllWrapsErrors(t *testing.T) {
	l := mapLoader{"coin": New("coin", nil)}

	models, err := LoadAll(l, "coin")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if models["coin"] == nil {
		t.Error("Expected the coin model")
	}

	_, err = LoadAll(l, "coin", "dragon")
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("Expected ErrUnknownModel, got %v", err)
	}
}
