// Package model defines the mesh data the scene hands to the renderer and the
// loader boundary that produces it.
package model

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list in model space.
type Mesh struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3 // One per position
	Indices   []int        // Three per triangle
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Material is the surface description of a part.
type Material struct {
	Diffuse   color.NRGBA
	Emissive  float64 // 0 lit normally, 1 ignores light
	Shininess float64
}

// Part is one geometry batch with its material.
type Part struct {
	Name     string
	Mesh     *Mesh
	Material Material
}

// Bounds is an axis-aligned box in model space.
type Bounds struct {
	Min, Max mgl64.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Model is a loaded drawable: its parts, the offset that recenters it on its
// origin and its extents.
type Model struct {
	Name   string
	Parts  []Part
	Offset mgl64.Vec3
	Bounds Bounds
}

// Loader loads models by name.
type Loader interface {
	LoadModel(name string) (*Model, error)
}

// ErrUnknownModel is returned by loaders for names they cannot provide.
var ErrUnknownModel = errors.New("unknown model")

// ComputeBounds returns the extents of every position in parts.
func ComputeBounds(parts []Part) Bounds {
	inf := math.Inf(1)
	b := Bounds{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
	empty := true
	for _, p := range parts {
		if p.Mesh == nil {
			continue
		}
		for _, v := range p.Mesh.Positions {
			empty = false
			for i := 0; i < 3; i++ {
				b.Min[i] = math.Min(b.Min[i], v[i])
				b.Max[i] = math.Max(b.Max[i], v[i])
			}
		}
	}
	if empty {
		return Bounds{}
	}
	return b
}

// New builds a model from parts, computing bounds and the offset that moves
// the bounds center to the origin.
func New(name string, parts []Part) *Model {
	b := ComputeBounds(parts)
	return &Model{
		Name:   name,
		Parts:  parts,
		Offset: b.Center().Mul(-1),
		Bounds: b,
	}
}

// LoadAll loads every named model. Loading stops at the first failure.
func LoadAll(l Loader, names ...string) (map[string]*Model, error) {
	models := make(map[string]*Model, len(names))
	for _, name := range names {
		m, err := l.LoadModel(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load model %s: %w", name, err)
		}
		models[name] = m
	}
	return models, nil
}
