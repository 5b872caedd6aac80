package raster

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/model"
)

// facingZ is one triangle in the XY plane winding toward +Z.
var facingZ = []model.Part{{
	Mesh: &model.Mesh{
		Positions: []mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}},
		Normals:   []mgl64.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		Indices:   []int{0, 1, 2},
	},
	Material: model.Material{Diffuse: color.NRGBA{255, 255, 255, 255}},
}}

func cameraAt(eye mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(90), 1, 0.1, 100).Mul4(mgl64.LookAtV(eye, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}))
}

func TestProject(t *testing.T) {
	x, y, w, ok := Project(mgl64.Ident4(), mgl64.Vec3{0, 0, 0}, 800, 600)
	if !ok || x != 400 || y != 300 || w != 1 {
		t.Errorf("Expected center (400, 300, 1), got (%f, %f, %f, %v)", x, y, w, ok)
	}
	x, y, _, _ = Project(mgl64.Ident4(), mgl64.Vec3{1, 1, 0}, 800, 600)
	if x != 800 || y != 0 {
		t.Errorf("Expected top right corner, got (%f, %f)", x, y)
	}

	vp := cameraAt(mgl64.Vec3{0, 0, 5})
	if _, _, _, ok := Project(vp, mgl64.Vec3{0, 0, 10}, 800, 600); ok {
		t.Error("Expected a point behind the camera to be rejected")
	}
}

func TestAddMeshCullsBackFaces(t *testing.T) {
	r := New()
	r.Reset(100, 100)

	front := mgl64.Vec3{0, 0, 5}
	r.AddMesh(mgl64.Ident4(), facingZ, Params{ViewProjection: cameraAt(front), Eye: front, Layer: 1})
	if r.Len() != 1 {
		t.Fatalf("Expected the front face to be kept, got %d triangles", r.Len())
	}

	back := mgl64.Vec3{0, 0, -5}
	r.AddMesh(mgl64.Ident4(), facingZ, Params{ViewProjection: cameraAt(back), Eye: back, Layer: 1})
	if r.Len() != 1 {
		t.Errorf("Expected the back face to be culled, got %d triangles", r.Len())
	}
}

func TestAddMeshShadowTexels(t *testing.T) {
	r := New()
	r.Reset(100, 100)
	eye := mgl64.Vec3{0, 0, 5}
	shadow := mgl64.Translate3D(0.5, 0.5, 0.5).Mul4(mgl64.Scale3D(0.5, 0.5, 0.5))

	r.AddMesh(mgl64.Ident4(), facingZ, Params{
		ViewProjection: cameraAt(eye),
		Eye:            eye,
		Shadow:         &shadow,
		ShadowSize:     64,
	})
	tris := r.Triangles()
	if len(tris) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(tris))
	}
	if tris[0].Source != SourceShadow {
		t.Error("Expected the triangle to sample the shadow map")
	}
	// (0, 1) maps to u=0.5, v=1, the top row of the map
	if v := tris[0].V[2]; v.U != 32 || v.V != 0.5 {
		t.Errorf("Expected texel (32, 0.5), got (%f, %f)", v.U, v.V)
	}
}

func TestShade(t *testing.T) {
	mat := model.Material{Diffuse: color.NRGBA{255, 255, 255, 255}}
	light := Light{Position: mgl64.Vec3{0, 10, 0}, Ambient: 0.2}

	r, _, _ := Shade(mat, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{}, light)
	if math.Abs(float64(r)-1) > 1e-6 {
		t.Errorf("Expected full light facing the light, got %f", r)
	}
	r, _, _ = Shade(mat, mgl64.Vec3{0, -1, 0}, mgl64.Vec3{}, light)
	if math.Abs(float64(r)-0.2) > 1e-6 {
		t.Errorf("Expected ambient facing away, got %f", r)
	}

	mat.Emissive = 1
	r, _, _ = Shade(mat, mgl64.Vec3{0, -1, 0}, mgl64.Vec3{}, light)
	if math.Abs(float64(r)-1) > 1e-6 {
		t.Errorf("Expected emissive to ignore light, got %f", r)
	}
}

func TestTrianglesOrder(t *testing.T) {
	r := New()
	r.Reset(10, 10)
	r.tris = []Triangle{
		{Layer: 1, Depth: 5},
		{Layer: 0, Depth: 1},
		{Layer: 1, Depth: 9},
		{Layer: 0, Depth: 7},
	}

	got := r.Triangles()
	want := []struct {
		layer int
		depth float64
	}{{0, 1}, {0, 7}, {1, 9}, {1, 5}}
	for i, w := range want {
		if got[i].Layer != w.layer || got[i].Depth != w.depth {
			t.Errorf("Position %d: expected layer %d depth %f, got layer %d depth %f", i, w.layer, w.depth, got[i].Layer, got[i].Depth)
		}
	}
}

func TestBatches(t *testing.T) {
	tris := []Triangle{
		{Source: SourceShadow},
		{Source: SourceShadow},
		{Source: SourceFlat},
		{Source: SourceFlat},
		{Source: SourceFlat},
	}

	batches := Batches(tris, 6)
	if len(batches) != 3 {
		t.Fatalf("Expected 3 batches, got %d", len(batches))
	}
	if batches[0].Source != SourceShadow || len(batches[0].Vertices) != 6 {
		t.Errorf("Expected a shadow batch of 6 vertices, got %v with %d", batches[0].Source, len(batches[0].Vertices))
	}
	if len(batches[1].Vertices) != 6 || len(batches[2].Vertices) != 3 {
		t.Errorf("Expected the flat run split 6+3, got %d+%d", len(batches[1].Vertices), len(batches[2].Vertices))
	}
	if got := batches[2].Indices; got[0] != 0 || got[2] != 2 {
		t.Errorf("Expected indices to restart per batch, got %v", got)
	}
}

func TestProjectSegmentDropsBehindCamera(t *testing.T) {
	vp := cameraAt(mgl64.Vec3{0, 0, 5})
	if _, _, _, _, ok := ProjectSegment(vp, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 100, 100); !ok {
		t.Error("Expected a visible segment")
	}
	if _, _, _, _, ok := ProjectSegment(vp, mgl64.Vec3{}, mgl64.Vec3{0, 0, 20}, 100, 100); ok {
		t.Error("Expected a segment crossing the camera to be dropped")
	}
}

func TestSkyRows(t *testing.T) {
	view := mgl64.LookAtV(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0})
	inv := mgl64.Perspective(mgl64.DegToRad(90), 1, 0.1, 100).Mul4(view).Inv()

	top, bottom := SkyRows(inv)
	if math.Abs(top-0.25) > 1e-6 || math.Abs(bottom-0.75) > 1e-6 {
		t.Errorf("Expected rows 0.25 and 0.75, got %f and %f", top, bottom)
	}
}
