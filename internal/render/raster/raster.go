// Package raster projects lit meshes into painter-ordered screen triangles.
// It holds no graphics state; a backend only has to fill the triangles.
package raster

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/model"
)

// MaxBatchVertices keeps every batch addressable with uint16 indices.
const MaxBatchVertices = 65000

// minClipW rejects vertices on or behind the camera plane.
const minClipW = 1e-3

// Source selects the image a triangle samples.
type Source int

const (
	SourceFlat   Source = iota // Solid vertex color
	SourceShadow               // Vertex color times the shadow map
)

// Vertex is a screen-space vertex. U and V are shadow map pixels.
type Vertex struct {
	X, Y       float32
	U, V       float32
	R, G, B, A float32
}

// Triangle is one screen triangle ready to fill.
type Triangle struct {
	V      [3]Vertex
	Depth  float64 // Mean clip w, larger is farther
	Layer  int     // Lower layers are drawn first
	Source Source
}

// Light is the shading input of the camera pass.
type Light struct {
	Position mgl64.Vec3
	Ambient  float64
}

// Params describe how one mesh is projected and shaded.
type Params struct {
	ViewProjection mgl64.Mat4
	Eye            mgl64.Vec3
	Light          Light
	Layer          int

	// Shadow maps world positions into the shadow map; nil draws flat.
	Shadow     *mgl64.Mat4
	ShadowSize float32
}

// Rasterizer collects the triangles of one pass.
type Rasterizer struct {
	width, height int
	tris          []Triangle
}

// New creates an empty rasterizer.
func New() *Rasterizer {
	return &Rasterizer{}
}

// Reset starts a pass with the given viewport. Sizes below one pixel are
// clamped to one.
func (r *Rasterizer) Reset(width, height int) {
	r.width = max(width, 1)
	r.height = max(height, 1)
	r.tris = r.tris[:0]
}

// Len returns the number of collected triangles.
func (r *Rasterizer) Len() int {
	return len(r.tris)
}

// Project maps a world point to screen pixels. It returns false for points
// behind the camera.
func Project(viewProj mgl64.Mat4, p mgl64.Vec3, width, height int) (x, y, w float64, ok bool) {
	c := viewProj.Mul4x1(p.Vec4(1))
	if c[3] < minClipW {
		return 0, 0, 0, false
	}
	nx, ny := c[0]/c[3], c[1]/c[3]
	x = (nx + 1) / 2 * float64(width)
	y = (1 - ny) / 2 * float64(height)
	return x, y, c[3], true
}

// Shade returns the lambert color of a surface point in [0, 1].
func Shade(mat model.Material, normal, pos mgl64.Vec3, light Light) (r, g, b float32) {
	toLight := light.Position.Sub(pos)
	diffuse := 0.0
	if toLight.Len() > 0 && normal.Len() > 0 {
		diffuse = math.Max(0, normal.Normalize().Dot(toLight.Normalize()))
	}
	intensity := light.Ambient + (1-light.Ambient)*diffuse
	intensity = math.Max(intensity, mat.Emissive)
	intensity = math.Min(intensity, 1)
	f := float32(intensity / 255)
	return float32(mat.Diffuse.R) * f, float32(mat.Diffuse.G) * f, float32(mat.Diffuse.B) * f
}

// AddMesh projects, culls and shades every part under world.
func (r *Rasterizer) AddMesh(world mgl64.Mat4, parts []model.Part, p Params) {
	mvp := p.ViewProjection.Mul4(world)
	normalMat := world.Mat3().Inv().Transpose()

	for _, part := range parts {
		m := part.Mesh
		if m == nil {
			continue
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			idx := [3]int{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}

			var wp [3]mgl64.Vec3
			for k, vi := range idx {
				wp[k] = mgl64.TransformCoordinate(m.Positions[vi], world)
			}
			face := wp[1].Sub(wp[0]).Cross(wp[2].Sub(wp[0]))
			if face.Dot(p.Eye.Sub(wp[0])) <= 0 {
				continue
			}

			tri := Triangle{Layer: p.Layer, Source: SourceFlat}
			if p.Shadow != nil {
				tri.Source = SourceShadow
			}
			visible := true
			for k, vi := range idx {
				x, y, w, ok := Project(mvp, m.Positions[vi], r.width, r.height)
				if !ok {
					visible = false
					break
				}
				n := face
				if vi < len(m.Normals) {
					n = normalMat.Mul3x1(m.Normals[vi])
				}
				cr, cg, cb := Shade(part.Material, n, wp[k], p.Light)
				v := Vertex{X: float32(x), Y: float32(y), R: cr, G: cg, B: cb, A: 1}
				if p.Shadow != nil {
					v.U, v.V = shadowTexel(*p.Shadow, wp[k], p.ShadowSize)
				}
				tri.V[k] = v
				tri.Depth += w / 3
			}
			if visible {
				r.tris = append(r.tris, tri)
			}
		}
	}
}

// AddSilhouette projects every triangle of parts from the light with a flat
// gray level. Silhouettes are not culled.
func (r *Rasterizer) AddSilhouette(world mgl64.Mat4, parts []model.Part, lightViewProj mgl64.Mat4, gray float32) {
	mvp := lightViewProj.Mul4(world)
	for _, part := range parts {
		m := part.Mesh
		if m == nil {
			continue
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			tri := Triangle{Source: SourceFlat}
			visible := true
			for k := 0; k < 3; k++ {
				x, y, _, ok := Project(mvp, m.Positions[m.Indices[i+k]], r.width, r.height)
				if !ok {
					visible = false
					break
				}
				tri.V[k] = Vertex{X: float32(x), Y: float32(y), R: gray, G: gray, B: gray, A: 1}
			}
			if visible {
				r.tris = append(r.tris, tri)
			}
		}
	}
}

// shadowTexel maps a world point into shadow map pixels, clamped to the map.
func shadowTexel(texture mgl64.Mat4, p mgl64.Vec3, size float32) (u, v float32) {
	c := texture.Mul4x1(p.Vec4(1))
	if c[3] <= 0 {
		return 0.5, 0.5
	}
	s := float64(size)
	tu := mgl64.Clamp(c[0]/c[3], 0, 1)
	tv := mgl64.Clamp(c[1]/c[3], 0, 1)
	return float32(mgl64.Clamp(tu*s, 0.5, s-0.5)), float32(mgl64.Clamp((1-tv)*s, 0.5, s-0.5))
}

// Triangles returns the collected triangles in drawing order: by layer, then
// far to near. Layer 0 keeps submission order.
func (r *Rasterizer) Triangles() []Triangle {
	sort.SliceStable(r.tris, func(i, j int) bool {
		a, b := r.tris[i], r.tris[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Layer == 0 {
			return false
		}
		return a.Depth > b.Depth
	})
	return r.tris
}

// Batch is a run of triangles sampling the same source.
type Batch struct {
	Source   Source
	Vertices []Vertex
	Indices  []uint16
}

// Batches splits ordered triangles into fill calls. A batch ends when the
// source changes or it would exceed maxVertices.
func Batches(tris []Triangle, maxVertices int) []Batch {
	if maxVertices < 3 {
		maxVertices = 3
	}
	var out []Batch
	var cur *Batch
	for _, t := range tris {
		if cur == nil || cur.Source != t.Source || len(cur.Vertices)+3 > maxVertices {
			out = append(out, Batch{Source: t.Source})
			cur = &out[len(out)-1]
		}
		base := uint16(len(cur.Vertices))
		cur.Vertices = append(cur.Vertices, t.V[0], t.V[1], t.V[2])
		cur.Indices = append(cur.Indices, base, base+1, base+2)
	}
	return out
}

// ProjectSegment projects a world line segment. Segments with an end behind
// the camera are dropped.
func ProjectSegment(viewProj mgl64.Mat4, a, b mgl64.Vec3, width, height int) (x0, y0, x1, y1 float32, ok bool) {
	ax, ay, _, okA := Project(viewProj, a, width, height)
	bx, by, _, okB := Project(viewProj, b, width, height)
	if !okA || !okB {
		return 0, 0, 0, 0, false
	}
	return float32(ax), float32(ay), float32(bx), float32(by), true
}

// SkyRows returns the sky texture rows, as fractions of its height, seen at
// the top and bottom of the screen. inverse is the inverse
// view-direction-projection matrix. Row 0 is straight up, 1 straight down.
func SkyRows(inverse mgl64.Mat4) (top, bottom float64) {
	row := func(ndcY float64) float64 {
		d := mgl64.TransformCoordinate(mgl64.Vec3{0, ndcY, 1}, inverse)
		elevation := math.Atan2(d[1], math.Hypot(d[0], d[2]))
		return 0.5 - elevation/math.Pi
	}
	return row(1), row(-1)
}
