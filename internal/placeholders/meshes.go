package placeholders

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/jumpman/internal/model"
)

// Box creates an axis-aligned box between min and max with flat face normals.
func Box(min, max mgl64.Vec3) *model.Mesh {
	m := &model.Mesh{}
	faces := []struct {
		normal  mgl64.Vec3
		corners [4]mgl64.Vec3
	}{
		{mgl64.Vec3{1, 0, 0}, [4]mgl64.Vec3{{max[0], min[1], max[2]}, {max[0], min[1], min[2]}, {max[0], max[1], min[2]}, {max[0], max[1], max[2]}}},
		{mgl64.Vec3{-1, 0, 0}, [4]mgl64.Vec3{{min[0], min[1], min[2]}, {min[0], min[1], max[2]}, {min[0], max[1], max[2]}, {min[0], max[1], min[2]}}},
		{mgl64.Vec3{0, 1, 0}, [4]mgl64.Vec3{{min[0], max[1], max[2]}, {max[0], max[1], max[2]}, {max[0], max[1], min[2]}, {min[0], max[1], min[2]}}},
		{mgl64.Vec3{0, -1, 0}, [4]mgl64.Vec3{{min[0], min[1], min[2]}, {max[0], min[1], min[2]}, {max[0], min[1], max[2]}, {min[0], min[1], max[2]}}},
		{mgl64.Vec3{0, 0, 1}, [4]mgl64.Vec3{{min[0], min[1], max[2]}, {max[0], min[1], max[2]}, {max[0], max[1], max[2]}, {min[0], max[1], max[2]}}},
		{mgl64.Vec3{0, 0, -1}, [4]mgl64.Vec3{{max[0], min[1], min[2]}, {min[0], min[1], min[2]}, {min[0], max[1], min[2]}, {max[0], max[1], min[2]}}},
	}
	for _, f := range faces {
		base := len(m.Positions)
		for _, c := range f.corners {
			m.Positions = append(m.Positions, c)
			m.Normals = append(m.Normals, f.normal)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Cylinder creates a closed cylinder along the Z axis, centered on the origin.
func Cylinder(radius, depth float64, segments int) *model.Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &model.Mesh{}
	half := depth / 2

	// Side wall
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		s, c := math.Sincos(a)
		n := mgl64.Vec3{c, s, 0}
		m.Positions = append(m.Positions, mgl64.Vec3{radius * c, radius * s, -half}, mgl64.Vec3{radius * c, radius * s, half})
		m.Normals = append(m.Normals, n, n)
	}
	for i := 0; i < segments; i++ {
		b := i * 2
		m.Indices = append(m.Indices, b, b+2, b+1, b+1, b+2, b+3)
	}

	// Caps
	for _, z := range []float64{half, -half} {
		n := mgl64.Vec3{0, 0, math.Copysign(1, z)}
		center := len(m.Positions)
		m.Positions = append(m.Positions, mgl64.Vec3{0, 0, z})
		m.Normals = append(m.Normals, n)
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			s, c := math.Sincos(a)
			m.Positions = append(m.Positions, mgl64.Vec3{radius * c, radius * s, z})
			m.Normals = append(m.Normals, n)
		}
		for i := 0; i < segments; i++ {
			cur := center + 1 + i
			next := center + 1 + (i+1)%segments
			if z > 0 {
				m.Indices = append(m.Indices, center, cur, next)
			} else {
				m.Indices = append(m.Indices, center, next, cur)
			}
		}
	}
	return m
}

// Sphere creates a UV sphere centered on c.
func Sphere(c mgl64.Vec3, radius float64, rings, segments int) *model.Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	m := &model.Mesh{}
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		sp, cp := math.Sincos(phi)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			st, ct := math.Sincos(theta)
			n := mgl64.Vec3{sp * ct, cp, sp * st}
			m.Positions = append(m.Positions, c.Add(n.Mul(radius)))
			m.Normals = append(m.Normals, n)
		}
	}
	stride := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := r*stride + s
			b := a + stride
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return m
}

// Grid creates an upward-facing plane at height y split into nx by nz cells.
// Fine cells keep the shadow texture projection close to perspective-correct.
func Grid(minX, maxX, minZ, maxZ, y float64, nx, nz int) *model.Mesh {
	if nx < 1 {
		nx = 1
	}
	if nz < 1 {
		nz = 1
	}
	m := &model.Mesh{}
	up := mgl64.Vec3{0, 1, 0}
	for j := 0; j <= nz; j++ {
		z := minZ + (maxZ-minZ)*float64(j)/float64(nz)
		for i := 0; i <= nx; i++ {
			x := minX + (maxX-minX)*float64(i)/float64(nx)
			m.Positions = append(m.Positions, mgl64.Vec3{x, y, z})
			m.Normals = append(m.Normals, up)
		}
	}
	stride := nx + 1
	for j := 0; j < nz; j++ {
		for i := 0; i < nx; i++ {
			p00 := j*stride + i
			p10 := p00 + 1
			p01 := p00 + stride
			p11 := p01 + 1
			m.Indices = append(m.Indices, p00, p01, p11, p00, p11, p10)
		}
	}
	return m
}
