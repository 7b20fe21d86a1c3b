package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewTorus creates a smooth torus around the Y axis centered at the origin.
// rings subdivides the major circle and sides the tube.
func NewTorus(major, minor float64, rings, sides int) *TrigMesh {
	if rings < 3 {
		rings = 3
	}
	if sides < 3 {
		sides = 3
	}

	vertices := make([]core.Vec3, 0, rings*sides)
	normals := make([]core.Vec3, 0, rings*sides)
	for i := 0; i < rings; i++ {
		u := 2 * math.Pi * float64(i) / float64(rings)
		for j := 0; j < sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			n := core.NewVec3(math.Cos(v)*math.Cos(u), math.Sin(v), math.Cos(v)*math.Sin(u))
			center := core.NewVec3(major*math.Cos(u), 0, major*math.Sin(u))
			vertices = append(vertices, center.Add(n.Multiply(minor)))
			normals = append(normals, n)
		}
	}

	index := func(i, j int) int {
		return (i%rings)*sides + j%sides
	}

	faces := make([]Face, 0, 2*rings*sides)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			p00, p01 := index(i, j), index(i, j+1)
			p10, p11 := index(i+1, j), index(i+1, j+1)
			faces = append(faces,
				Face{V: [3]int{p00, p01, p11}, N: [3]int{p00, p01, p11}, Smooth: true},
				Face{V: [3]int{p00, p11, p10}, N: [3]int{p00, p11, p10}, Smooth: true},
			)
		}
	}

	return NewTrigMesh(vertices, normals, faces)
}
