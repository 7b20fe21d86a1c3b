package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Box is a closed axis-aligned box built from six rectangles with outward
// normals. Hits from within report Inside. Rotate it with Transformed.
type Box struct {
	Center core.Vec3
	Size   core.Vec3 // half extents
	faces  [6]*Rectangle
	bbox   core.AABB
}

// boxFaces lists each outward axis with a tangent pair whose cross product
// is that axis
var boxFaces = [6][3]core.Vec3{
	{core.UnitX, core.UnitY, core.UnitZ},
	{core.UnitX.Negate(), core.UnitZ, core.UnitY},
	{core.UnitY, core.UnitZ, core.UnitX},
	{core.UnitY.Negate(), core.UnitX, core.UnitZ},
	{core.UnitZ, core.UnitX, core.UnitY},
	{core.UnitZ.Negate(), core.UnitY, core.UnitX},
}

// NewBox creates a box around center. Size holds half extents, so a size
// of (1,1,1) makes a 2x2x2 box. It panics unless every extent is positive.
func NewBox(center, size core.Vec3) *Box {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		panic("box extents must be positive")
	}

	b := &Box{Center: center, Size: size}
	for i, axes := range boxFaces {
		n, u, v := axes[0], axes[1], axes[2]
		face := center.Add(n.Multiply(math.Abs(n.Dot(size))))
		du := u.Multiply(u.Dot(size))
		dv := v.Multiply(v.Dot(size))
		b.faces[i] = NewDoubleSidedRectangle(
			face.Subtract(du).Subtract(dv),
			face.Add(du).Subtract(dv),
			face.Add(du).Add(dv),
		)
	}
	b.bbox = core.NewAABB(center.Subtract(size), center.Add(size))
	return b
}

// Faces returns the six sides
func (b *Box) Faces() [6]*Rectangle {
	return b.faces
}

// Intersect returns the nearest face hit
func (b *Box) Intersect(ray core.Ray) (core.Hit, bool) {
	var (
		best  core.Hit
		found bool
	)
	minDist2 := 0.0
	for _, face := range b.faces {
		hit, ok := face.Intersect(ray)
		if !ok {
			continue
		}
		if d := core.Dist2(hit.Pos, ray.Origin); !found || d < minDist2 {
			best, minDist2, found = hit, d, true
		}
	}
	return best, found
}

// ConstNormal reports none since the faces differ
func (b *Box) ConstNormal() (core.Vec3, bool) {
	return core.Vec3{}, false
}

// Bound returns the box itself
func (b *Box) Bound() (core.Bound, bool) {
	return b.bbox, true
}

// Render returns the default color; wrap the box in Shaded to color it
func (b *Box) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return core.DefaultColor, true
}
