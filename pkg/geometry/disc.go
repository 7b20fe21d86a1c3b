package geometry

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Disc is a flat circle. Like triangles, single-sided discs are invisible
// from behind.
type Disc struct {
	Plane       core.Plane // center and normal
	Radius      float64
	DoubleSided bool
}

// NewDisc creates a single-sided disc facing normal
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	return &Disc{Plane: core.NewPlane(center, normal), Radius: radius}
}

// NewDoubleSidedDisc creates a disc visible from both faces
func NewDoubleSidedDisc(center, normal core.Vec3, radius float64) *Disc {
	d := NewDisc(center, normal, radius)
	d.DoubleSided = true
	return d
}

// Intersect hits the disc within its radius
func (d *Disc) Intersect(ray core.Ray) (core.Hit, bool) {
	cosi := ray.Direction.Dot(d.Plane.N)
	if cosi >= 0 && !d.DoubleSided {
		return core.Hit{}, false
	}

	pos, ok := d.Plane.Intersect(ray)
	if !ok || core.Dist2(pos, d.Plane.R0) > d.Radius*d.Radius {
		return core.Hit{}, false
	}
	return core.Hit{Pos: pos, Norm: d.Plane.N, Inside: cosi > 0}, true
}

// ConstNormal returns the disc normal for single-sided discs
func (d *Disc) ConstNormal() (core.Vec3, bool) {
	if d.DoubleSided {
		return core.Vec3{}, false
	}
	return d.Plane.N, true
}

// Bound returns the sphere circumscribing the disc
func (d *Disc) Bound() (core.Bound, bool) {
	return core.NewBoundingSphere(d.Plane.R0, d.Radius), true
}

// Render returns the default color
func (d *Disc) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return core.DefaultColor, true
}
