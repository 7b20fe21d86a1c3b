package core

import "math"

// Trig is a raw triangle with counter-clockwise winding
type Trig struct {
	A, B, C Vec3
}

// NewTrig creates a new Trig
func NewTrig(a, b, c Vec3) Trig {
	return Trig{A: a, B: b, C: c}
}

// N returns the unit face normal
func (t Trig) N() Vec3 {
	return t.A.Subtract(t.C).Cross(t.B.Subtract(t.C)).Normalize()
}

// Centroid returns the mean of the three vertices
func (t Trig) Centroid() Vec3 {
	return t.A.Add(t.B).Add(t.C).Multiply(1.0 / 3.0)
}

// Box returns the bounding box of the vertices
func (t Trig) Box() AABB {
	return NewAABBFromPoints(t.A, t.B, t.C)
}

// Intersect runs the Möller-Trumbore test without culling. It returns the
// distance along the ray and the barycentric weights of B and C.
func (t Trig) Intersect(ray Ray) (dist, u, v float64, ok bool) {
	edge1 := t.B.Subtract(t.A)
	edge2 := t.C.Subtract(t.A)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < ParallelEpsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.A)
	u = f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	dist = f * edge2.Dot(q)
	if dist <= Epsilon {
		return 0, 0, 0, false
	}
	return dist, u, v, true
}
