package core

import "math"

// Plane is an infinite plane through R0 with unit normal N
type Plane struct {
	R0 Vec3
	N  Vec3
}

// NewPlane creates a plane, normalizing n
func NewPlane(r0, n Vec3) Plane {
	return Plane{R0: r0, N: n.Normalize()}
}

// Intersect returns the point where the ray crosses the plane.
// Rays parallel to the plane, or that would have to travel backwards, miss.
func (p Plane) Intersect(ray Ray) (Vec3, bool) {
	denom := p.N.Dot(ray.Direction)
	if math.Abs(denom) < ParallelEpsilon {
		return Vec3{}, false
	}
	t := p.R0.Subtract(ray.Origin).Dot(p.N) / denom
	if t <= Epsilon {
		return Vec3{}, false
	}
	return ray.At(t), true
}

// PrimaryAxis is the world X axis projected onto the plane, or the
// projected Y axis when the normal is parallel to X
func (p Plane) PrimaryAxis() Vec3 {
	axis := UnitX.Subtract(p.N.Multiply(UnitX.Dot(p.N)))
	if axis.IsZero() {
		axis = UnitY.Subtract(p.N.Multiply(UnitY.Dot(p.N)))
	}
	return axis.Normalize()
}

// SecondaryAxis completes a right-handed in-plane basis with PrimaryAxis
func (p Plane) SecondaryAxis() Vec3 {
	return p.PrimaryAxis().Cross(p.N)
}
