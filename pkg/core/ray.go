package core

import "math"

// Ray is a half-line with a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a ray, normalizing direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Biased moves the origin along the direction by bias
func (r Ray) Biased(bias float64) Ray {
	return Ray{Origin: r.At(bias), Direction: r.Direction}
}

// Reflect mirrors the ray about the hit normal, starting at the hit position
func (r Ray) Reflect(hit Hit) Ray {
	return NewRay(hit.Pos, reflectVector(r.Direction, hit.Norm))
}

// Refract bends the ray through the surface at hit using Snell's law.
// Indices swap when the hit is inside. The second result is false on
// total internal reflection, in which case no transmitted ray exists.
func (r Ray) Refract(hit Hit, ior float64) (Ray, bool) {
	n := hit.Norm
	etai, etat := 1.0, ior
	if hit.Inside {
		etai, etat = etat, etai
		n = n.Negate()
	}

	cosi := Clamp(-r.Direction.Dot(n), -1, 1)
	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Ray{}, false
	}

	dir := r.Direction.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
	return NewRay(hit.Pos, dir), true
}

// reflectVector reflects v about normal n
func reflectVector(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
