package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Sphere is a solid sphere. Hits from within report Inside.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect returns the first surface crossing ahead of the ray origin
func (s *Sphere) Intersect(ray core.Ray) (core.Hit, bool) {
	oc := s.Center.Subtract(ray.Origin)
	tca := oc.Dot(ray.Direction)
	d2 := oc.LengthSquared() - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return core.Hit{}, false
	}

	thc := math.Sqrt(r2 - d2)
	var t float64
	inside := false
	switch {
	case tca-thc > core.Epsilon:
		t = tca - thc
	case tca+thc > core.Epsilon:
		t = tca + thc
		inside = true
	default:
		return core.Hit{}, false
	}

	pos := ray.At(t)
	return core.NewHit(pos, pos.Subtract(s.Center), inside), true
}

// ConstNormal reports none
func (s *Sphere) ConstNormal() (core.Vec3, bool) {
	return core.Vec3{}, false
}

// Bound reports none; the sphere test is as cheap as a bound test
func (s *Sphere) Bound() (core.Bound, bool) {
	return nil, false
}

// Render returns the default color
func (s *Sphere) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return core.DefaultColor, true
}
