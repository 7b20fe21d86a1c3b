package shader

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Reflection traces the mirror ray
type Reflection struct{}

// Render traces the mirror ray one level deeper
func (Reflection) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return t.TraceRay(reflectedRay(i), i.Depth+1)
}

// reflectedRay mirrors the incidence ray, starting just off the surface on
// the side the ray arrived from
func reflectedRay(i core.Incidence) core.Ray {
	bias := SurfaceBias
	if i.Hit.Inside {
		bias = -bias
	}
	return i.Ray.Reflect(i.Hit.Biased(bias))
}

// Refraction traces the transmitted ray. Under total internal reflection
// it traces the mirror ray instead.
type Refraction struct {
	IOR DynValue[float64]
}

// NewRefraction creates a new Refraction shader
func NewRefraction(ior DynValue[float64]) *Refraction {
	return &Refraction{IOR: ior}
}

// Render traces the refracted ray, or the reflected one on total internal reflection
func (r *Refraction) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	// Start just past the surface on the far side
	bias := -SurfaceBias
	if i.Hit.Inside {
		bias = SurfaceBias
	}

	ray, ok := i.Ray.Refract(i.Hit.Biased(bias), r.IOR.Get(t, i))
	if !ok {
		return t.TraceRay(reflectedRay(i), i.Depth+1)
	}
	return t.TraceRay(ray, i.Depth+1)
}
