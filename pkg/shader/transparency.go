package shader

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Fresnel returns the fraction of light reflected at the hit, averaging the
// s- and p-polarized reflectances. It is 1 under total internal reflection.
func Fresnel(ray core.Ray, hit core.Hit, ior float64) float64 {
	etai, etat := 1.0, ior
	if hit.Inside {
		etai, etat = etat, etai
	}

	cosi := math.Min(1, math.Abs(ray.Direction.Dot(hit.Norm)))
	eta := etai / etat
	sint2 := eta * eta * math.Max(0, 1-cosi*cosi)
	if sint2 >= 1 {
		return 1
	}

	cost := math.Sqrt(math.Max(0, 1-sint2))
	rs := (etat*cosi - etai*cost) / (etat*cosi + etai*cost)
	rp := (etai*cosi - etat*cost) / (etai*cosi + etat*cost)
	return (rs*rs + rp*rp) / 2
}

// Transparency is a dielectric surface. Entering rays split between a
// reflection and a refraction weighted by Fresnel reflectance scaled by
// Reflectivity; rays inside only refract. The result is blended with Opaque
// by the Transparency fraction when Opaque is set.
type Transparency struct {
	Opaque       core.Shader
	Transparency DynValue[float64]
	Reflectivity DynValue[float64]
	IOR          DynValue[float64]
}

// NewTransparency creates a fully transparent dielectric
func NewTransparency(reflectivity, ior DynValue[float64]) *Transparency {
	return &Transparency{
		Transparency: Const(1.0),
		Reflectivity: reflectivity,
		IOR:          ior,
	}
}

// Render blends the opaque shader with the clear surface by transparency
func (tr *Transparency) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	if tr.Opaque == nil {
		return tr.renderClear(t, i)
	}
	mix := Mix{A: Func(tr.renderClear), B: tr.Opaque, Frac: tr.Transparency}
	return mix.Render(t, i)
}

// renderClear mixes reflection and refraction by the Fresnel term
func (tr *Transparency) renderClear(t core.Tracer, i core.Incidence) (core.Color, bool) {
	refr := &Refraction{IOR: tr.IOR}
	if i.Hit.Inside {
		return refr.Render(t, i)
	}

	k := Fresnel(i.Ray, i.Hit, tr.IOR.Get(t, i)) * tr.Reflectivity.Get(t, i)
	mix := Mix{A: Reflection{}, B: refr, Frac: Const(k)}
	return mix.Render(t, i)
}
