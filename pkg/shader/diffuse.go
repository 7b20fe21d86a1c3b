package shader

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Diffuse is Lambertian shading under the scene's point lights
type Diffuse struct {
	Color DynValue[core.Color]
}

// NewDiffuse creates a new Diffuse shader
func NewDiffuse(color DynValue[core.Color]) *Diffuse {
	return &Diffuse{Color: color}
}

// Render multiplies the base color by the light reaching the hit, starting
// from the scene's background light
func (d *Diffuse) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	intensity := t.GetBackgroundLight()
	forEachVisibleLight(t, i.Hit, func(light core.PointLight, shadow core.Ray) {
		cos := math.Max(0, shadow.Direction.Dot(i.Hit.Norm))
		intensity = intensity.Add(light.Intensity().Multiply(cos))
	})
	return d.Color.Get(t, i).MultiplyColor(intensity), true
}

// Phong is a grey specular highlight, meant to be combined with a diffuse term
type Phong struct {
	Exponent DynValue[float64]
}

// NewPhong creates a new Phong shader
func NewPhong(exponent DynValue[float64]) *Phong {
	return &Phong{Exponent: exponent}
}

// Render sums the specular highlights of the visible lights as grey
func (p *Phong) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	exponent := p.Exponent.Get(t, i)
	intensity := 0.0
	forEachVisibleLight(t, i.Hit, func(light core.PointLight, shadow core.Ray) {
		angle := shadow.Reflect(i.Hit).Direction.Dot(i.Ray.Direction)
		if angle > 0 {
			intensity += math.Pow(angle, exponent)
		}
	})
	return core.Grey(intensity), true
}
