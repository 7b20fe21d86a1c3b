package shader

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Rough jitters the hit normal before delegating. The jitter depends only on
// the hit position and object, so the same point always shades the same.
type Rough struct {
	Shader    core.Shader
	Roughness DynValue[float64] // standard deviation of the jitter
}

// NewRough creates a new Rough shader
func NewRough(shader core.Shader, roughness DynValue[float64]) *Rough {
	return &Rough{Shader: shader, Roughness: roughness}
}

// Render delegates with a jittered normal
func (r *Rough) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	roughness := r.Roughness.Get(t, i)
	if roughness <= 0 {
		return r.Shader.Render(t, i)
	}

	jittered := i
	jittered.Hit = i.Hit.WithNorm(i.Hit.Norm.Add(Jitter(i, roughness)))
	return r.Shader.Render(t, jittered)
}

// Jitter returns the normal perturbation Rough applies at an incidence
func Jitter(i core.Incidence, stdDev float64) core.Vec3 {
	src := core.NoiseSource(i.Hit.Pos, core.ObjectID(i.Object))
	return core.NewVec3(src.NormFloat64(), src.NormFloat64(), src.NormFloat64()).Multiply(stdDev)
}

// ColorNoise adds grey noise to a base color, stable per hit position
type ColorNoise struct {
	Color     DynValue[core.Color]
	Roughness float64 // standard deviation of the noise
}

// NewColorNoise creates a new ColorNoise shader
func NewColorNoise(color DynValue[core.Color], roughness float64) *ColorNoise {
	return &ColorNoise{Color: color, Roughness: roughness}
}

// Render adds grey noise to the color at the hit
func (c *ColorNoise) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	src := core.NoiseSource(i.Hit.Pos, core.ObjectID(i.Object))
	return c.Color.Get(t, i).Add(core.Grey(src.NormFloat64() * c.Roughness)), true
}
