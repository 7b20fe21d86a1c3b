package shader

import "github.com/df07/go-recursive-raytracer/pkg/core"

const (
	// LightBias offsets shadow rays toward the light
	LightBias = 1e-4

	// SurfaceBias offsets reflected and refracted rays off the surface
	SurfaceBias = 1e-5
)

// forEachVisibleLight calls fn for every light with an unobstructed view
// of the hit, passing the biased shadow ray toward it
func forEachVisibleLight(t core.Tracer, hit core.Hit, fn func(light core.PointLight, shadow core.Ray)) {
	for _, light := range t.GetLights() {
		shadow := core.NewRay(hit.Pos, light.Pos.Subtract(hit.Pos)).Biased(LightBias)
		if t.IsBlocked(shadow, core.Dist2(light.Pos, hit.Pos)) {
			continue
		}
		fn(light, shadow)
	}
}
