package shader

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Solid is a diffuse surface whose Phong highlight drives it toward white
func Solid(color core.Color, specularIndex float64) core.Shader {
	return NewChannelMix(
		NewPlain(core.White),
		NewDiffuse(Const(color)),
		FromShader(NewPhong(Const(specularIndex))),
	)
}

// RoughSolid is Solid with a jittered diffuse normal
func RoughSolid(color core.Color, roughness, specularIndex float64) core.Shader {
	return NewChannelMix(
		NewPlain(core.White),
		NewRough(NewDiffuse(Const(color)), Const(roughness)),
		FromShader(NewPhong(Const(specularIndex))),
	)
}

// Glass blends a clear dielectric with a solid surface by transparency
func Glass(color core.Color, specularIndex, transparency, reflectivity, ior float64) core.Shader {
	return &Transparency{
		Opaque:       Solid(color, specularIndex),
		Transparency: Const(transparency),
		Reflectivity: Const(reflectivity),
		IOR:          Const(ior),
	}
}

// Mirror blends a perfect reflection with a solid surface by reflectivity
func Mirror(color core.Color, specularIndex, reflectivity float64) core.Shader {
	return NewMix(Reflection{}, Solid(color, specularIndex), Const(reflectivity))
}

func SimpleSolid(color core.Color) core.Shader {
	return Solid(color, 10)
}

func SimpleRoughSolid(color core.Color, roughness float64) core.Shader {
	return RoughSolid(color, roughness, 10)
}

func SimpleGlass(color core.Color, transparency float64) core.Shader {
	return Glass(color, 25, transparency, 0.8, 1.5)
}

func SimpleMirror(color core.Color) core.Shader {
	return Mirror(color, 45, 0.8)
}
