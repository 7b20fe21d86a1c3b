package core

// PointLight is an omnidirectional light without falloff
type PointLight struct {
	Pos        Vec3
	Color      Color
	Brightness float64
}

// NewPointLight creates a new PointLight
func NewPointLight(pos Vec3, color Color, brightness float64) PointLight {
	return PointLight{Pos: pos, Color: color, Brightness: brightness}
}

// NewWhiteLight creates a white PointLight
func NewWhiteLight(pos Vec3, brightness float64) PointLight {
	return NewPointLight(pos, White, brightness)
}

// Intensity returns the light's color scaled by its brightness
func (l PointLight) Intensity() Color {
	return l.Color.Multiply(l.Brightness)
}
