package core

import (
	"image/color"
	"math"
)

// Color is a linear RGB triple. Channels are unbounded until Regularize.
type Color struct {
	R, G, B float64
}

var (
	Black  = Color{0, 0, 0}
	White  = Color{1, 1, 1}
	Red    = Color{1, 0, 0}
	Green  = Color{0, 1, 0}
	Blue   = Color{0, 0, 1}
	Yellow = Color{1, 1, 0}
	Gray   = Color{0.5, 0.5, 0.5}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Grey returns a color with every channel set to v
func Grey(v float64) Color {
	return Color{v, v, v}
}

// Add returns c + other
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel
func (c Color) Multiply(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// MultiplyColor multiplies channel-wise
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Blend returns c*frac + other*(1-frac)
func (c Color) Blend(other Color, frac float64) Color {
	return c.Multiply(frac).Add(other.Multiply(1 - frac))
}

// ChannelBlend blends each channel by the matching channel of frac
func (c Color) ChannelBlend(other Color, frac Color) Color {
	return Color{
		R: c.R*frac.R + other.R*(1-frac.R),
		G: c.G*frac.G + other.G*(1-frac.G),
		B: c.B*frac.B + other.B*(1-frac.B),
	}
}

// Regularize clamps every channel to [0, 1]. NaN becomes 0.
func (c Color) Regularize() Color {
	return Color{clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)}
}

// ApproxEqual compares channel-wise within tolerance
func (c Color) ApproxEqual(other Color, tolerance float64) bool {
	return math.Abs(c.R-other.R) <= tolerance &&
		math.Abs(c.G-other.G) <= tolerance &&
		math.Abs(c.B-other.B) <= tolerance
}

// ToRGBA converts a regularized color to 8-bit channels
func (c Color) ToRGBA() color.RGBA {
	r := c.Regularize()
	return color.RGBA{
		R: uint8(math.Round(r.R * 255)),
		G: uint8(math.Round(r.G * 255)),
		B: uint8(math.Round(r.B * 255)),
		A: 255,
	}
}

// FromVec3 reinterprets a vector as a color
func FromVec3(v Vec3) Color {
	return Color{v.X, v.Y, v.Z}
}

func clampChannel(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return Clamp(x, 0, 1)
}
