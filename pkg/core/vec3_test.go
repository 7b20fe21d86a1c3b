package core

import (
	"math"
	"testing"
)

func TestRotation_Axes(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		rotation Vec3
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, math.Pi/2),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			rotation: NewVec3(math.Pi/2, 0, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi, 0),
			expected: NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Rotation(tt.rotation).TransformVector(tt.vector)
			if !result.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	n := Vec3{}.Normalize()
	if n != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Errorf("Normalize produced NaN: %v", n)
	}
}

func TestVec3_Cross(t *testing.T) {
	if got := UnitX.Cross(UnitY); got != UnitZ {
		t.Errorf("Expected X cross Y = Z, got %v", got)
	}
	if got := UnitY.Cross(UnitX); got != UnitZ.Negate() {
		t.Errorf("Expected Y cross X = -Z, got %v", got)
	}
}

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(Vec3{}, NewVec3(3, 4, 0))
	if math.Abs(ray.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}
	if !ray.Direction.ApproxEqual(NewVec3(0.6, 0.8, 0), 1e-12) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", ray.Direction)
	}
}

func TestColor_Regularize(t *testing.T) {
	c := NewColor(-0.5, 0.25, 3).Regularize()
	if c != NewColor(0, 0.25, 1) {
		t.Errorf("Expected (0, 0.25, 1), got %v", c)
	}
	if n := NewColor(math.NaN(), 0, 0).Regularize(); n.R != 0 {
		t.Errorf("Expected NaN channel to clamp to 0, got %v", n.R)
	}
}

func TestColor_Blend(t *testing.T) {
	a := NewColor(1, 0, 0)
	b := NewColor(0, 0, 1)
	if got := a.Blend(b, 1); got != a {
		t.Errorf("Expected blend at 1 to be a, got %v", got)
	}
	if got := a.Blend(b, 0); got != b {
		t.Errorf("Expected blend at 0 to be b, got %v", got)
	}
	if got := a.Blend(b, 0.25); !got.ApproxEqual(NewColor(0.25, 0, 0.75), 1e-12) {
		t.Errorf("Expected (0.25, 0, 0.75), got %v", got)
	}

	got := a.ChannelBlend(b, NewColor(1, 0.5, 0))
	if !got.ApproxEqual(NewColor(1, 0, 1), 1e-12) {
		t.Errorf("Expected (1, 0, 1), got %v", got)
	}
}

func TestColor_ToRGBA(t *testing.T) {
	c := NewColor(1, 0.5, 2).ToRGBA()
	if c.R != 255 || c.G != 128 || c.B != 255 || c.A != 255 {
		t.Errorf("Expected {255 128 255 255}, got %v", c)
	}
}
