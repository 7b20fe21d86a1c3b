package shader

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Plain colors every hit the same
type Plain struct {
	Color core.Color
}

// NewPlain creates a new Plain shader
func NewPlain(color core.Color) *Plain {
	return &Plain{Color: color}
}

// Render returns the fixed color
func (p *Plain) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return p.Color, true
}

// Normal visualizes the hit normal, mapping each axis from [-1, 1] to [0, 1]
type Normal struct{}

// Render maps the unit normal to a color
func (Normal) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	n := i.Hit.Norm
	return core.NewColor(n.X+1, n.Y+1, n.Z+1).Multiply(0.5), true
}
