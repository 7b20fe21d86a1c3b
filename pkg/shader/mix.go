package shader

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Mix blends two shaders by a scalar fraction: 1 is all A, 0 is all B.
// At either end only the contributing side is evaluated.
type Mix struct {
	A, B core.Shader
	Frac DynValue[float64]
}

// NewMix creates a new Mix shader
func NewMix(a, b core.Shader, frac DynValue[float64]) *Mix {
	return &Mix{A: a, B: b, Frac: frac}
}

// Render blends A and B by the fraction at the hit
func (m *Mix) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	f := m.Frac.Get(t, i)
	switch {
	case f <= 0:
		return m.B.Render(t, i)
	case f >= 1:
		return m.A.Render(t, i)
	}

	a, aok := m.A.Render(t, i)
	b, bok := m.B.Render(t, i)
	return combine(a, aok, b, bok, func(a, b core.Color) core.Color {
		return a.Blend(b, f)
	})
}

// ChannelMix blends two shaders per channel by a color fraction
type ChannelMix struct {
	A, B core.Shader
	Frac DynValue[core.Color]
}

// NewChannelMix creates a new ChannelMix shader
func NewChannelMix(a, b core.Shader, frac DynValue[core.Color]) *ChannelMix {
	return &ChannelMix{A: a, B: b, Frac: frac}
}

// Render blends A and B channel by channel
func (m *ChannelMix) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	f := m.Frac.Get(t, i).Regularize()
	switch f {
	case core.Black:
		return m.B.Render(t, i)
	case core.White:
		return m.A.Render(t, i)
	}

	a, aok := m.A.Render(t, i)
	b, bok := m.B.Render(t, i)
	return combine(a, aok, b, bok, func(a, b core.Color) core.Color {
		return a.ChannelBlend(b, f)
	})
}

// Sum adds two shaders
type Sum struct {
	A, B core.Shader
}

// NewSum creates a new Sum shader
func NewSum(a, b core.Shader) *Sum {
	return &Sum{A: a, B: b}
}

// Render adds the contributions of A and B
func (s *Sum) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	a, aok := s.A.Render(t, i)
	b, bok := s.B.Render(t, i)
	return combine(a, aok, b, bok, core.Color.Add)
}

// combine merges two optional colors. A missing side yields the other.
func combine(a core.Color, aok bool, b core.Color, bok bool, merge func(a, b core.Color) core.Color) (core.Color, bool) {
	switch {
	case aok && bok:
		return merge(a, b), true
	case aok:
		return a, true
	case bok:
		return b, true
	}
	return core.Color{}, false
}
