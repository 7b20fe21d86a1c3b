package shader

import "github.com/df07/go-recursive-raytracer/pkg/core"

// DynValue is a shader parameter that is either fixed or computed per
// incidence. Functions must be pure so repeated evaluation agrees.
type DynValue[T any] struct {
	value T
	fn    func(t core.Tracer, i core.Incidence) T
}

// Const returns a DynValue that always evaluates to v
func Const[T any](v T) DynValue[T] {
	return DynValue[T]{value: v}
}

// Fn returns a DynValue computed by fn
func Fn[T any](fn func(t core.Tracer, i core.Incidence) T) DynValue[T] {
	return DynValue[T]{fn: fn}
}

// Get evaluates the value for an incidence
func (d DynValue[T]) Get(t core.Tracer, i core.Incidence) T {
	if d.fn != nil {
		return d.fn(t, i)
	}
	return d.value
}

// Constant returns the fixed value, if d is not computed
func (d DynValue[T]) Constant() (T, bool) {
	return d.value, d.fn == nil
}

// Map transforms a DynValue, keeping constants constant
func Map[T, U any](d DynValue[T], f func(T) U) DynValue[U] {
	if d.fn == nil {
		return Const(f(d.value))
	}
	return Fn(func(t core.Tracer, i core.Incidence) U {
		return f(d.fn(t, i))
	})
}

// FromShader turns a shader's output into a color parameter. Incidences
// the shader does not color evaluate to black.
func FromShader(s core.Shader) DynValue[core.Color] {
	return Fn(func(t core.Tracer, i core.Incidence) core.Color {
		c, ok := s.Render(t, i)
		if !ok {
			return core.Black
		}
		return c
	})
}

// Func adapts a plain function to the core.Shader interface
type Func func(t core.Tracer, i core.Incidence) (core.Color, bool)

// Render calls f
func (f Func) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return f(t, i)
}
