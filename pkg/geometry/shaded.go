package geometry

import (
	"sync/atomic"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

var nextShadedID atomic.Uint64

// Shaded attaches a shader to an object. Geometry queries pass through.
type Shaded struct {
	Object core.Object
	Shader core.Shader
	id     uint64
}

// NewShaded wraps obj so hits on it are colored by shader
func NewShaded(obj core.Object, shader core.Shader) *Shaded {
	return &Shaded{Object: obj, Shader: shader, id: nextShadedID.Add(1)}
}

// ID returns the identity used to key noise. It is unique among Shaded
// objects of this process until a scene renumbers it.
func (s *Shaded) ID() uint64 {
	return s.id
}

// SetID replaces the identity
func (s *Shaded) SetID(id uint64) {
	s.id = id
}

// Intersect forwards to the wrapped object
func (s *Shaded) Intersect(ray core.Ray) (core.Hit, bool) {
	return s.Object.Intersect(ray)
}

// ConstNormal forwards to the wrapped object
func (s *Shaded) ConstNormal() (core.Vec3, bool) {
	return s.Object.ConstNormal()
}

// Bound forwards to the wrapped object
func (s *Shaded) Bound() (core.Bound, bool) {
	return s.Object.Bound()
}

// Render colors the hit with the attached shader
func (s *Shaded) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return s.Shader.Render(t, i)
}

// Prepare forwards to the wrapped object
func (s *Shaded) Prepare() {
	if p, ok := s.Object.(core.Preparer); ok {
		p.Prepare()
	}
}

// Inner returns the wrapped object
func (s *Shaded) Inner() core.Object {
	return s.Object
}
