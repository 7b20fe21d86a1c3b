package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Transformed places an object in the world through an affine transform.
// Rays are mapped into object space and hits back into world space.
type Transformed struct {
	Object core.Object
	trans  core.TransMat
}

// NewTransformed wraps obj with the identity transform
func NewTransformed(obj core.Object) *Transformed {
	return &Transformed{Object: obj, trans: core.NewTransMat()}
}

// Append applies m after the current transform
func (t *Transformed) Append(m core.M4) error {
	return t.trans.Append(m)
}

// Translated moves the object by d
func (t *Transformed) Translated(d core.Vec3) *Transformed {
	return t.mustAppend(core.Translation(d), "translation")
}

// Scaled scales the object along each axis. It panics on a zero factor.
func (t *Transformed) Scaled(s core.Vec3) *Transformed {
	return t.mustAppend(core.Scaling(s), "scaling")
}

// Rotated rotates the object by Rx*Ry*Rz, angles in radians
func (t *Transformed) Rotated(r core.Vec3) *Transformed {
	return t.mustAppend(core.Rotation(r), "rotation")
}

// mustAppend appends m and panics when it cannot be inverted
func (t *Transformed) mustAppend(m core.M4, what string) *Transformed {
	if err := t.trans.Append(m); err != nil {
		panic(fmt.Sprintf("transformed object: %s: %v", what, err))
	}
	return t
}

// TransMat returns the current forward/inverse pair
func (t *Transformed) TransMat() core.TransMat {
	return t.trans
}

// Intersect tests the ray in object space and maps the hit back
func (t *Transformed) Intersect(ray core.Ray) (core.Hit, bool) {
	hit, ok := t.Object.Intersect(t.trans.RayToObject(ray))
	if !ok {
		return core.Hit{}, false
	}
	return t.trans.HitToWorld(hit), true
}

// ConstNormal maps the inner constant normal to world space
func (t *Transformed) ConstNormal() (core.Vec3, bool) {
	n, ok := t.Object.ConstNormal()
	if !ok {
		return core.Vec3{}, false
	}
	return t.trans.NormalToWorld(n), true
}

// Bound returns the world box enclosing the inner bound
func (t *Transformed) Bound() (core.Bound, bool) {
	b, ok := t.Object.Bound()
	if !ok {
		return nil, false
	}
	return t.trans.BoxToWorld(b.Box()), true
}

// Render forwards to the wrapped object
func (t *Transformed) Render(tr core.Tracer, i core.Incidence) (core.Color, bool) {
	return t.Object.Render(tr, i)
}

// ID forwards the identity of the wrapped object
func (t *Transformed) ID() uint64 {
	return core.ObjectID(t.Object)
}

// Prepare forwards to the wrapped object
func (t *Transformed) Prepare() {
	if p, ok := t.Object.(core.Preparer); ok {
		p.Prepare()
	}
}

// Inner returns the wrapped object
func (t *Transformed) Inner() core.Object {
	return t.Object
}
