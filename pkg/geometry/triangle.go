package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Triangle is a flat triangle. Single-sided triangles are invisible from
// behind and expose their normal for back-face culling.
type Triangle struct {
	Trig        core.Trig
	DoubleSided bool
	normal      core.Vec3 // cached face normal
}

// NewTriangle creates a single-sided triangle with counter-clockwise winding
func NewTriangle(a, b, c core.Vec3) *Triangle {
	trig := core.NewTrig(a, b, c)
	return &Triangle{Trig: trig, normal: trig.N()}
}

// NewDoubleSidedTriangle creates a triangle visible from both faces
func NewDoubleSidedTriangle(a, b, c core.Vec3) *Triangle {
	t := NewTriangle(a, b, c)
	t.DoubleSided = true
	return t
}

// Intersect tests if a ray hits the triangle, culling back faces unless double-sided
func (t *Triangle) Intersect(ray core.Ray) (core.Hit, bool) {
	cosi := ray.Direction.Dot(t.normal)
	if cosi >= 0 && !t.DoubleSided {
		return core.Hit{}, false
	}

	dist, _, _, ok := t.Trig.Intersect(ray)
	if !ok {
		return core.Hit{}, false
	}
	return core.Hit{Pos: ray.At(dist), Norm: t.normal, Inside: cosi > 0}, true
}

// ConstNormal returns the face normal of single-sided triangles
func (t *Triangle) ConstNormal() (core.Vec3, bool) {
	if t.DoubleSided {
		return core.Vec3{}, false
	}
	return t.normal, true
}

// Bound reports none; a triangle is cheaper to test directly
func (t *Triangle) Bound() (core.Bound, bool) {
	return nil, false
}

// Render returns the default color
func (t *Triangle) Render(tr core.Tracer, i core.Incidence) (core.Color, bool) {
	return core.DefaultColor, true
}

// rightAngleTolerance is the largest |cos| accepted as a right angle
const rightAngleTolerance = 1e-6

// Rectangle is two triangles sharing a diagonal. Corner b holds the right
// angle and the fourth corner is c + (a - b).
type Rectangle struct {
	t1, t2 *Triangle
}

// NewRectangle creates a rectangle from three corners. It panics when the
// angle at b is not right.
func NewRectangle(a, b, c core.Vec3) *Rectangle {
	return newRectangle(a, b, c, false)
}

// NewDoubleSidedRectangle creates a rectangle visible from both faces
func NewDoubleSidedRectangle(a, b, c core.Vec3) *Rectangle {
	return newRectangle(a, b, c, true)
}

func newRectangle(a, b, c core.Vec3, doubleSided bool) *Rectangle {
	ba := a.Subtract(b).Normalize()
	bc := c.Subtract(b).Normalize()
	if math.Abs(ba.Dot(bc)) > rightAngleTolerance {
		panic(fmt.Sprintf("rectangle corners %v %v %v have no right angle at the middle corner", a, b, c))
	}

	d := c.Add(a.Subtract(b))
	r := &Rectangle{t1: NewTriangle(a, b, c), t2: NewTriangle(c, d, a)}
	r.t1.DoubleSided = doubleSided
	r.t2.DoubleSided = doubleSided
	return r
}

// Corners returns a, b, c and the derived fourth corner
func (r *Rectangle) Corners() [4]core.Vec3 {
	return [4]core.Vec3{r.t1.Trig.A, r.t1.Trig.B, r.t1.Trig.C, r.t2.Trig.B}
}

// Intersect tests both halves of the rectangle
func (r *Rectangle) Intersect(ray core.Ray) (core.Hit, bool) {
	if hit, ok := r.t1.Intersect(ray); ok {
		return hit, true
	}
	return r.t2.Intersect(ray)
}

// ConstNormal returns the face normal of single-sided rectangles
func (r *Rectangle) ConstNormal() (core.Vec3, bool) {
	return r.t1.ConstNormal()
}

// Bound reports none
func (r *Rectangle) Bound() (core.Bound, bool) {
	return nil, false
}

// Render returns the default color
func (r *Rectangle) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return core.DefaultColor, true
}
