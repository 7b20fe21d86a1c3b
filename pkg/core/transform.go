package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrSingularMatrix is returned when a transform has no inverse
var ErrSingularMatrix = errors.New("singular transform matrix")

// M4 is a 4x4 affine matrix acting on column vectors
type M4 struct {
	m mgl64.Mat4
}

// Identity returns the identity matrix
func Identity() M4 {
	return M4{mgl64.Ident4()}
}

// Translation returns a matrix translating by d
func Translation(d Vec3) M4 {
	return M4{mgl64.Translate3D(d.X, d.Y, d.Z)}
}

// Scaling returns a matrix scaling each axis by s
func Scaling(s Vec3) M4 {
	return M4{mgl64.Scale3D(s.X, s.Y, s.Z)}
}

// Rotation returns Rx*Ry*Rz for the angles in r, in radians
func Rotation(r Vec3) M4 {
	rx := mgl64.HomogRotate3DX(r.X)
	ry := mgl64.HomogRotate3DY(r.Y)
	rz := mgl64.HomogRotate3DZ(r.Z)
	return M4{rx.Mul4(ry).Mul4(rz)}
}

// Mul returns a*b
func (a M4) Mul(b M4) M4 {
	return M4{a.m.Mul4(b.m)}
}

// Det returns the determinant
func (a M4) Det() float64 {
	return a.m.Det()
}

// Inverse returns the inverse matrix, or ErrSingularMatrix
func (a M4) Inverse() (M4, error) {
	det := a.m.Det()
	if math.Abs(det) < SingularEpsilon || math.IsNaN(det) {
		return M4{}, errors.Wrapf(ErrSingularMatrix, "determinant %g", det)
	}
	return M4{a.m.Inv()}, nil
}

// Transpose returns the transposed matrix
func (a M4) Transpose() M4 {
	return M4{a.m.Transpose()}
}

// At returns the element at row, col
func (a M4) At(row, col int) float64 {
	return a.m.At(row, col)
}

// ApproxEqual compares element-wise within tolerance
func (a M4) ApproxEqual(b M4, tolerance float64) bool {
	return a.m.ApproxEqualThreshold(b.m, tolerance)
}

// TransformPoint applies the full affine transform to a point
func (a M4) TransformPoint(p Vec3) Vec3 {
	out := a.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if w := out[3]; w != 0 && w != 1 {
		return Vec3{out[0] / w, out[1] / w, out[2] / w}
	}
	return Vec3{out[0], out[1], out[2]}
}

// TransformVector applies the linear part to a direction
func (a M4) TransformVector(v Vec3) Vec3 {
	out := a.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{out[0], out[1], out[2]}
}

// TransMat caches an object-to-world matrix and its inverse
type TransMat struct {
	O2W M4
	W2O M4
}

// NewTransMat returns the identity pair
func NewTransMat() TransMat {
	return TransMat{O2W: Identity(), W2O: Identity()}
}

// Append composes m after the current transform. The pair is left
// unchanged when m is singular.
func (t *TransMat) Append(m M4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	t.O2W = m.Mul(t.O2W)
	t.W2O = t.W2O.Mul(inv)
	return nil
}

// RayToObject maps a world ray into object space
func (t TransMat) RayToObject(ray Ray) Ray {
	return NewRay(t.W2O.TransformPoint(ray.Origin), t.W2O.TransformVector(ray.Direction))
}

// PointToWorld maps an object space point to world space
func (t TransMat) PointToWorld(p Vec3) Vec3 {
	return t.O2W.TransformPoint(p)
}

// NormalToWorld maps an object space normal with the inverse transpose
func (t TransMat) NormalToWorld(n Vec3) Vec3 {
	return t.W2O.Transpose().TransformVector(n).Normalize()
}

// HitToWorld maps an object space hit to world space
func (t TransMat) HitToWorld(hit Hit) Hit {
	return Hit{
		Pos:    t.PointToWorld(hit.Pos),
		Norm:   t.NormalToWorld(hit.Norm),
		Inside: hit.Inside,
	}
}

// BoxToWorld returns the world AABB enclosing an object space box
func (t TransMat) BoxToWorld(box AABB) AABB {
	corners := box.Corners()
	points := make([]Vec3, len(corners))
	for i, c := range corners {
		points[i] = t.PointToWorld(c)
	}
	return NewAABBFromPoints(points...)
}
