package core

import "math"

// Bound is a bounding volume that can reject rays cheaply
type Bound interface {
	Intersect(ray Ray) bool
	Box() AABB
}

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.Min = box.Min.Min(point)
		box.Max = box.Max.Max(point)
	}
	return box
}

// Intersect reports whether the ray enters the box at a non-negative distance
func (aabb AABB) Intersect(ray Ray) bool {
	return aabb.Hit(ray, 0, math.Inf(1))
}

// Box returns the box itself
func (aabb AABB) Box() AABB {
	return aabb
}

// Hit tests the ray against the box over [tMin, tMax] using the slab method.
// An axis the ray is parallel to constrains nothing as long as the origin
// lies within that slab.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Component(axis)
		max := aabb.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		if math.Abs(direction) < ParallelEpsilon {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both boxes
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Contains reports whether p lies inside the box, inclusive
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Corners returns the eight corner points
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := range corners {
		c := aabb.Min
		if i&1 != 0 {
			c.X = aabb.Max.X
		}
		if i&2 != 0 {
			c.Y = aabb.Max.Y
		}
		if i&4 != 0 {
			c.Z = aabb.Max.Z
		}
		corners[i] = c
	}
	return corners
}

// Expand returns an AABB grown by amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// BoundingSphere is a spherical bounding volume
type BoundingSphere struct {
	Center Vec3
	Radius float64
}

// NewBoundingSphere creates a new BoundingSphere
func NewBoundingSphere(center Vec3, radius float64) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// Intersect reports whether the ray passes within the sphere ahead of its origin
func (s BoundingSphere) Intersect(ray Ray) bool {
	oc := s.Center.Subtract(ray.Origin)
	r2 := s.Radius * s.Radius
	if oc.LengthSquared() <= r2 {
		return true
	}
	along := oc.Dot(ray.Direction)
	if along < 0 {
		return false
	}
	return oc.LengthSquared()-along*along <= r2
}

// Box returns the AABB enclosing the sphere
func (s BoundingSphere) Box() AABB {
	r := NewVec3(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Subtract(r), Max: s.Center.Add(r)}
}
