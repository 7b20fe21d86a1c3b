package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Projection selects how primary rays leave the viewport
type Projection int

const (
	// Perspective rays start at the viewport and point away from the camera
	Perspective Projection = iota
	// Orthogonal rays all travel along the viewport normal
	Orthogonal
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthogonal:
		return "orthogonal"
	default:
		return "unknown"
	}
}

// DefaultMaxDepth bounds the recursion of secondary rays
const DefaultMaxDepth = 5

// Scene holds everything needed to trace rays. It must not be modified
// while a render is running.
type Scene struct {
	VPPlane    core.Plane // viewport plane, R0 is its center
	VPWidth    float64    // viewport half-width
	VPHeight   float64    // viewport half-height
	Camera     core.Vec3
	Projection Projection

	Objects []core.Object
	Lights  []core.PointLight

	Ambient         core.Color // returned for escaped rays
	BackgroundLight core.Color // floor of diffuse intensity
	MaxDepth        int

	nextID uint64
}

// New creates an empty scene looking through the given viewport
func New(vp core.Plane, vpWidth, vpHeight float64, camera core.Vec3, projection Projection) *Scene {
	return &Scene{
		VPPlane:    vp,
		VPWidth:    vpWidth,
		VPHeight:   vpHeight,
		Camera:     camera,
		Projection: projection,
		Ambient:    core.Black,
		MaxDepth:   DefaultMaxDepth,
	}
}

// AddObject appends an object. Earlier objects win exact distance ties.
// Shaded objects inside it are numbered in the order they are added, so
// rebuilding a scene reproduces its noise.
func (s *Scene) AddObject(obj core.Object) {
	s.assignIDs(obj)
	s.Objects = append(s.Objects, obj)
}

type idSetter interface {
	SetID(id uint64)
}

func (s *Scene) assignIDs(obj core.Object) {
	for obj != nil {
		if o, ok := obj.(idSetter); ok {
			s.nextID++
			o.SetID(s.nextID)
		}
		inner, ok := obj.(interface{ Inner() core.Object })
		if !ok {
			return
		}
		obj = inner.Inner()
	}
}

// AddLight appends a point light
func (s *Scene) AddLight(light core.PointLight) {
	s.Lights = append(s.Lights, light)
}

// AddWhiteLight appends a white point light at pos
func (s *Scene) AddWhiteLight(pos core.Vec3, brightness float64) {
	s.AddLight(core.NewWhiteLight(pos, brightness))
}

func (s *Scene) GetLights() []core.PointLight {
	return s.Lights
}

func (s *Scene) GetBackgroundLight() core.Color {
	return s.BackgroundLight
}

// Prepare builds object caches ahead of a render
func (s *Scene) Prepare() {
	for _, obj := range s.Objects {
		if p, ok := obj.(core.Preparer); ok {
			p.Prepare()
		}
	}
}

// ViewportPoint maps sub-pixel coordinates of a width x height image onto
// the viewport plane. Screen y grows downwards.
func (s *Scene) ViewportPoint(x, y float64, width, height int) core.Vec3 {
	dx := s.VPWidth * 2 / float64(width)
	dy := -s.VPHeight * 2 / float64(height)
	w, h := float64(width/2), float64(height/2)

	shiftX := s.VPPlane.PrimaryAxis().Multiply(dx * (x - w))
	shiftY := s.VPPlane.SecondaryAxis().Multiply(dy * (y - h))
	return s.VPPlane.R0.Add(shiftX).Add(shiftY)
}

// GenerateRay returns the primary ray through sub-pixel (x, y)
func (s *Scene) GenerateRay(x, y float64, width, height int) core.Ray {
	origin := s.ViewportPoint(x, y, width, height)
	if s.Projection == Orthogonal {
		return core.NewRay(origin, s.VPPlane.N)
	}
	return core.NewRay(origin, origin.Subtract(s.Camera))
}

// NearestHit returns the closest object hit by ray. Objects whose constant
// normal faces along the ray and objects whose bound the ray misses are
// skipped without an intersection test.
func (s *Scene) NearestHit(ray core.Ray) (core.Object, core.Hit, bool) {
	return s.nearestWithin(ray, math.Inf(1))
}

func (s *Scene) nearestWithin(ray core.Ray, maxDist2 float64) (core.Object, core.Hit, bool) {
	var (
		best    core.Object
		bestHit core.Hit
	)
	minDist2 := maxDist2
	for _, obj := range s.Objects {
		if n, ok := obj.ConstNormal(); ok && ray.Direction.Dot(n) >= 0 {
			continue
		}
		if b, ok := obj.Bound(); ok && !b.Intersect(ray) {
			continue
		}
		hit, ok := obj.Intersect(ray)
		if !ok {
			continue
		}
		if d := core.Dist2(hit.Pos, ray.Origin); d < minDist2 {
			best, bestHit, minDist2 = obj, hit, d
		}
	}
	return best, bestHit, best != nil
}

// IsBlocked reports whether something lies strictly closer than lightDist2
// along the ray
func (s *Scene) IsBlocked(ray core.Ray, lightDist2 float64) bool {
	_, _, ok := s.nearestWithin(ray, lightDist2)
	return ok
}

// TraceRay colors ray at the given recursion depth. Rays past the depth
// limit and rays that escape return the ambient color.
func (s *Scene) TraceRay(ray core.Ray, depth int) (core.Color, bool) {
	if depth >= s.MaxDepth {
		return s.Ambient, true
	}

	obj, hit, ok := s.NearestHit(ray)
	if !ok {
		return s.Ambient, true
	}

	c, ok := obj.Render(s, core.Incidence{Ray: ray, Hit: hit, Object: obj, Depth: depth})
	if !ok {
		return s.Ambient, true
	}
	return c, true
}

// Stats summarizes the scene contents
type Stats struct {
	Objects   int
	Lights    int
	Triangles int
}

// triangleCounter is implemented by meshes and their decorators
type triangleCounter interface {
	Len() int
}

// GetStats counts objects, lights and mesh triangles
func (s *Scene) GetStats() Stats {
	st := Stats{Objects: len(s.Objects), Lights: len(s.Lights)}
	for _, obj := range s.Objects {
		st.Triangles += countTriangles(obj)
	}
	return st
}

func countTriangles(obj core.Object) int {
	switch o := obj.(type) {
	case triangleCounter:
		return o.Len()
	case interface{ Inner() core.Object }:
		return countTriangles(o.Inner())
	default:
		return 0
	}
}
