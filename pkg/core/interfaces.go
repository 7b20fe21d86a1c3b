package core

// Object is anything a ray can hit and that knows how to color the hit
type Object interface {
	// Intersect returns the nearest hit ahead of the ray origin
	Intersect(ray Ray) (Hit, bool)

	// ConstNormal returns the normal shared by the whole surface, if any.
	// Objects reporting one are skipped for rays travelling along it.
	ConstNormal() (Vec3, bool)

	// Bound returns a bounding volume enclosing the object, if any
	Bound() (Bound, bool)

	// Render colors the incidence. False means no contribution.
	Render(t Tracer, i Incidence) (Color, bool)
}

// Shader is a node of the shading graph
type Shader interface {
	Render(t Tracer, i Incidence) (Color, bool)
}

// Tracer is the read-only view of a scene available while shading
type Tracer interface {
	TraceRay(ray Ray, depth int) (Color, bool)
	NearestHit(ray Ray) (Object, Hit, bool)
	IsBlocked(ray Ray, lightDist2 float64) bool
	GetLights() []PointLight
	GetBackgroundLight() Color
}

// Incidence is the context a shader evaluates: the ray, what it hit and
// how deep the recursion already is
type Incidence struct {
	Ray    Ray
	Hit    Hit
	Object Object
	Depth  int
}

// Preparer is implemented by objects that build caches before rendering
type Preparer interface {
	Prepare()
}

// Identified is implemented by objects carrying a stable identity
type Identified interface {
	ID() uint64
}

// DefaultColor is rendered by objects that carry no shader
var DefaultColor = Blue
