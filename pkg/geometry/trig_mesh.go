package geometry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Face indexes the three corners of a mesh triangle
type Face struct {
	V      [3]int // vertex indices
	N      [3]int // normal indices, used when Smooth
	Smooth bool
}

// TrigMesh is an indexed triangle mesh. Its cluster hierarchy is built on
// first use and rebuilt after any mutation.
type TrigMesh struct {
	vertices []core.Vec3
	normals  []core.Vec3
	faces    []Face

	mu     sync.Mutex
	cache  atomic.Pointer[Cluster]
	builds atomic.Int64
}

// NewTrigMesh creates a mesh from vertices, optional vertex normals and
// faces. It panics when a face references a missing vertex or normal.
func NewTrigMesh(vertices, normals []core.Vec3, faces []Face) *TrigMesh {
	for i, f := range faces {
		for k := 0; k < 3; k++ {
			if f.V[k] < 0 || f.V[k] >= len(vertices) {
				panic(fmt.Sprintf("face %d: vertex index %d out of bounds", i, f.V[k]))
			}
			if f.Smooth && (f.N[k] < 0 || f.N[k] >= len(normals)) {
				panic(fmt.Sprintf("face %d: normal index %d out of bounds", i, f.N[k]))
			}
		}
	}

	return &TrigMesh{
		vertices: append([]core.Vec3(nil), vertices...),
		normals:  append([]core.Vec3(nil), normals...),
		faces:    append([]Face(nil), faces...),
	}
}

// Len returns the number of triangles
func (m *TrigMesh) Len() int {
	return len(m.faces)
}

// Cluster returns the acceleration structure, building it at most once
// per mutation even under concurrent first access
func (m *TrigMesh) Cluster() *Cluster {
	if c := m.cache.Load(); c != nil {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c := m.cache.Load(); c != nil {
		return c
	}
	c := NewCluster(m.trigs())
	m.builds.Add(1)
	m.cache.Store(c)
	return c
}

// Prepare builds the cluster ahead of rendering
func (m *TrigMesh) Prepare() {
	m.Cluster()
}

// Translate moves every vertex by d and invalidates the cluster.
// It must not run concurrently with rendering.
func (m *TrigMesh) Translate(d core.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].Add(d)
	}
	m.cache.Store(nil)
}

// trigs expands the faces into cluster entries
func (m *TrigMesh) trigs() []MeshTrig {
	trigs := make([]MeshTrig, len(m.faces))
	for i, f := range m.faces {
		trigs[i].Trig = core.NewTrig(m.vertices[f.V[0]], m.vertices[f.V[1]], m.vertices[f.V[2]])
		if f.Smooth {
			trigs[i].Normals = &[3]core.Vec3{
				m.normals[f.N[0]].Normalize(),
				m.normals[f.N[1]].Normalize(),
				m.normals[f.N[2]].Normalize(),
			}
		}
	}
	return trigs
}

// Intersect queries the cluster, building it if needed
func (m *TrigMesh) Intersect(ray core.Ray) (core.Hit, bool) {
	return m.Cluster().Intersect(ray)
}

// ConstNormal reports none
func (m *TrigMesh) ConstNormal() (core.Vec3, bool) {
	return core.Vec3{}, false
}

// Bound returns the root box of the cluster
func (m *TrigMesh) Bound() (core.Bound, bool) {
	if len(m.faces) == 0 {
		return nil, false
	}
	return m.Cluster().Box, true
}

// Render returns the default color
func (m *TrigMesh) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return core.DefaultColor, true
}
