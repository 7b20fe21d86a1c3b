package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ClusterLimit is the most triangles a leaf cluster holds
const ClusterLimit = 4

// boxPadding grows every cluster box so hits on triangle edges are never
// rejected by rounding in the slab test
const boxPadding = 1e-9

// MeshTrig is a triangle stored in a Cluster, with optional per-vertex normals
type MeshTrig struct {
	Trig    core.Trig
	Normals *[3]core.Vec3 // nil for flat shading
}

// Intersect returns the hit and its squared distance from the ray origin.
// The hit is inside when the ray approaches from the back face.
func (m MeshTrig) Intersect(ray core.Ray) (core.Hit, float64, bool) {
	dist, u, v, ok := m.Trig.Intersect(ray)
	if !ok {
		return core.Hit{}, 0, false
	}

	face := m.Trig.N()
	norm := face
	if m.Normals != nil {
		n := m.Normals
		norm = n[0].Multiply(1 - u - v).Add(n[1].Multiply(u)).Add(n[2].Multiply(v))
		if norm.IsZero() {
			norm = face
		}
	}

	hit := core.NewHit(ray.At(dist), norm, ray.Direction.Dot(face) >= 0)
	return hit, dist * dist, true
}

// Cluster is a loose octree over triangle centroids. A node either holds
// at most ClusterLimit triangles or up to eight children.
type Cluster struct {
	Box      core.AABB
	Children []*Cluster
	Trigs    []MeshTrig // leaf entries, nil for internal nodes
}

// NewCluster builds a cluster hierarchy over trigs
func NewCluster(trigs []MeshTrig) *Cluster {
	// Copy so callers can keep mutating their own slice
	owned := make([]MeshTrig, len(trigs))
	copy(owned, trigs)
	return buildCluster(owned)
}

func buildCluster(trigs []MeshTrig) *Cluster {
	if len(trigs) == 0 {
		return &Cluster{}
	}

	box := trigs[0].Trig.Box()
	center := core.Vec3{}
	for _, t := range trigs {
		box = box.Union(t.Trig.Box())
		center = center.Add(t.Trig.Centroid())
	}
	box = box.Expand(boxPadding)

	if len(trigs) <= ClusterLimit {
		return &Cluster{Box: box, Trigs: trigs}
	}

	center = center.Multiply(1 / float64(len(trigs)))
	var buckets [8][]MeshTrig
	for _, t := range trigs {
		idx := bucketIndex(t.Trig.Centroid(), center)
		buckets[idx] = append(buckets[idx], t)
	}

	nonEmpty := 0
	for _, b := range buckets {
		if len(b) > 0 {
			nonEmpty++
		}
	}
	// All centroids landed on the same side of every axis; splitting would
	// never shrink the set
	if nonEmpty < 2 {
		return &Cluster{Box: box, Trigs: trigs}
	}

	node := &Cluster{Box: box}
	for _, b := range buckets {
		if len(b) > 0 {
			node.Children = append(node.Children, buildCluster(b))
		}
	}
	return node
}

// bucketIndex sets one bit per axis where the centroid lies below center
func bucketIndex(c, center core.Vec3) int {
	idx := 0
	if c.Z < center.Z {
		idx |= 1
	}
	if c.Y < center.Y {
		idx |= 2
	}
	if c.X < center.X {
		idx |= 4
	}
	return idx
}

// Intersect returns the nearest triangle hit along the ray
func (c *Cluster) Intersect(ray core.Ray) (core.Hit, bool) {
	hit, _, ok := c.intersect(ray)
	return hit, ok
}

// intersect returns the nearest hit in the subtree and its squared distance
func (c *Cluster) intersect(ray core.Ray) (core.Hit, float64, bool) {
	if c.Children == nil && len(c.Trigs) == 0 {
		return core.Hit{}, 0, false
	}
	if !c.Box.Intersect(ray) {
		return core.Hit{}, 0, false
	}

	var best core.Hit
	bestDist := math.Inf(1)
	found := false

	for _, t := range c.Trigs {
		if hit, d2, ok := t.Intersect(ray); ok && d2 < bestDist {
			best, bestDist, found = hit, d2, true
		}
	}
	for _, child := range c.Children {
		if hit, d2, ok := child.intersect(ray); ok && d2 < bestDist {
			best, bestDist, found = hit, d2, true
		}
	}

	return best, bestDist, found
}

// ClusterStats describes the shape of a cluster hierarchy
type ClusterStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	TotalTrigs int
	MaxLeaf    int
}

// Stats walks the hierarchy and collects its statistics
func (c *Cluster) Stats() ClusterStats {
	var stats ClusterStats
	c.collectStats(0, &stats)
	return stats
}

// collectStats walks the subtree accumulating node counts
func (c *Cluster) collectStats(depth int, stats *ClusterStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if c.Children == nil {
		stats.LeafNodes++
		stats.TotalTrigs += len(c.Trigs)
		if len(c.Trigs) > stats.MaxLeaf {
			stats.MaxLeaf = len(c.Trigs)
		}
		return
	}
	for _, child := range c.Children {
		child.collectStats(depth+1, stats)
	}
}
