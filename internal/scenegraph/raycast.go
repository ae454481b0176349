package scenegraph

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in world space. Dir is expected to be normalized so hit distances are
// world units.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Intersection is one ray hit.
type Intersection struct {
	Node     *Node
	Distance float32
	Point    mgl32.Vec3
}

// Intersect tests the ray against a single node's geometry (not its children).
// Groups, lights, released and invisible nodes never intersect.
func (r Ray) Intersect(n *Node) (Intersection, bool) {
	if n == nil || n.Geometry == nil || n.disposed || !n.Visible {
		return Intersection{}, false
	}
	if n.Kind != KindMesh && n.Kind != KindEdges {
		return Intersection{}, false
	}
	world := n.WorldMatrix()
	if world.Det() == 0 {
		return Intersection{}, false
	}
	inv := world.Inv()
	o := mgl32.TransformCoordinate(r.Origin, inv)
	d := mgl32.TransformNormal(r.Dir, inv)
	t, ok := n.Geometry.intersectLocal(o, d)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{Node: n, Distance: t, Point: r.At(t)}, true
}

// IntersectObjects tests the ray against nodes (and their descendants when recursive) and
// returns hits sorted nearest first. A node reachable twice is tested once.
func (r Ray) IntersectObjects(nodes []*Node, recursive bool) []Intersection {
	var hits []Intersection
	seen := make(map[*Node]bool)
	test := func(n *Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		if hit, ok := r.Intersect(n); ok {
			hits = append(hits, hit)
		}
	}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if recursive {
			n.Traverse(test)
		} else {
			test(n)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}
