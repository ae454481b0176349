package render

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/scenegraph"
)

// item is one node queued for drawing with its world matrix resolved.
type item struct {
	node  *scenegraph.Node
	world mgl32.Mat4
	depth float32 // squared distance to the eye, used to order transparent items
}

// collect walks the visible part of the scene and splits drawable nodes into opaque and
// transparent lists. Transparent items come back farthest first.
func collect(root *scenegraph.Node, eye mgl32.Vec3) (opaque, transparent []item) {
	var walk func(n *scenegraph.Node, parent mgl32.Mat4)
	walk = func(n *scenegraph.Node, parent mgl32.Mat4) {
		if !n.Visible {
			return
		}
		world := parent.Mul4(n.LocalMatrix())
		if drawable(n) {
			it := item{node: n, world: world}
			if n.Material.Transparent || n.Kind == scenegraph.KindEdges {
				d := world.Col(3).Vec3().Sub(eye)
				it.depth = d.Dot(d)
				transparent = append(transparent, it)
			} else {
				opaque = append(opaque, it)
			}
		}
		for _, c := range n.Children() {
			walk(c, world)
		}
	}
	walk(root, mgl32.Ident4())
	sort.SliceStable(transparent, func(i, j int) bool {
		return transparent[i].depth > transparent[j].depth
	})
	return opaque, transparent
}

func drawable(n *scenegraph.Node) bool {
	if n.Disposed() || n.Geometry == nil || n.Material == nil {
		return false
	}
	return n.Kind == scenegraph.KindMesh || n.Kind == scenegraph.KindEdges
}

// segment is a line from A to B in local space.
type segment struct{ A, B mgl32.Vec3 }

// edges returns the outline segments of g in its local space.
func edges(g *scenegraph.Geometry) []segment {
	switch g.Shape {
	case scenegraph.ShapeBox:
		h := g.Size.Mul(0.5)
		c := [8]mgl32.Vec3{}
		for i := range c {
			c[i] = mgl32.Vec3{sign(i&1, h.X()), sign(i&2, h.Y()), sign(i&4, h.Z())}
		}
		pairs := [12][2]int{
			{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
			{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
			{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
		}
		out := make([]segment, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, segment{c[p[0]], c[p[1]]})
		}
		return out
	case scenegraph.ShapePlane:
		w, h := g.Size.X()/2, g.Size.Y()/2
		a := mgl32.Vec3{-w, -h, 0}
		b := mgl32.Vec3{w, -h, 0}
		c := mgl32.Vec3{w, h, 0}
		d := mgl32.Vec3{-w, h, 0}
		return []segment{{a, b}, {b, c}, {c, d}, {d, a}}
	case scenegraph.ShapeRing:
		inner := circle(g.Inner, g.Segments)
		outer := circle(g.Outer, g.Segments)
		out := make([]segment, 0, 2*g.Segments)
		for i := 0; i < g.Segments; i++ {
			j := (i + 1) % g.Segments
			out = append(out, segment{inner[i], inner[j]}, segment{outer[i], outer[j]})
		}
		return out
	}
	return nil
}

func sign(bit int, v float32) float32 {
	if bit != 0 {
		return v
	}
	return -v
}

// circle returns n points on a circle of radius r in the XY plane, counter-clockwise seen from +Z.
func circle(r float32, n int) []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, n)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = mgl32.Vec3{r * math32.Cos(a), r * math32.Sin(a), 0}
	}
	return pts
}

// triangle is counter-clockwise when seen from its front.
type triangle [3]mgl32.Vec3

// ringTriangles tessellates a ring geometry facing +Z.
func ringTriangles(g *scenegraph.Geometry) []triangle {
	inner := circle(g.Inner, g.Segments)
	outer := circle(g.Outer, g.Segments)
	out := make([]triangle, 0, 2*g.Segments)
	for i := 0; i < g.Segments; i++ {
		j := (i + 1) % g.Segments
		out = append(out,
			triangle{inner[i], outer[i], outer[j]},
			triangle{inner[i], outer[j], inner[j]},
		)
	}
	return out
}

// planeBasis maps raylib's unit XZ plane (facing +Y) onto a plane geometry in XY facing +Z.
func planeBasis(g *scenegraph.Geometry) mgl32.Mat4 {
	return mgl32.Scale3D(g.Size.X(), g.Size.Y(), 1).Mul4(mgl32.HomogRotate3DX(math32.Pi / 2))
}

// boxBasis scales raylib's unit cube to a box geometry.
func boxBasis(g *scenegraph.Geometry) mgl32.Mat4 {
	return mgl32.Scale3D(g.Size.X(), g.Size.Y(), g.Size.Z())
}
