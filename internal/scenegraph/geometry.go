package scenegraph

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// Shape is the primitive a Geometry describes.
type Shape int

const (
	// ShapeBox is centred on the origin with extents Size.
	ShapeBox Shape = iota
	// ShapePlane lies in the local XY plane, Size.X wide and Size.Y tall, facing +Z.
	ShapePlane
	// ShapeRing is an annulus in the local XY plane between Inner and Outer radius.
	ShapeRing
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapePlane:
		return "plane"
	case ShapeRing:
		return "ring"
	}
	return "unknown"
}

// Geometry is the CPU description of a primitive. The renderer builds GPU meshes from it
// lazily and drops them when the owning node is released.
type Geometry struct {
	Shape    Shape
	Size     mgl32.Vec3
	Inner    float32
	Outer    float32
	Segments int
}

// Box returns a box geometry of the given width, height and depth.
func Box(w, h, d float32) *Geometry {
	return &Geometry{Shape: ShapeBox, Size: mgl32.Vec3{w, h, d}}
}

// Plane returns a plane geometry of the given width and height.
func Plane(w, h float32) *Geometry {
	return &Geometry{Shape: ShapePlane, Size: mgl32.Vec3{w, h, 0}}
}

// Ring returns an annulus geometry. segments below 3 are raised to 3.
func Ring(inner, outer float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	return &Geometry{Shape: ShapeRing, Inner: inner, Outer: outer, Segments: segments}
}

// Clone returns a deep copy of g.
func (g *Geometry) Clone() *Geometry {
	out := &Geometry{}
	if err := copier.CopyWithOption(out, g, copier.Option{DeepCopy: true}); err != nil {
		c := *g
		return &c
	}
	return out
}

// Scaled returns a copy of g with every vertex pushed outward from the origin by factor.
func (g *Geometry) Scaled(factor float32) *Geometry {
	out := g.Clone()
	out.Size = out.Size.Mul(factor)
	out.Inner *= factor
	out.Outer *= factor
	return out
}

// intersectLocal returns the ray parameter of the nearest hit with g in g's local space,
// or false if the ray misses. dir need not be normalized.
func (g *Geometry) intersectLocal(origin, dir mgl32.Vec3) (float32, bool) {
	switch g.Shape {
	case ShapeBox:
		return intersectBox(origin, dir, g.Size.Mul(0.5))
	case ShapePlane:
		t, p, ok := intersectZPlane(origin, dir)
		if !ok {
			return 0, false
		}
		if math32.Abs(p.X()) > g.Size.X()/2 || math32.Abs(p.Y()) > g.Size.Y()/2 {
			return 0, false
		}
		return t, true
	case ShapeRing:
		t, p, ok := intersectZPlane(origin, dir)
		if !ok {
			return 0, false
		}
		r := math32.Hypot(p.X(), p.Y())
		if r < g.Inner || r > g.Outer {
			return 0, false
		}
		return t, true
	}
	return 0, false
}

// intersectZPlane intersects the ray with z = 0.
func intersectZPlane(origin, dir mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	if math32.Abs(dir.Z()) < 1e-8 {
		return 0, mgl32.Vec3{}, false
	}
	t := -origin.Z() / dir.Z()
	if t < 0 {
		return 0, mgl32.Vec3{}, false
	}
	return t, origin.Add(dir.Mul(t)), true
}

// intersectBox is the slab test against an origin-centred box with half extents half.
func intersectBox(origin, dir, half mgl32.Vec3) (float32, bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)
	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) < 1e-8 {
			if origin[i] < -half[i] || origin[i] > half[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (-half[i] - origin[i]) * inv
		t2 := (half[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
