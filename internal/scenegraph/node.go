package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// Kind tells the renderer and raycaster how to treat a node.
type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	// KindEdges draws only the silhouette edges of its geometry (line segments).
	KindEdges
	KindLight
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindMesh:
		return "mesh"
	case KindEdges:
		return "edges"
	case KindLight:
		return "light"
	}
	return "unknown"
}

// Node is a renderable primitive or group. A node has at most one parent and an ordered list of
// children. Position, Rotation and Scale are local to the parent, applied as T * R * S.
// Detaching (Remove) and releasing resources (Scene.Release) are separate operations.
type Node struct {
	Name     string
	Kind     Kind
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Visible  bool

	Geometry *Geometry
	Material *Material
	Light    *Light

	parent   *Node
	children []*Node
	disposed bool
}

// NewGroup returns an empty group node with an identity transform.
func NewGroup(name string) *Node {
	return newNode(name, KindGroup)
}

// NewMesh returns a mesh node drawing geometry with material.
func NewMesh(name string, geometry *Geometry, material *Material) *Node {
	n := newNode(name, KindMesh)
	n.Geometry = geometry
	n.Material = material
	return n
}

// NewEdges returns a node that draws the edges of geometry as line segments.
func NewEdges(name string, geometry *Geometry, material *Material) *Node {
	n := newNode(name, KindEdges)
	n.Geometry = geometry
	n.Material = material
	return n
}

// NewLight returns a light node. Lights survive scene teardown.
func NewLight(name string, light Light) *Node {
	n := newNode(name, KindLight)
	n.Light = &light
	return n
}

func newNode(name string, kind Kind) *Node {
	return &Node{
		Name:     name,
		Kind:     kind,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Visible:  true,
	}
}

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Add appends child to n, detaching it from its previous parent first.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n. It does not release the child's resources.
// Returns false when child is not a direct child of n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// HasChild reports whether c is one of n's immediate children.
func (n *Node) HasChild(c *Node) bool {
	for _, k := range n.children {
		if k == c {
			return true
		}
	}
	return false
}

// DescendsFrom reports whether ancestor is on n's parent chain. A node does not descend from itself.
func (n *Node) DescendsFrom(ancestor *Node) bool {
	if ancestor == nil {
		return false
	}
	for p := n.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Traverse calls fn for n and then every descendant, depth first in child order.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// Disposed reports whether the node's resources were released.
func (n *Node) Disposed() bool {
	return n.disposed
}

// LocalMatrix returns T * R * S for the node's local transform.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	s := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(n.Rotation.Normalize().Mat4()).Mul4(s)
}

// WorldMatrix composes local matrices from the root down to n.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// WorldRotation composes rotations from the root down to n. Scale is ignored.
func (n *Node) WorldRotation() mgl32.Quat {
	q := n.Rotation
	for p := n.parent; p != nil; p = p.parent {
		q = p.Rotation.Mul(q)
	}
	return q.Normalize()
}

// CopyTransform sets n's local transform to src's.
func (n *Node) CopyTransform(src *Node) {
	n.Position = src.Position
	n.Rotation = src.Rotation
	n.Scale = src.Scale
}

// EulerXYZ builds a rotation equivalent to rotating about X, then Y, then Z in the node's
// local frame (matrix Rx * Ry * Rz).
func EulerXYZ(x, y, z float32) mgl32.Quat {
	qx := mgl32.QuatRotate(x, mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(y, mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(z, mgl32.Vec3{0, 0, 1})
	return qx.Mul(qy).Mul(qz)
}
