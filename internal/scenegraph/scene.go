package scenegraph

import "image/color"

// Scene is the root of everything drawn in one frame. Lights added at the top level persist
// across Clear; everything else is released and detached.
type Scene struct {
	Root       *Node
	Background color.RGBA

	releaseHooks []func(*Node)
}

// NewScene returns an empty scene with a white background.
func NewScene() *Scene {
	return &Scene{
		Root:       NewGroup("scene"),
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Add attaches n to the scene root.
func (s *Scene) Add(n *Node) {
	s.Root.Add(n)
}

// OnRelease registers fn to be called for every node whose resources are released
// (the renderer uses it to unload GPU meshes and textures).
func (s *Scene) OnRelease(fn func(*Node)) {
	s.releaseHooks = append(s.releaseHooks, fn)
}

// Release frees n's geometry and material and marks it disposed. n stays attached; use
// Node.Remove to detach. Releasing twice is a no-op.
func (s *Scene) Release(n *Node) {
	if n == nil || n.disposed {
		return
	}
	for _, fn := range s.releaseHooks {
		fn(n)
	}
	n.Geometry = nil
	n.Material = nil
	n.disposed = true
}

// ReleaseTree releases n and all of its descendants and returns how many were not released
// before.
func (s *Scene) ReleaseTree(n *Node) int {
	released := 0
	n.Traverse(func(c *Node) {
		if !c.disposed {
			released++
		}
		s.Release(c)
	})
	return released
}

// Clear releases and detaches every top-level node except lights. Returns the number of
// nodes released.
func (s *Scene) Clear() int {
	released := 0
	var keep []*Node
	for _, c := range append([]*Node(nil), s.Root.children...) {
		if c.Kind == KindLight {
			keep = append(keep, c)
			continue
		}
		released += s.ReleaseTree(c)
		s.Root.Remove(c)
	}
	s.Root.children = keep
	return released
}

// Lights returns the top-level light nodes.
func (s *Scene) Lights() []*Node {
	var out []*Node
	for _, c := range s.Root.children {
		if c.Kind == KindLight {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first node named name in depth-first order, or nil.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.Root.Traverse(func(n *Node) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}
