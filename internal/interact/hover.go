package interact

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"vinyl-portfolio/internal/scenegraph"
)

const (
	vinylShift    = 1
	topVinylRaise = 0.5
)

// rootState is what the hover machine remembers about one interactable root.
type rootState struct {
	original mgl32.Vec3
	overlay  *scenegraph.Node
}

// HoverMachine owns the single active hover category and its visual effects. Entering a
// category always fully reverts the previous one first; at most one overlay exists per root.
type HoverMachine struct {
	Logger zerolog.Logger

	reg     *Registry
	current Category
	roots   map[*scenegraph.Node]*rootState
	release func(*scenegraph.Node)
}

// NewHoverMachine returns a machine in the None state. release is called for every overlay
// that is removed so its resources can be freed; it may be nil.
func NewHoverMachine(log zerolog.Logger, release func(*scenegraph.Node)) *HoverMachine {
	return &HoverMachine{
		Logger:  log,
		roots:   make(map[*scenegraph.Node]*rootState),
		release: release,
	}
}

// Track starts tracking the roots of reg, snapshotting their current local positions as the
// originals every revert restores. Any previous state is forgotten as with Reset.
func (h *HoverMachine) Track(reg *Registry) {
	h.Reset()
	h.reg = reg
	if reg == nil {
		return
	}
	snap := func(n *scenegraph.Node) {
		if n != nil {
			h.roots[n] = &rootState{original: n.Position}
		}
	}
	snap(reg.TableDisc)
	for _, v := range reg.Vinyls {
		snap(v)
	}
	snap(reg.TopVinyl)
	snap(reg.ShelfDisc)
	snap(reg.Caption)
}

// Current returns the active hover category.
func (h *HoverMachine) Current() Category { return h.current }

// Overlay returns the overlay currently attached for root, or nil.
func (h *HoverMachine) Overlay(root *scenegraph.Node) *scenegraph.Node {
	if st, ok := h.roots[root]; ok {
		return st.overlay
	}
	return nil
}

// SetHover switches to category c and reports whether the category changed. Setting the
// current category again does nothing.
func (h *HoverMachine) SetHover(c Category) bool {
	if c == h.current {
		return false
	}
	h.leave(h.current)
	h.current = c
	if c != None {
		h.enter(c)
	}
	h.Logger.Debug().Stringer("category", c).Msg("hover changed")
	return true
}

// SyncFrame copies each overlaid root's live local transform onto its overlay.
func (h *HoverMachine) SyncFrame() {
	for root, st := range h.roots {
		if st.overlay != nil {
			st.overlay.CopyTransform(root)
		}
	}
}

// Reset forgets all hover state without touching any node. Used after teardown has already
// released the nodes.
func (h *HoverMachine) Reset() {
	h.current = None
	h.reg = nil
	clear(h.roots)
}

func (h *HoverMachine) enter(c Category) {
	if h.reg == nil {
		return
	}
	switch c {
	case Table:
		h.addOverlay(h.reg.TableDisc)
	case ShelfVinyls:
		for _, v := range h.reg.Vinyls {
			h.addOverlay(v)
			if st, ok := h.roots[v]; ok {
				v.Position = st.original
				v.Position[2] = st.original.Z() + vinylShift
			}
		}
	case TopVinylGroup:
		h.addOverlay(h.reg.TopVinyl)
		h.addOverlay(h.reg.ShelfDisc)
		h.raise(h.reg.TopVinyl)
		h.raise(h.reg.ShelfDisc)
		h.raise(h.reg.Caption)
	}
}

func (h *HoverMachine) leave(c Category) {
	if h.reg == nil {
		return
	}
	switch c {
	case Table:
		h.removeOverlay(h.reg.TableDisc)
	case ShelfVinyls:
		for _, v := range h.reg.Vinyls {
			h.removeOverlay(v)
			h.restore(v)
		}
	case TopVinylGroup:
		for _, n := range []*scenegraph.Node{h.reg.TopVinyl, h.reg.ShelfDisc} {
			h.removeOverlay(n)
			h.restore(n)
		}
		h.restore(h.reg.Caption)
	}
}

func (h *HoverMachine) raise(n *scenegraph.Node) {
	if st, ok := h.roots[n]; ok {
		n.Position = st.original
		n.Position[1] = st.original.Y() + topVinylRaise
	}
}

func (h *HoverMachine) restore(n *scenegraph.Node) {
	if st, ok := h.roots[n]; ok {
		n.Position = st.original
	}
}

// addOverlay attaches a fresh outline next to root, replacing any existing one.
func (h *HoverMachine) addOverlay(root *scenegraph.Node) {
	st, ok := h.roots[root]
	if !ok || root.Parent() == nil {
		return
	}
	h.removeOverlay(root)
	o := NewOutline(root)
	if o == nil {
		return
	}
	root.Parent().Add(o)
	st.overlay = o
}

func (h *HoverMachine) removeOverlay(root *scenegraph.Node) {
	st, ok := h.roots[root]
	if !ok || st.overlay == nil {
		return
	}
	if p := st.overlay.Parent(); p != nil {
		p.Remove(st.overlay)
	}
	if h.release != nil {
		h.release(st.overlay)
	}
	st.overlay = nil
}
