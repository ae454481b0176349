package interact

import (
	"vinyl-portfolio/internal/scenegraph"
)

// Category is the semantic object a pointer is over.
type Category int

const (
	None Category = iota
	Table
	ShelfVinyls
	TopVinylGroup
)

func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Table:
		return "table"
	case ShelfVinyls:
		return "shelf-vinyls"
	case TopVinylGroup:
		return "top-vinyl"
	}
	return "unknown"
}

// Hit is the result of classifying a raycast hit. Node is the interactable root the hit
// belongs to: the specific vinyl for ShelfVinyls, the top vinyl for TopVinylGroup.
type Hit struct {
	Category Category
	Node     *scenegraph.Node
}

// Registry lists the interactable roots of the current scene. Any field may be nil or empty.
type Registry struct {
	TableDisc   *scenegraph.Node
	TableMeshes []*scenegraph.Node
	Vinyls      []*scenegraph.Node
	TopVinyl    *scenegraph.Node
	ShelfDisc   *scenegraph.Node
	// Caption follows the top vinyl on hover but is never a raycast target.
	Caption *scenegraph.Node
}

// Empty reports whether the registry holds no raycast targets.
func (r *Registry) Empty() bool {
	return r == nil || len(r.Targets()) == 0
}

// Targets returns the nodes raycast against, descendants included by the caller: every
// table mesh, the shelf vinyls, the top vinyl and the shelf disc.
func (r *Registry) Targets() []*scenegraph.Node {
	if r == nil {
		return nil
	}
	out := make([]*scenegraph.Node, 0, len(r.TableMeshes)+len(r.Vinyls)+2)
	out = append(out, r.TableMeshes...)
	out = append(out, r.Vinyls...)
	if r.TopVinyl != nil {
		out = append(out, r.TopVinyl)
	}
	if r.ShelfDisc != nil {
		out = append(out, r.ShelfDisc)
	}
	return out
}

// Classify maps a raycast hit to the root it belongs to. The top vinyl and shelf disc are
// checked first and both report the top vinyl; shelf vinyls next; the table disc last.
func (r *Registry) Classify(hit *scenegraph.Node) Hit {
	if r == nil || hit == nil {
		return Hit{}
	}
	if r.TopVinyl != nil && (belongsTo(hit, r.TopVinyl) || belongsTo(hit, r.ShelfDisc)) {
		return Hit{Category: TopVinylGroup, Node: r.TopVinyl}
	}
	for _, v := range r.Vinyls {
		if belongsTo(hit, v) {
			return Hit{Category: ShelfVinyls, Node: v}
		}
	}
	if belongsTo(hit, r.TableDisc) {
		return Hit{Category: Table, Node: r.TableDisc}
	}
	return Hit{}
}

// belongsTo reports whether hit is root, one of its children or any deeper descendant.
func belongsTo(hit, root *scenegraph.Node) bool {
	if root == nil {
		return false
	}
	return hit == root || root.HasChild(hit) || hit.DescendsFrom(root)
}
