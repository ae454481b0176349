package interact

import (
	"vinyl-portfolio/internal/scenegraph"
)

const (
	outlineColor   = 0x4488ff
	outlineOpacity = 0.95
	outlineScale   = 1.05
)

// NewOutline builds the highlight overlay for target: a copy of its geometry pushed out by 5%
// and drawn as edges only. The caller attaches it next to target; SyncFrame keeps it aligned.
func NewOutline(target *scenegraph.Node) *scenegraph.Node {
	if target == nil || target.Geometry == nil {
		return nil
	}
	m := &scenegraph.Material{
		Color:       scenegraph.Hex(outlineColor),
		Opacity:     outlineOpacity,
		Transparent: true,
		Unlit:       true,
	}
	o := scenegraph.NewEdges(target.Name+"/outline", target.Geometry.Scaled(outlineScale), m)
	o.CopyTransform(target)
	return o
}
