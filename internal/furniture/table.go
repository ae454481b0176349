package furniture

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/scenegraph"
)

// TableOptions sizes the record-player table. Zero fields take the defaults.
type TableOptions struct {
	Position  mgl32.Vec3
	Width     float32
	Depth     float32
	TopHeight float32
	LegHeight float32
	LegSize   float32
	LegColor  uint32
	TopColor  uint32
}

// DefaultTableOptions is an 8x8 table on 1-unit legs at the origin.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Width:     8,
		Depth:     8,
		TopHeight: 0.5,
		LegHeight: 1,
		LegSize:   1,
		LegColor:  0x592C0C,
		TopColor:  0x592C0C,
	}
}

func (o TableOptions) withDefaults() TableOptions {
	d := DefaultTableOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Depth <= 0 {
		o.Depth = d.Depth
	}
	if o.TopHeight <= 0 {
		o.TopHeight = d.TopHeight
	}
	if o.LegHeight <= 0 {
		o.LegHeight = d.LegHeight
	}
	if o.LegSize <= 0 {
		o.LegSize = d.LegSize
	}
	if o.LegColor == 0 {
		o.LegColor = d.LegColor
	}
	if o.TopColor == 0 {
		o.TopColor = d.TopColor
	}
	return o
}

const (
	discInner     = 1
	discOuter     = 3
	discLift      = 0.35
	armColor      = 0x333333
	coverColor    = 0xffffff
	coverOpacity  = 0.7
	coverHeight   = 5.5
	coverTopY     = 9.5
	armHolderSize = 0.5
)

// Table is the record-player table plus handles to its parts.
type Table struct {
	Root *scenegraph.Node
	// Meshes lists every mesh under Root; all of them are raycast targets.
	Meshes []*scenegraph.Node
	// Disc is the spinning record, the only part that reacts to hover and click.
	Disc *scenegraph.Node
}

// NewTable builds the table described by opts.
func NewTable(opts TableOptions) *Table {
	o := opts.withDefaults()
	t := &Table{Root: scenegraph.NewGroup("table")}
	t.Root.Position = o.Position

	halfW := o.Width/2 - 0.5
	halfD := o.Depth/2 - 0.5
	legY := o.LegHeight / 2
	for i, p := range []mgl32.Vec3{
		{-halfW, legY, -halfD},
		{halfW, legY, -halfD},
		{-halfW, legY, halfD},
		{halfW, legY, halfD},
	} {
		leg := scenegraph.NewMesh(legName(i), scenegraph.Box(o.LegSize, o.LegHeight, o.LegSize), scenegraph.Solid(o.LegColor))
		leg.Position = p
		t.add(leg)
	}

	surface := o.LegHeight + o.TopHeight/2
	top := scenegraph.NewMesh("table-top", scenegraph.Box(o.Width, o.TopHeight, o.Depth), scenegraph.Solid(o.TopColor))
	top.Position = mgl32.Vec3{0, surface, 0}
	t.add(top)

	discMat := scenegraph.Solid(0x000000)
	discMat.DoubleSided = true
	t.Disc = scenegraph.NewMesh("table-disc", scenegraph.Ring(discInner, discOuter, discSegments), discMat)
	t.Disc.Rotation = scenegraph.EulerXYZ(math32.Pi/2, 0, 0)
	t.Disc.Position = mgl32.Vec3{0, surface + discLift, 0}
	t.add(t.Disc)

	holder := scenegraph.NewMesh("arm-holder", scenegraph.Box(armHolderSize, armHolderSize, armHolderSize), scenegraph.Solid(armColor))
	holder.Position = mgl32.Vec3{-3.5, surface + discLift, 0}
	t.add(holder)

	arm := scenegraph.NewMesh("arm", scenegraph.Box(2, 0.1, 0.1), scenegraph.Solid(armColor))
	arm.Position = mgl32.Vec3{-2.5, surface + 0.6, 0}
	t.add(arm)

	cover := func(name string, g *scenegraph.Geometry, pos mgl32.Vec3, rotY float32) {
		m := scenegraph.NewMesh(name, g, &scenegraph.Material{
			Color:       scenegraph.Hex(coverColor),
			Opacity:     coverOpacity,
			Transparent: true,
		})
		m.Position = pos
		m.Rotation = scenegraph.EulerXYZ(0, rotY, 0)
		t.add(m)
	}
	cover("cover-back", scenegraph.Box(8, 8, 0.1), mgl32.Vec3{0, coverHeight, -4}, 0)
	cover("cover-left", scenegraph.Box(0.5, 8, 0.1), mgl32.Vec3{-4, coverHeight, -3.7}, math32.Pi/2)
	cover("cover-right", scenegraph.Box(0.5, 8, 0.1), mgl32.Vec3{4, coverHeight, -3.7}, math32.Pi/2)
	cover("cover-top", scenegraph.Box(8, 0.1, 0.5), mgl32.Vec3{0, coverTopY, -3.75}, 0)
	return t
}

func (t *Table) add(n *scenegraph.Node) {
	t.Root.Add(n)
	t.Meshes = append(t.Meshes, n)
}

func legName(i int) string {
	return [...]string{"leg-front-left", "leg-front-right", "leg-back-left", "leg-back-right"}[i]
}

// Spin turns n by angle radians about its own Z axis.
func Spin(n *scenegraph.Node, angle float32) {
	if n == nil {
		return
	}
	n.Rotation = n.Rotation.Mul(mgl32.QuatRotate(angle, mgl32.Vec3{0, 0, 1}))
}

// NewFloor returns a square ground plane of the given size lying at y=0, facing up.
func NewFloor(name string, size float32, color uint32) *scenegraph.Node {
	f := scenegraph.NewMesh(name, scenegraph.Plane(size, size), scenegraph.Solid(color))
	f.Rotation = scenegraph.EulerXYZ(-math32.Pi/2, 0, 0)
	return f
}
