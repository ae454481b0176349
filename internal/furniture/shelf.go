package furniture

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/scenegraph"
)

const (
	discSegments = 32
	edgeColor    = 0x000000
)

// Shelf is a record shelf plus handles to its interactable parts.
type Shelf struct {
	Root *scenegraph.Node
	// Meshes lists every mesh under Root, edge outlines excluded.
	Meshes    []*scenegraph.Node
	Vinyls    []*scenegraph.Node
	TopVinyl  *scenegraph.Node
	ShelfDisc *scenegraph.Node
	Caption   *scenegraph.Node
}

// panel is a box of the shelf frame, in shelf-local units.
type panel struct {
	name string
	size mgl32.Vec3
	pos  mgl32.Vec3
}

var shelfPanels = []panel{
	{"bottom", mgl32.Vec3{10, 1, 10}, mgl32.Vec3{0, 0, 0}},
	{"left", mgl32.Vec3{0.5, 10, 10}, mgl32.Vec3{-4.75, 5, 0}},
	{"right", mgl32.Vec3{0.5, 10, 10}, mgl32.Vec3{4.75, 5, 0}},
	{"back", mgl32.Vec3{10, 10, 0.5}, mgl32.Vec3{0, 5, -4.75}},
	{"middle", mgl32.Vec3{10, 0.5, 10}, mgl32.Vec3{0, 5, 0}},
	{"top", mgl32.Vec3{10, 0.5, 10}, mgl32.Vec3{0, 10, 0}},
}

// NewShelf builds a shelf from layout. The caption is left untextured if its text cannot be
// rendered.
func NewShelf(l Layout) *Shelf {
	s := &Shelf{Root: scenegraph.NewGroup("shelf")}
	s.Root.Position = l.Position.mgl()

	for _, row := range l.Rows {
		for i, c := range row.Colors {
			v := NewVinyl(uint32(c), l.VinylSize.mgl())
			v.Position = mgl32.Vec3{row.X + float32(i)*row.Step, row.Y, 0}
			s.add(v)
			s.Vinyls = append(s.Vinyls, v)
		}
	}

	tv := l.TopVinyl
	s.TopVinyl = scenegraph.NewMesh("top-vinyl", scenegraph.Box(tv.Size[0], tv.Size[1], tv.Size[2]), scenegraph.Solid(uint32(tv.Color)))
	s.TopVinyl.Position = tv.Position.mgl()
	s.TopVinyl.Rotation = scenegraph.EulerXYZ(0, math32.Pi/4, 0)
	s.TopVinyl.Add(scenegraph.NewEdges("top-vinyl/edges", s.TopVinyl.Geometry.Clone(), scenegraph.Solid(edgeColor)))
	s.add(s.TopVinyl)

	c := l.Caption
	capMat := &scenegraph.Material{
		Color:       scenegraph.Hex(0xffffff),
		Opacity:     1,
		Transparent: true,
		DoubleSided: true,
	}
	if img, err := CaptionImage(c.Lines, uint32(tv.Color)); err == nil {
		capMat.Texture = img
	}
	s.Caption = scenegraph.NewMesh("caption", scenegraph.Plane(c.Size, c.Size), capMat)
	s.Caption.Position = c.Position.mgl()
	s.Caption.Rotation = scenegraph.EulerXYZ(-math32.Pi/2, 0, math32.Pi/4)
	s.add(s.Caption)

	d := l.Disc
	discMat := scenegraph.Solid(0x000000)
	discMat.DoubleSided = true
	s.ShelfDisc = scenegraph.NewMesh("shelf-disc", scenegraph.Ring(d.Inner, d.Outer, discSegments), discMat)
	s.ShelfDisc.Position = d.Position.mgl()
	s.ShelfDisc.Rotation = scenegraph.EulerXYZ(math32.Pi/2, 0, 0)
	s.add(s.ShelfDisc)

	for _, p := range shelfPanels {
		m := scenegraph.NewMesh("shelf-"+p.name, scenegraph.Box(p.size[0], p.size[1], p.size[2]), scenegraph.Solid(uint32(l.PanelColor)))
		m.Position = p.pos
		s.add(m)
	}
	return s
}

func (s *Shelf) add(n *scenegraph.Node) {
	s.Root.Add(n)
	s.Meshes = append(s.Meshes, n)
}

// NewVinyl returns a vinyl sleeve of the given size with a black edge outline child.
func NewVinyl(color uint32, size mgl32.Vec3) *scenegraph.Node {
	v := scenegraph.NewMesh("vinyl", scenegraph.Box(size[0], size[1], size[2]), scenegraph.Solid(color))
	v.Add(scenegraph.NewEdges("vinyl/edges", v.Geometry.Clone(), scenegraph.Solid(edgeColor)))
	return v
}
