package render

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinyl-portfolio/internal/scenegraph"
)

func TestCollect_SplitsAndOrders(t *testing.T) {
	s := scenegraph.NewScene()
	box := scenegraph.NewMesh("box", scenegraph.Box(1, 1, 1), scenegraph.Solid(0xff0000))
	near := scenegraph.NewMesh("near", scenegraph.Plane(1, 1), &scenegraph.Material{Opacity: 0.5, Transparent: true})
	near.Position = mgl32.Vec3{0, 0, 8}
	far := scenegraph.NewMesh("far", scenegraph.Plane(1, 1), &scenegraph.Material{Opacity: 0.5, Transparent: true})
	far.Position = mgl32.Vec3{0, 0, -8}
	outline := scenegraph.NewEdges("box/outline", scenegraph.Box(1, 1, 1), &scenegraph.Material{Opacity: 1})
	hidden := scenegraph.NewGroup("hidden")
	hidden.Visible = false
	hidden.Add(scenegraph.NewMesh("under-hidden", scenegraph.Box(1, 1, 1), scenegraph.Solid(0)))
	group := scenegraph.NewGroup("group")
	group.Add(box)
	s.Add(group)
	s.Add(near)
	s.Add(far)
	s.Add(outline)
	s.Add(hidden)

	opaque, transparent := collect(s.Root, mgl32.Vec3{0, 0, 10})

	require.Len(t, opaque, 1)
	assert.Same(t, box, opaque[0].node)
	require.Len(t, transparent, 3)
	assert.Same(t, far, transparent[0].node, "farthest first")
	assert.Same(t, near, transparent[2].node)
}

func TestCollect_SkipsReleased(t *testing.T) {
	s := scenegraph.NewScene()
	n := scenegraph.NewMesh("n", scenegraph.Box(1, 1, 1), scenegraph.Solid(0))
	s.Add(n)
	s.Release(n)

	opaque, transparent := collect(s.Root, mgl32.Vec3{})
	assert.Empty(t, opaque)
	assert.Empty(t, transparent)
}

func TestCollect_WorldMatrix(t *testing.T) {
	s := scenegraph.NewScene()
	parent := scenegraph.NewGroup("p")
	parent.Position = mgl32.Vec3{1, 2, 3}
	child := scenegraph.NewMesh("c", scenegraph.Box(1, 1, 1), scenegraph.Solid(0))
	child.Position = mgl32.Vec3{0, 1, 0}
	parent.Add(child)
	s.Add(parent)

	opaque, _ := collect(s.Root, mgl32.Vec3{})
	require.Len(t, opaque, 1)
	assert.Less(t, transform(opaque[0].world, mgl32.Vec3{}).Sub(child.WorldPosition()).Len(), float32(1e-5))
}

func TestEdges_Box(t *testing.T) {
	segs := edges(scenegraph.Box(2, 4, 6))
	require.Len(t, segs, 12)
	half := mgl32.Vec3{1, 2, 3}
	for _, s := range segs {
		assert.Contains(t, []float32{2, 4, 6}, s.B.Sub(s.A).Len())
		for i := 0; i < 3; i++ {
			assert.Equal(t, half[i], math32.Abs(s.A[i]), "corners sit on the half extents")
		}
	}
}

func TestEdges_PlaneAndRing(t *testing.T) {
	assert.Len(t, edges(scenegraph.Plane(1, 2)), 4)

	ring := scenegraph.Ring(1, 2, 8)
	segs := edges(ring)
	require.Len(t, segs, 16)
	assert.InDelta(t, 1, segs[0].A.Len(), 1e-5)
	assert.InDelta(t, 2, segs[1].A.Len(), 1e-5)
}

func TestRingTriangles_FaceForward(t *testing.T) {
	ring := scenegraph.Ring(0.5, 1, 16)
	tris := ringTriangles(ring)
	require.Len(t, tris, 32)
	for _, tr := range tris {
		n := tr[1].Sub(tr[0]).Cross(tr[2].Sub(tr[0]))
		assert.Greater(t, n.Z(), float32(0), "counter-clockwise from +Z")
	}
}

func TestPlaneBasis_FacesPlusZ(t *testing.T) {
	g := scenegraph.Plane(2, 3)
	m := planeBasis(g)
	// raylib's unit plane lies in XZ with its normal on +Y.
	n := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3().Normalize()
	assert.Less(t, n.Sub(mgl32.Vec3{0, 0, 1}).Len(), float32(1e-5), "got %v", n)
	corner := transform(m, mgl32.Vec3{0.5, 0, 0.5})
	assert.InDelta(t, 1, math32.Abs(corner.X()), 1e-5)
	assert.InDelta(t, 1.5, math32.Abs(corner.Y()), 1e-5)
	assert.InDelta(t, 0, corner.Z(), 1e-5)
}

func TestToMatrix_KeepsTranslation(t *testing.T) {
	m := toMatrix(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), m.M12)
	assert.Equal(t, float32(2), m.M13)
	assert.Equal(t, float32(3), m.M14)
	assert.Equal(t, float32(1), m.M15)
}

func TestLightsOf(t *testing.T) {
	s := scenegraph.NewScene()
	assert.Equal(t, fallbackLighting, lightsOf(s))

	s.Add(scenegraph.NewLight("ambient", scenegraph.Light{
		Type: scenegraph.LightAmbient, Color: scenegraph.Hex(0xffffff), Intensity: 0.5,
	}))
	sun := scenegraph.NewLight("sun", scenegraph.Light{
		Type: scenegraph.LightDirectional, Color: scenegraph.Hex(0xff0000), Intensity: 1,
	})
	sun.Position = mgl32.Vec3{0, 10, 0}
	s.Add(sun)

	l := lightsOf(s)
	assert.Less(t, l.ambient.Sub(mgl32.Vec3{0.5, 0.5, 0.5}).Len(), float32(1e-5))
	assert.Less(t, l.dir.Sub(mgl32.Vec3{0, 1, 0}).Len(), float32(1e-5))
	assert.Less(t, l.color.Sub(mgl32.Vec3{1, 0, 0}).Len(), float32(1e-5))
}

func TestShade(t *testing.T) {
	l := lighting{ambient: mgl32.Vec3{0.5, 0.5, 0.5}, dir: mgl32.Vec3{0, 1, 0}, color: mgl32.Vec3{1, 1, 1}, intensity: 1}
	c := color.RGBA{R: 100, G: 200, B: 50, A: 128}

	lit := l.shade(c, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, color.RGBA{R: 150, G: 255, B: 75, A: 128}, lit)

	side := l.shade(c, mgl32.Vec3{1, 0, 0})
	assert.Equal(t, color.RGBA{R: 50, G: 100, B: 25, A: 128}, side)
}

func TestRenderer_ReleaseDropsTexture(t *testing.T) {
	s := scenegraph.NewScene()
	r := New(zerolog.Nop(), s)
	portrait := scenegraph.NewMesh("portrait", scenegraph.Plane(1, 1), scenegraph.Solid(0))
	s.Add(portrait)
	// Never uploaded, so release has nothing to unload on the GPU.
	r.textures[portrait] = texture{}
	require.Equal(t, 1, r.Textures())

	s.Clear()
	assert.Zero(t, r.Textures())
}
