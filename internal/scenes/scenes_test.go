package scenes

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinyl-portfolio/internal/anim"
	"vinyl-portfolio/internal/camera"
	"vinyl-portfolio/internal/interact"
	"vinyl-portfolio/internal/scenegraph"
)

type harness struct {
	clock  *anim.ManualClock
	tl     *anim.Timeline
	cam    *camera.Camera
	scene  *scenegraph.Scene
	hover  *interact.HoverMachine
	router *interact.Router
	orch   *Orchestrator
	pages  []Page
}

func newHarness(t *testing.T, portrait string) *harness {
	t.Helper()
	h := &harness{clock: anim.NewManualClock(time.Unix(1700000000, 0))}
	h.tl = anim.NewTimeline(h.clock)
	h.cam = camera.New(InitialCameraPosition, OrbitTarget)
	h.scene = scenegraph.NewScene()
	AddLights(h.scene)
	h.hover = interact.NewHoverMachine(zerolog.Nop(), h.scene.Release)
	h.router = interact.NewRouter(zerolog.Nop(), h.cam, h.hover, nil)
	ctx := SceneContext{
		Scene:        h.scene,
		Camera:       h.cam,
		Animator:     anim.NewAnimator(h.tl),
		Logger:       zerolog.Nop(),
		PortraitPath: portrait,
	}
	h.orch = NewOrchestrator(zerolog.Nop(), ctx, h.hover, h.router, 0)
	h.orch.OnPageChange = func(p Page) { h.pages = append(h.pages, p) }
	require.NoError(t, h.orch.Start())
	return h
}

func (h *harness) step(d time.Duration) {
	h.clock.Advance(d)
	h.tl.Update()
}

func TestStart_BuildsRoom(t *testing.T) {
	h := newHarness(t, "")

	room := h.orch.Room()
	require.NotNil(t, room)
	assert.Equal(t, PageInitial, h.orch.Current())
	assert.Equal(t, scenegraph.Hex(0xFFF0F0), h.scene.Background)
	assert.Len(t, h.scene.Lights(), 2)
	assert.Same(t, room.Table.Disc, h.router.Targets().TableDisc)
	assert.Len(t, h.router.Targets().Vinyls, 24)
}

func TestAboutMe_EndToEnd(t *testing.T) {
	h := newHarness(t, "")
	oldDisc := h.orch.Room().Table.Disc
	disc := oldDisc.WorldPosition()

	h.orch.ToAboutMe()
	require.True(t, h.orch.Transitioning())
	assert.Equal(t, InitialCameraPosition, h.cam.Position, "t=0 keeps the start position")

	h.step(800 * time.Millisecond)
	assert.Equal(t, 0, h.orch.Teardowns())

	h.step(800 * time.Millisecond)
	assert.Equal(t, disc.Add(mgl32.Vec3{0, 1, 0}), h.cam.Position)
	assert.Equal(t, disc, h.cam.Target)
	assert.Equal(t, 1, h.orch.Teardowns())
	assert.True(t, oldDisc.Disposed())
	assert.Equal(t, PageAboutMe, h.orch.Current())
	assert.Equal(t, scenegraph.Hex(0x592C0C), h.scene.Background)
	assert.Len(t, h.scene.Lights(), 2)
	assert.Nil(t, h.router.Targets())
	assert.Equal(t, interact.None, h.hover.Current())

	portrait := h.scene.Find("portrait")
	require.NotNil(t, portrait)
	assert.Equal(t, mgl32.Vec3{-6, 0.1, 0}, portrait.Position)
	assert.Nil(t, portrait.Material.Texture)

	h.step(time.Second)
	assert.Equal(t, mgl32.Vec3{-0.75, 0.1, 0}, portrait.Position)
	assert.Equal(t, disc.Add(mgl32.Vec3{0, 1, 0}), h.cam.Position, "look-down keeps position")
	assert.Equal(t, mgl32.Vec3{disc.X(), 0, disc.Z()}, h.cam.Target)
	assert.True(t, h.orch.Transitioning(), "settle delay not over yet")

	h.step(time.Second)
	assert.False(t, h.orch.Transitioning())
	assert.Equal(t, []Page{PageAboutMe}, h.pages)
}

func TestAboutMe_ClickThroughRouter(t *testing.T) {
	h := newHarness(t, "")
	disc := h.orch.Room().Table.Disc.WorldPosition()
	h.cam.Position = mgl32.Vec3{disc.X() + 2, 10, disc.Z()}
	h.cam.LookAt(mgl32.Vec3{disc.X() + 2, 0, disc.Z()})

	hit := h.router.Click(400, 300, 800, 600)

	assert.Equal(t, interact.Table, hit.Category)
	assert.True(t, h.orch.Transitioning())
}

func TestAboutMe_PortraitTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, imgio.Save(path, img, imgio.PNGEncoder()))

	h := newHarness(t, path)
	h.orch.ToAboutMe()
	h.step(1600 * time.Millisecond)

	portrait := h.scene.Find("portrait")
	require.NotNil(t, portrait)
	assert.NotNil(t, portrait.Material.Texture)
	assert.Len(t, portrait.Children()[0].Children(), 4, "four frame edges")
}

func TestAboutMe_MissingPortraitIsNotFatal(t *testing.T) {
	h := newHarness(t, filepath.Join(t.TempDir(), "missing.jpeg"))
	h.orch.ToAboutMe()
	h.step(1600 * time.Millisecond)

	portrait := h.scene.Find("portrait")
	require.NotNil(t, portrait)
	assert.Nil(t, portrait.Material.Texture)
}

func TestGuard_DropsTriggersWhileTransitioning(t *testing.T) {
	h := newHarness(t, "")

	h.orch.ToAboutMe()
	h.orch.ToProjects()
	h.orch.ToExperience()
	h.orch.ToAboutMe()
	assert.Equal(t, 0, h.orch.Teardowns(), "nothing torn down yet")
	assert.Equal(t, PageInitial, h.orch.Current())

	h.step(1600 * time.Millisecond)
	h.orch.ToProjects()
	assert.Equal(t, 1, h.orch.Teardowns())
	assert.Equal(t, PageAboutMe, h.orch.Current())

	h.step(2 * time.Second)
	assert.False(t, h.orch.Transitioning())
	assert.Equal(t, []Page{PageAboutMe}, h.pages)
}

func TestProjects_Generic(t *testing.T) {
	h := newHarness(t, "")
	oldVinyl := h.orch.Room().Shelf.Vinyls[0]
	h.hover.SetHover(interact.ShelfVinyls)

	h.orch.ToProjects()

	assert.Equal(t, 1, h.orch.Teardowns(), "teardown is immediate")
	assert.True(t, oldVinyl.Disposed())
	assert.Equal(t, interact.None, h.hover.Current())
	assert.Equal(t, PageProjects, h.orch.Current())
	assert.Equal(t, scenegraph.Hex(0x2D1B4E), h.scene.Background)
	assert.NotNil(t, h.scene.Find("projects/ground"))
	assert.Nil(t, h.scene.Find("shelf"))

	h.step(2 * time.Second)
	assert.Equal(t, mgl32.Vec3{10, 8, 15}, h.cam.Position)
	assert.Equal(t, mgl32.Vec3{0, 2.5, 0}, h.cam.Target)
	assert.False(t, h.orch.Transitioning())
}

func TestSetBuilder_ReplacesPage(t *testing.T) {
	h := newHarness(t, "")
	at := h.orch.Room().Shelf.ShelfDisc.WorldPosition()
	var anchors []*Anchor
	h.orch.SetBuilder(PageExperience, func(ctx SceneContext, a *Anchor) {
		anchors = append(anchors, a)
		ctx.Scene.Add(scenegraph.NewGroup("stand-in"))
	})

	h.orch.ToExperience()
	h.step(1600 * time.Millisecond)
	h.step(1400 * time.Millisecond)

	require.Len(t, anchors, 1)
	require.NotNil(t, anchors[0])
	assert.Less(t, anchors[0].Position.Sub(at).Len(), float32(1e-4))
	assert.NotNil(t, h.scene.Find("stand-in"))
	assert.Nil(t, h.scene.Find("shelf-disc"), "default builder not run")
	assert.Equal(t, PageExperience, h.orch.Current())
	assert.Equal(t, []Page{PageExperience}, h.pages)
}

func TestExperience_AnchorHandoff(t *testing.T) {
	h := newHarness(t, "")
	room := h.orch.Room()
	// Clicking the top vinyl means it is hovered, so the disc is raised.
	h.hover.SetHover(interact.TopVinylGroup)
	at := room.Shelf.ShelfDisc.WorldPosition()
	rot := room.Shelf.ShelfDisc.WorldRotation()
	start := h.cam.Position

	h.orch.ToExperience()

	h.step(1600 * time.Millisecond)
	assert.Equal(t, start.Add(mgl32.Vec3{0, 6, 0}), h.cam.Position, "phase 1 lifts straight up")
	assert.Equal(t, at, h.cam.Target)
	assert.Equal(t, 0, h.orch.Teardowns())

	h.step(1400 * time.Millisecond)
	framed := at.Add(mgl32.Vec3{2.5, 4, 2.5})
	assert.Equal(t, framed, h.cam.Position)
	assert.Equal(t, 1, h.orch.Teardowns())
	assert.Equal(t, PageExperience, h.orch.Current())
	assert.Equal(t, scenegraph.Hex(0x1A2E3A), h.scene.Background)

	disc := h.scene.Find("shelf-disc")
	require.NotNil(t, disc)
	assert.NotSame(t, room.Shelf.ShelfDisc, disc)
	assert.Less(t, disc.WorldPosition().Sub(at).Len(), float32(1e-4), "got %v want %v", disc.WorldPosition(), at)
	assert.InDelta(t, 1, math32.Abs(disc.WorldRotation().Dot(rot)), 1e-4)

	h.step(time.Second)
	assert.Equal(t, framed, h.cam.Position, "camera untouched across the cut")
	assert.True(t, h.orch.Transitioning())
	h.step(time.Second)
	assert.False(t, h.orch.Transitioning())
}

func TestExperience_FallsBackWithoutTopVinyl(t *testing.T) {
	h := newHarness(t, "")
	h.orch.Room().Shelf.TopVinyl = nil

	h.orch.ToExperience()

	assert.Equal(t, 1, h.orch.Teardowns())
	assert.Equal(t, PageExperience, h.orch.Current())
	assert.Nil(t, h.scene.Find("shelf-disc"))

	h.step(2 * time.Second)
	assert.Equal(t, mgl32.Vec3{10, 8, 15}, h.cam.Position)
	assert.False(t, h.orch.Transitioning())
}

func TestCaptureAnchor(t *testing.T) {
	_, err := CaptureAnchor(nil)
	assert.ErrorIs(t, err, ErrMissingAnchor)

	s := scenegraph.NewScene()
	n := scenegraph.NewMesh("n", scenegraph.Box(1, 1, 1), scenegraph.Solid(0))
	s.Add(n)
	s.Release(n)
	_, err = CaptureAnchor(n)
	assert.ErrorIs(t, err, ErrMissingAnchor)
}

func TestAnchor_AlignRotated(t *testing.T) {
	root := scenegraph.NewGroup("root")
	root.Position = mgl32.Vec3{3, 0, 0}
	mid := scenegraph.NewGroup("mid")
	mid.Position = mgl32.Vec3{0, 2, 1}
	mid.Rotation = scenegraph.EulerXYZ(0, math32.Pi/3, 0)
	target := scenegraph.NewGroup("target")
	target.Position = mgl32.Vec3{1, 0, 0}
	target.Rotation = scenegraph.EulerXYZ(math32.Pi/2, 0, 0)
	root.Add(mid)
	mid.Add(target)
	scene := scenegraph.NewScene()
	scene.Add(root)

	a := &Anchor{Position: mgl32.Vec3{-7, 4, 2}, Rotation: scenegraph.EulerXYZ(0.3, 1.1, -0.4)}
	a.Align(root, target)

	assert.Less(t, target.WorldPosition().Sub(a.Position).Len(), float32(1e-4), "got %v", target.WorldPosition())
	assert.InDelta(t, 1, math32.Abs(target.WorldRotation().Dot(a.Rotation)), 1e-4)
}

func TestPage_String(t *testing.T) {
	assert.Equal(t, "about-me", PageAboutMe.String())
	assert.Equal(t, "experience", PageExperience.String())
	assert.Equal(t, "unknown", Page(42).String())
}
