package scenes

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/anim"
	"vinyl-portfolio/internal/assets"
	"vinyl-portfolio/internal/furniture"
	"vinyl-portfolio/internal/scenegraph"
)

const (
	aboutMeColor       = 0x592C0C
	aboutMeLookDown    = 300 * time.Millisecond
	portraitSlide      = time.Second
	portraitBorder     = 0.1
	portraitBorderSkin = 0.02

	projectsBackground   = 0x2D1B4E
	projectsGround       = 0x222222
	experienceBackground = 0x1A2E3A
	experienceGround     = 0x2A2A2A
)

var (
	portraitStart = mgl32.Vec3{-6, 0.1, 0}
	portraitEnd   = mgl32.Vec3{-0.75, 0.1, 0}
)

// BuildAboutMe continues the look-down at the table top: the whole page is the tabletop brown,
// and a framed portrait slides in from the left.
func BuildAboutMe(ctx SceneContext, _ *Anchor) {
	s := ctx.Scene
	s.Background = scenegraph.Hex(aboutMeColor)
	s.Add(furniture.NewFloor("about-me/floor", floorSize, aboutMeColor))

	cam := ctx.Camera
	below := mgl32.Vec3{cam.Position.X(), 0, cam.Position.Z()}
	ctx.Animator.Animate(cam, cam.Position, below, aboutMeLookDown)

	portrait := newPortrait(ctx)
	portrait.Position = portraitStart
	s.Add(portrait)
	ctx.Timeline().Slide(portrait, portraitStart, portraitEnd, portraitSlide, anim.EaseOutCubic)
}

// newPortrait returns a unit plane facing up with a white frame. A portrait that fails to load
// is logged and the plane stays untextured.
func newPortrait(ctx SceneContext) *scenegraph.Node {
	mat := &scenegraph.Material{
		Color:       scenegraph.Hex(0xffffff),
		Opacity:     1,
		DoubleSided: true,
		Unlit:       true,
	}
	if ctx.PortraitPath != "" {
		img, err := assets.LoadImage(ctx.PortraitPath)
		if err != nil {
			ctx.Logger.Error().Err(err).Msg("portrait texture unavailable")
		} else {
			mat.Texture = img
			ctx.Logger.Debug().Str("path", ctx.PortraitPath).Msg("portrait loaded")
		}
	}
	p := scenegraph.NewMesh("portrait", scenegraph.Plane(1, 1), mat)
	p.Rotation = scenegraph.EulerXYZ(-math32.Pi/2, 0, 0)

	frame := scenegraph.NewGroup("portrait/frame")
	edge := func(name string, w, h, x, y float32) {
		m := scenegraph.NewMesh(name, scenegraph.Box(w, h, portraitBorderSkin), &scenegraph.Material{
			Color:   scenegraph.Hex(0xffffff),
			Opacity: 1,
			Unlit:   true,
		})
		m.Position = mgl32.Vec3{x, y, portraitBorderSkin / 2}
		frame.Add(m)
	}
	var (
		long float32 = 1 + portraitBorder*2
		off  float32 = 0.5 + portraitBorder/2
	)
	edge("portrait/frame-top", long, portraitBorder, 0, off)
	edge("portrait/frame-bottom", long, portraitBorder, 0, -off)
	edge("portrait/frame-left", portraitBorder, long, -off, 0)
	edge("portrait/frame-right", portraitBorder, long, off, 0)
	p.Add(frame)
	return p
}

// BuildProjects shows the projects page and flies the camera to the default viewpoint.
func BuildProjects(ctx SceneContext, _ *Anchor) {
	ctx.Scene.Background = scenegraph.Hex(projectsBackground)
	ctx.Scene.Add(furniture.NewFloor("projects/ground", groundSize, projectsGround))
	ctx.Animator.Animate(ctx.Camera, defaultViewPosition, defaultViewTarget, defaultViewDuration)
}

// BuildExperience shows the experience page. With an anchor it builds a fresh shelf whose disc
// sits exactly where the anchor says and leaves the camera alone; without one it frames the
// page from the default viewpoint.
func BuildExperience(ctx SceneContext, anchor *Anchor) {
	ctx.Scene.Background = scenegraph.Hex(experienceBackground)
	ctx.Scene.Add(furniture.NewFloor("experience/ground", groundSize, experienceGround))

	if anchor == nil {
		ctx.Animator.Animate(ctx.Camera, defaultViewPosition, defaultViewTarget, defaultViewDuration)
		return
	}
	layout, err := furniture.DefaultLayout()
	if err != nil {
		ctx.Logger.Error().Err(err).Msg("experience shelf layout")
		return
	}
	shelf := furniture.NewShelf(layout)
	ctx.Scene.Add(shelf.Root)
	anchor.Align(shelf.Root, shelf.ShelfDisc)
	ctx.Logger.Debug().
		Floats32("anchor", anchor.Position[:]).
		Floats32("shelf", shelf.Root.Position[:]).
		Msg("shelf aligned to anchor")
}
