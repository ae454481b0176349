// Package app composes one portfolio frame: pointer input goes through the router, the timeline
// advances, overlays follow their targets, the table disc spins and the orbit controls settle.
package app

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"

	"vinyl-portfolio/internal/anim"
	"vinyl-portfolio/internal/camera"
	"vinyl-portfolio/internal/furniture"
	"vinyl-portfolio/internal/interact"
	"vinyl-portfolio/internal/scenegraph"
	"vinyl-portfolio/internal/scenes"
)

const (
	// discSpin is the table disc's rotation per frame, in radians.
	discSpin = 0.01
	// rotateSpeed converts dragged pixels to orbit radians.
	rotateSpeed = 0.005
	// zoomStep is the distance factor per wheel notch.
	zoomStep = 0.95
)

// Input is the pointer state sampled once per frame.
type Input struct {
	Width, Height int
	Resized       bool

	MouseX, MouseY float32
	Moved          bool
	Clicked        bool

	// Dragging is set while the orbit button is held; DragDX/DragDY are this frame's motion.
	Dragging       bool
	DragDX, DragDY float32
	Wheel          float32
}

// Options configures New.
type Options struct {
	Logger zerolog.Logger
	// Clock drives every animation. Nil means the system clock.
	Clock        anim.Clock
	Cursor       interact.Cursor
	PortraitPath string
	SettleDelay  time.Duration
	Width        int
	Height       int
}

// Portfolio owns the scene and every component acting on it.
type Portfolio struct {
	Logger zerolog.Logger

	Scene        *scenegraph.Scene
	Camera       *camera.Camera
	Orbit        *camera.Orbit
	Timeline     *anim.Timeline
	Hover        *interact.HoverMachine
	Router       *interact.Router
	Orchestrator *scenes.Orchestrator

	width, height int
	hit           interact.Hit
	frames        uint64
}

// New builds the initial room and wires the pointer router to the page transitions.
func New(opts Options) (*Portfolio, error) {
	clock := opts.Clock
	if clock == nil {
		clock = anim.SystemClock{}
	}
	log := opts.Logger
	child := func(name string) zerolog.Logger {
		return log.With().Str("component", name).Logger()
	}

	p := &Portfolio{
		Logger:   log,
		Scene:    scenegraph.NewScene(),
		Camera:   camera.New(scenes.InitialCameraPosition, scenes.OrbitTarget),
		Timeline: anim.NewTimeline(clock),
	}
	p.Orbit = camera.NewOrbit(p.Camera)
	scenes.AddLights(p.Scene)

	p.Hover = interact.NewHoverMachine(child("hover"), p.Scene.Release)
	p.Router = interact.NewRouter(child("router"), p.Camera, p.Hover, opts.Cursor)
	ctx := scenes.SceneContext{
		Scene:        p.Scene,
		Camera:       p.Camera,
		Animator:     anim.NewAnimator(p.Timeline),
		Logger:       child("scenes"),
		PortraitPath: opts.PortraitPath,
	}
	p.Orchestrator = scenes.NewOrchestrator(child("transition"), ctx, p.Hover, p.Router, opts.SettleDelay)
	p.Orchestrator.OnPageChange = func(pg scenes.Page) {
		p.Orbit.Halt()
		log.Info().Stringer("page", pg).Msg("page shown")
	}
	if err := p.Orchestrator.Start(); err != nil {
		return nil, err
	}
	p.resize(opts.Width, opts.Height)
	return p, nil
}

func (p *Portfolio) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	p.width, p.height = w, h
	p.Camera.SetViewport(w, h)
}

// Frame advances the portfolio by one display frame.
func (p *Portfolio) Frame(in Input) {
	p.frames++
	if in.Resized || in.Width != p.width || in.Height != p.height {
		p.resize(in.Width, in.Height)
	}

	if p.width > 0 && p.height > 0 {
		if in.Moved {
			p.hit = p.Router.Move(in.MouseX, in.MouseY, p.width, p.height)
		}
		if in.Clicked {
			p.hit = p.Router.Click(in.MouseX, in.MouseY, p.width, p.height)
		}
	}

	if room := p.Orchestrator.Room(); room != nil && room.Table != nil && room.Table.Disc != nil {
		furniture.Spin(room.Table.Disc, discSpin)
	}

	p.Timeline.Update()
	p.Hover.SyncFrame()

	if p.Orchestrator.Transitioning() {
		p.Orbit.Halt()
		return
	}
	if in.Dragging {
		p.Orbit.Rotate(-in.DragDX*rotateSpeed, -in.DragDY*rotateSpeed)
	}
	if in.Wheel != 0 {
		p.Orbit.Zoom(math32.Pow(zoomStep, in.Wheel))
	}
	p.Orbit.Update()
}

// Status is a snapshot of the interaction state for the debug overlay.
type Status struct {
	Page          scenes.Page
	Hover         interact.Category
	Hit           interact.Hit
	Transitioning bool
	Animations    int
	Frames        uint64
}

// Status returns the current interaction state.
func (p *Portfolio) Status() Status {
	return Status{
		Page:          p.Orchestrator.Current(),
		Hover:         p.Hover.Current(),
		Hit:           p.hit,
		Transitioning: p.Orchestrator.Transitioning(),
		Animations:    p.Timeline.Active(),
		Frames:        p.frames,
	}
}
