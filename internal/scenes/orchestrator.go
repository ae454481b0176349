package scenes

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"vinyl-portfolio/internal/anim"
	"vinyl-portfolio/internal/interact"
	"vinyl-portfolio/internal/scenegraph"
)

const (
	discApproach = 1600 * time.Millisecond
	shelfLift    = 1600 * time.Millisecond
	shelfOrbit   = 1400 * time.Millisecond
)

var (
	aboveDisc      = mgl32.Vec3{0, 1, 0}
	liftOffset     = mgl32.Vec3{0, 6, 0}
	besideDisc     = mgl32.Vec3{2.5, 4, 2.5}
	belowDiscLook  = mgl32.Vec3{0, -0.5, 0}
	errNotFromRoom = errors.New("transition needs the room scene")
)

// Orchestrator runs page transitions. A single guard covers every transition: it is set when
// one starts and cleared by a fixed settle timer after the destination page is built, and any
// trigger arriving in between is dropped.
type Orchestrator struct {
	Logger zerolog.Logger
	// OnPageChange, if set, is called after a destination page has been built.
	OnPageChange func(Page)

	ctx      SceneContext
	hover    *interact.HoverMachine
	router   *interact.Router
	settle   time.Duration
	builders map[Page]Builder

	room          *Room
	current       Page
	transitioning bool
	teardowns     int
}

// NewOrchestrator wires page transitions to router clicks. settle <= 0 means
// DefaultSettleDelay.
func NewOrchestrator(log zerolog.Logger, ctx SceneContext, hover *interact.HoverMachine, router *interact.Router, settle time.Duration) *Orchestrator {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	o := &Orchestrator{
		Logger: log,
		ctx:    ctx,
		hover:  hover,
		router: router,
		settle: settle,
		builders: map[Page]Builder{
			PageAboutMe:    BuildAboutMe,
			PageProjects:   BuildProjects,
			PageExperience: BuildExperience,
		},
	}
	router.On(interact.Table, o.ToAboutMe)
	router.On(interact.ShelfVinyls, o.ToProjects)
	router.On(interact.TopVinylGroup, o.ToExperience)
	return o
}

// SetBuilder replaces the builder used for page p.
func (o *Orchestrator) SetBuilder(p Page, b Builder) {
	o.builders[p] = b
}

// Start builds the room and makes its furniture interactive.
func (o *Orchestrator) Start() error {
	room, err := BuildRoom(o.ctx)
	if err != nil {
		return err
	}
	o.room = room
	o.current = PageInitial
	reg := room.Registry()
	o.hover.Track(reg)
	o.router.SetTargets(reg)
	return nil
}

// Transitioning reports whether a transition holds the guard.
func (o *Orchestrator) Transitioning() bool { return o.transitioning }

// Current returns the page currently shown.
func (o *Orchestrator) Current() Page { return o.current }

// Room returns the initial scene's furniture, or nil once it has been torn down.
func (o *Orchestrator) Room() *Room { return o.room }

// Teardowns counts completed teardowns.
func (o *Orchestrator) Teardowns() int { return o.teardowns }

// acquire takes the guard, or reports false if a transition is already running.
func (o *Orchestrator) acquire(to Page) bool {
	if o.transitioning {
		o.Logger.Debug().Stringer("to", to).Msg("transition dropped, another is in flight")
		return false
	}
	o.transitioning = true
	o.Logger.Info().Stringer("from", o.current).Stringer("to", to).Msg("transition started")
	return true
}

// settleThen clears the guard once the settle delay has passed.
func (o *Orchestrator) settleThen() *anim.Promise {
	return o.ctx.Timeline().After(o.settle).Then(func() {
		o.transitioning = false
		o.Logger.Debug().Stringer("page", o.current).Msg("transition settled")
	})
}

// Teardown releases every node of the current page except lights, forgets hover state and
// empties the interactable set.
func (o *Orchestrator) Teardown() {
	n := o.ctx.Scene.Clear()
	o.hover.Reset()
	o.router.SetTargets(nil)
	o.room = nil
	o.teardowns++
	o.Logger.Debug().Int("released", n).Msg("scene torn down")
}

// build runs the builder for p and records it as current.
func (o *Orchestrator) build(p Page, anchor *Anchor) {
	if b := o.builders[p]; b != nil {
		b(o.ctx, anchor)
	}
	o.current = p
	if o.OnPageChange != nil {
		o.OnPageChange(p)
	}
}

// generic tears down, builds p (which frames itself) and settles.
func (o *Orchestrator) generic(p Page) {
	o.Teardown()
	o.build(p, nil)
	o.settleThen()
}

// ToProjects switches to the projects page.
func (o *Orchestrator) ToProjects() {
	if !o.acquire(PageProjects) {
		return
	}
	o.generic(PageProjects)
}

// ToAboutMe dives into the table's disc and cuts to the about-me page. Without a disc it
// switches directly.
func (o *Orchestrator) ToAboutMe() {
	if !o.acquire(PageAboutMe) {
		return
	}
	disc, err := o.roomNode(func(r *Room) *scenegraph.Node {
		if r.Table == nil {
			return nil
		}
		return r.Table.Disc
	})
	if err != nil {
		o.Logger.Warn().Err(err).Msg("about-me: no table disc, switching directly")
		o.generic(PageAboutMe)
		return
	}
	at := disc.WorldPosition()
	o.ctx.Animator.Animate(o.ctx.Camera, at.Add(aboveDisc), at, discApproach).Then(func() {
		o.generic(PageAboutMe)
	})
}

// ToExperience lifts the camera, swings it beside the shelf disc, then cuts to the experience
// page with the disc's transform as anchor so the new shelf lines up with the old one. If the
// shelf parts are missing it switches the generic way.
func (o *Orchestrator) ToExperience() {
	if !o.acquire(PageExperience) {
		return
	}
	disc, err := o.shelfDisc()
	if err != nil {
		o.Logger.Warn().Err(err).Msg("experience: falling back to a direct switch")
		o.generic(PageExperience)
		return
	}
	cam := o.ctx.Camera
	at := disc.WorldPosition()
	anim.Sequence(
		func() *anim.Promise {
			return o.ctx.Animator.Animate(cam, cam.Position.Add(liftOffset), at, shelfLift)
		},
		func() *anim.Promise {
			return o.ctx.Animator.Animate(cam, at.Add(besideDisc), at.Add(belowDiscLook), shelfOrbit)
		},
	).Then(func() {
		anchor, err := CaptureAnchor(disc)
		if err != nil {
			o.Logger.Warn().Err(err).Msg("experience: anchor lost, falling back to a direct switch")
			o.generic(PageExperience)
			return
		}
		o.Teardown()
		o.build(PageExperience, anchor)
		o.settleThen()
	})
}

func (o *Orchestrator) shelfDisc() (*scenegraph.Node, error) {
	if o.room == nil || o.room.Shelf == nil {
		return nil, errNotFromRoom
	}
	if o.room.Shelf.TopVinyl == nil || o.room.Shelf.ShelfDisc == nil {
		return nil, ErrMissingAnchor
	}
	return o.room.Shelf.ShelfDisc, nil
}

func (o *Orchestrator) roomNode(pick func(*Room) *scenegraph.Node) (*scenegraph.Node, error) {
	if o.room == nil {
		return nil, errNotFromRoom
	}
	n := pick(o.room)
	if n == nil || n.Disposed() {
		return nil, ErrMissingAnchor
	}
	return n, nil
}
