// Package scenes builds the portfolio pages and runs the transitions between them.
package scenes

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"vinyl-portfolio/internal/anim"
	"vinyl-portfolio/internal/camera"
	"vinyl-portfolio/internal/scenegraph"
)

// Page names a scene the portfolio can show.
type Page int

const (
	PageInitial Page = iota
	PageAboutMe
	PageProjects
	PageExperience
)

func (p Page) String() string {
	switch p {
	case PageInitial:
		return "initial"
	case PageAboutMe:
		return "about-me"
	case PageProjects:
		return "projects"
	case PageExperience:
		return "experience"
	}
	return "unknown"
}

// SceneContext is what a scene builder gets to work with.
type SceneContext struct {
	Scene    *scenegraph.Scene
	Camera   *camera.Camera
	Animator *anim.Animator
	Logger   zerolog.Logger
	// PortraitPath is the image shown on the About-Me page.
	PortraitPath string
}

// Timeline returns the timeline the animator schedules on.
func (c SceneContext) Timeline() *anim.Timeline {
	return c.Animator.Timeline
}

// Builder populates ctx.Scene for one page. When anchor is non-nil the caller has already
// framed the camera and the builder must not move it.
type Builder func(ctx SceneContext, anchor *Anchor)

// ErrMissingAnchor is returned when the node an anchor is taken from is gone.
var ErrMissingAnchor = errors.New("anchor node missing")

// Anchor is the world transform of a node captured just before a teardown, handed to the next
// scene once so it can line its own copy of the node up with it.
type Anchor struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// CaptureAnchor records n's world position and rotation.
func CaptureAnchor(n *scenegraph.Node) (*Anchor, error) {
	if n == nil || n.Disposed() {
		return nil, ErrMissingAnchor
	}
	return &Anchor{Position: n.WorldPosition(), Rotation: n.WorldRotation()}, nil
}

// Align moves and rotates root, a top-level node, so that its descendant target ends up with
// the anchor's world transform.
func (a *Anchor) Align(root, target *scenegraph.Node) {
	// World rotation of target relative to root.
	rel := target.WorldRotation()
	rootRot := root.WorldRotation()
	rel = rootRot.Inverse().Mul(rel)

	root.Rotation = a.Rotation.Mul(rel.Inverse()).Normalize()
	root.Position = mgl32.Vec3{}
	offset := target.WorldPosition()
	root.Position = a.Position.Sub(offset)
}

// Fixed framing and timing shared by the pages.
var (
	defaultViewPosition = mgl32.Vec3{10, 8, 15}
	defaultViewTarget   = mgl32.Vec3{0, 2.5, 0}
)

const (
	defaultViewDuration = 2 * time.Second
	DefaultSettleDelay  = 2 * time.Second
)
