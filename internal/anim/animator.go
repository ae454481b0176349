package anim

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/camera"
)

// Animator tweens a camera's position and look target together with ease-in-out timing.
type Animator struct {
	Timeline *Timeline
}

// NewAnimator returns an animator scheduling on tl.
func NewAnimator(tl *Timeline) *Animator {
	return &Animator{Timeline: tl}
}

// Animate moves cam from where it is now to position while its look target moves from the
// last recorded one to look. The promise resolves in the frame the camera lands exactly on
// position and look.
//
// There is no cancellation: a second Animate on the same camera while one runs makes both
// write every frame. Callers keep animations from overlapping.
func (a *Animator) Animate(cam *camera.Camera, position, look mgl32.Vec3, d time.Duration) *Promise {
	startPos := cam.Position
	startLook := cam.LookTarget()
	return a.Timeline.Tween(d, EaseInOutQuad, func(e float32) {
		cam.Position = lerp(startPos, position, e)
		cam.LookAt(lerp(startLook, look, e))
	}, func() {
		cam.Position = position
		cam.LookAt(look)
	})
}
