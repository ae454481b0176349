package anim

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/scenegraph"
)

type task struct {
	start    time.Time
	duration time.Duration
	ease     Ease
	step     func(e float32)
	finish   func()
	promise  *Promise
}

// Timeline advances tweens and timers. It is driven by Update once per frame and never
// spawns goroutines; all callbacks run on the caller's goroutine.
type Timeline struct {
	clock Clock
	tasks []*task
}

// NewTimeline returns a timeline sampling clock. A nil clock means SystemClock.
func NewTimeline(clock Clock) *Timeline {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timeline{clock: clock}
}

// Active returns the number of running tweens and timers.
func (tl *Timeline) Active() int { return len(tl.tasks) }

// Update samples the clock once and steps every running task. Tasks that reach the end run
// their final step, then resolve; tasks started by those continuations are first stepped on
// the next Update.
func (tl *Timeline) Update() {
	if len(tl.tasks) == 0 {
		return
	}
	now := tl.clock.Now()
	running := tl.tasks
	tl.tasks = nil
	kept := running[:0]
	for _, tk := range running {
		if tl.advance(tk, now) {
			kept = append(kept, tk)
		}
	}
	tl.tasks = append(kept, tl.tasks...)
}

// advance steps tk at now and reports whether it is still running.
func (tl *Timeline) advance(tk *task, now time.Time) bool {
	t := float32(1)
	if tk.duration > 0 {
		t = clamp01(float32(now.Sub(tk.start)) / float32(tk.duration))
	}
	if t < 1 {
		if tk.step != nil {
			tk.step(tk.ease(t))
		}
		return true
	}
	if tk.finish != nil {
		tk.finish()
	} else if tk.step != nil {
		tk.step(1)
	}
	tk.promise.Resolve()
	return false
}

// After returns a promise resolved by the first Update at least d after the call.
func (tl *Timeline) After(d time.Duration) *Promise {
	p := NewPromise()
	tl.tasks = append(tl.tasks, &task{start: tl.clock.Now(), duration: d, ease: Linear, promise: p})
	return p
}

// Tween calls step with eased progress every frame for d, starting with step(0) right away.
// finish, if set, replaces the last step(1) so the caller can snap to exact values.
func (tl *Timeline) Tween(d time.Duration, ease Ease, step func(e float32), finish func()) *Promise {
	if ease == nil {
		ease = Linear
	}
	p := NewPromise()
	if step != nil {
		step(ease(0))
	}
	tl.tasks = append(tl.tasks, &task{
		start:    tl.clock.Now(),
		duration: d,
		ease:     ease,
		step:     step,
		finish:   finish,
		promise:  p,
	})
	return p
}

// Slide moves n's local position from from to to over d, ending exactly on to.
func (tl *Timeline) Slide(n *scenegraph.Node, from, to mgl32.Vec3, d time.Duration, ease Ease) *Promise {
	return tl.Tween(d, ease, func(e float32) {
		n.Position = lerp(from, to, e)
	}, func() {
		n.Position = to
	})
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
