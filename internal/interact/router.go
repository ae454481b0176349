package interact

import (
	"github.com/rs/zerolog"

	"vinyl-portfolio/internal/camera"
)

// Cursor is the pointer-shape side channel.
type Cursor interface {
	SetPointer(pointer bool)
}

// Router turns pointer events into hover changes and click triggers. Move and Click share the
// same picking path so what highlights is exactly what clicks.
type Router struct {
	Logger zerolog.Logger

	cam      *camera.Camera
	hover    *HoverMachine
	cursor   Cursor
	reg      *Registry
	triggers map[Category]func()
}

// NewRouter returns a router picking through cam. cursor may be nil.
func NewRouter(log zerolog.Logger, cam *camera.Camera, hover *HoverMachine, cursor Cursor) *Router {
	return &Router{
		Logger:   log,
		cam:      cam,
		hover:    hover,
		cursor:   cursor,
		triggers: make(map[Category]func()),
	}
}

// On registers the action a click on category c dispatches. None cannot be bound.
func (r *Router) On(c Category, fn func()) {
	if c == None {
		return
	}
	r.triggers[c] = fn
}

// SetTargets swaps the interactable set. nil or an empty registry makes every event miss and
// puts the cursor back to default, since nothing can be under the pointer any more.
func (r *Router) SetTargets(reg *Registry) {
	r.reg = reg
	if reg.Empty() && r.cursor != nil {
		r.cursor.SetPointer(false)
	}
}

// Targets returns the current interactable set.
func (r *Router) Targets() *Registry { return r.reg }

// Move updates hover state and cursor for a pointer at pixel (x, y) in a width x height
// viewport.
func (r *Router) Move(x, y float32, width, height int) Hit {
	hit, ok := r.pick(x, y, width, height)
	if !ok {
		hit = Hit{}
	}
	if r.hover != nil && r.hover.SetHover(hit.Category) && hit.Node != nil {
		r.Logger.Debug().Str("node", hit.Node.Name).Stringer("category", hit.Category).Msg("hover target")
	}
	if r.cursor != nil {
		r.cursor.SetPointer(hit.Category != None)
	}
	return hit
}

// Click dispatches the trigger bound to whatever is under the pointer, if anything.
func (r *Router) Click(x, y float32, width, height int) Hit {
	hit, ok := r.pick(x, y, width, height)
	if !ok || hit.Category == None {
		return Hit{}
	}
	r.Logger.Debug().Stringer("category", hit.Category).Msg("click")
	if fn := r.triggers[hit.Category]; fn != nil {
		fn()
	}
	return hit
}

// pick raycasts the interactable set and classifies the nearest hit. ok is false when the
// ray hits nothing.
func (r *Router) pick(x, y float32, width, height int) (Hit, bool) {
	if r.cam == nil || r.reg.Empty() {
		return Hit{}, false
	}
	ndcX, ndcY := camera.NDC(x, y, width, height)
	hits := r.cam.Ray(ndcX, ndcY).IntersectObjects(r.reg.Targets(), true)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return r.reg.Classify(hits[0].Node), true
}
