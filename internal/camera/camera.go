package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/scenegraph"
)

const (
	defaultFovy   = 45
	defaultAspect = 16.0 / 9.0
	defaultNear   = 1
	defaultFar    = 500
	// degenerateDistance: a look target closer than this to the eye carries no direction.
	degenerateDistance = 1e-6
)

// Camera is a perspective camera that points at a look target. Target is the last recorded
// look target; it doubles as the orbit pivot when no animation is running.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32 // degrees
	Aspect   float32
	Near     float32
	Far      float32

	direction mgl32.Vec3
}

// New returns a camera at position looking at target with fov 45°, near 1 and far 500.
func New(position, target mgl32.Vec3) *Camera {
	c := &Camera{
		Position:  position,
		Up:        mgl32.Vec3{0, 1, 0},
		Fovy:      defaultFovy,
		Aspect:    defaultAspect,
		Near:      defaultNear,
		Far:       defaultFar,
		direction: mgl32.Vec3{0, 0, -1},
	}
	c.LookAt(target)
	return c
}

// LookAt records target as the look target and points the camera at it.
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
	if d := target.Sub(c.Position); d.Len() > degenerateDistance {
		c.direction = d.Normalize()
	}
}

// Direction returns the normalized view direction. When the look target coincides with the
// eye, the last known direction is used.
func (c *Camera) Direction() mgl32.Vec3 {
	if d := c.Target.Sub(c.Position); d.Len() > degenerateDistance {
		return d.Normalize()
	}
	if c.direction.Len() == 0 {
		return mgl32.Vec3{0, 0, -1}
	}
	return c.direction
}

// LookTarget returns the recorded look target, or a point one unit along the view direction
// when the target is degenerate.
func (c *Camera) LookTarget() mgl32.Vec3 {
	if c.Target.Sub(c.Position).Len() > degenerateDistance {
		return c.Target
	}
	return c.Position.Add(c.Direction())
}

// SetViewport updates the aspect ratio from the viewport size. Zero sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewUp returns an up vector usable for the current direction. Looking straight along Up
// would make the view matrix degenerate, so -Z is used instead.
func (c *Camera) ViewUp() mgl32.Vec3 {
	up := c.Up
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	if up.Normalize().Cross(c.Direction()).Len() < 1e-4 {
		return mgl32.Vec3{0, 0, -1}
	}
	return up
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction()), c.ViewUp())
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

// Ray returns the world-space ray through normalized device coordinates (ndcX, ndcY),
// both in [-1, 1] with +Y up.
func (c *Camera) Ray(ndcX, ndcY float32) scenegraph.Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	near := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, -1}, inv)
	far := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, 1}, inv)
	return scenegraph.Ray{Origin: c.Position, Dir: far.Sub(near).Normalize()}
}

// NDC converts a pixel position inside a width x height viewport to normalized device
// coordinates.
func NDC(x, y float32, width, height int) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return x/float32(width)*2 - 1, -(y/float32(height))*2 + 1
}
