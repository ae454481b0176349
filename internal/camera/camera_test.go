package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_RayThroughCentreHitsTarget(t *testing.T) {
	cam := New(mgl32.Vec3{0, 15, 30}, mgl32.Vec3{-10, 0, 0})

	ray := cam.Ray(0, 0)

	want := mgl32.Vec3{-10, 0, 0}.Sub(cam.Position).Normalize()
	assert.Less(t, ray.Dir.Sub(want).Len(), float32(1e-4), "got %v want %v", ray.Dir, want)
	assert.Equal(t, cam.Position, ray.Origin)
}

func TestCamera_RayEdgesSpreadWithFov(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})
	cam.SetViewport(800, 800)

	top := cam.Ray(0, 1)
	// Half the vertical fov (22.5°) above the view axis.
	assert.InDelta(t, 0.3827, top.Dir.Y(), 1e-3)
	assert.Less(t, top.Dir.Z(), float32(0))

	right := cam.Ray(1, 0)
	assert.Greater(t, right.Dir.X(), float32(0))
}

func TestCamera_LookingStraightDownIsValid(t *testing.T) {
	cam := New(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, 2, 0})

	ray := cam.Ray(0, 0)
	assert.Less(t, ray.Dir.Sub(mgl32.Vec3{0, -1, 0}).Len(), float32(1e-4), "got %v", ray.Dir)
}

func TestCamera_LookTargetFallsBackToDirection(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0})
	cam.Target = cam.Position

	assert.Equal(t, mgl32.Vec3{0, 0, 4}, cam.LookTarget())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cam.Direction())
}

func TestNDC(t *testing.T) {
	x, y := NDC(0, 0, 800, 600)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)

	x, y = NDC(400, 300, 800, 600)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)

	x, y = NDC(10, 10, 0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestOrbit_RotateKeepsDistanceAndTarget(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})
	o := NewOrbit(cam)
	o.Damping = 1

	o.Rotate(mgl32.DegToRad(90), 0)
	require.True(t, o.Update())

	assert.Less(t, cam.Position.Sub(mgl32.Vec3{10, 0, 0}).Len(), float32(1e-3), "got %v", cam.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.Target)
	assert.False(t, o.Update(), "no pending motion")
}

func TestOrbit_DampingDecays(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})
	o := NewOrbit(cam)

	o.Rotate(1, 0)
	o.Update()
	first := cam.Position
	o.Update()
	second := cam.Position

	assert.NotEqual(t, first, second, "residual motion keeps moving the camera")
	assert.InDelta(t, 10, second.Len(), 1e-3)
}

func TestOrbit_DisabledIgnoresInput(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})
	o := NewOrbit(cam)
	o.Enabled = false

	o.Rotate(1, 1)
	o.Zoom(0.5)
	assert.False(t, o.Update())
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, cam.Position)
}
