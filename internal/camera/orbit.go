package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultDamping matches the inertia of the original orbit feel.
	DefaultDamping = 0.05
	minPolar       = 1e-3
	minDistance    = 2
	maxDistance    = 200
)

// Orbit rotates and zooms a camera around its look target. Input accumulates deltas; Update
// applies a damped share of them every frame so motion eases out after input stops.
type Orbit struct {
	Camera  *Camera
	Damping float32
	Enabled bool

	deltaTheta float32
	deltaPhi   float32
	zoom       float32
}

// NewOrbit returns enabled orbit controls for cam.
func NewOrbit(cam *Camera) *Orbit {
	return &Orbit{Camera: cam, Damping: DefaultDamping, Enabled: true, zoom: 1}
}

// Rotate queues an azimuth (theta) and polar (phi) change in radians.
func (o *Orbit) Rotate(theta, phi float32) {
	if !o.Enabled {
		return
	}
	o.deltaTheta += theta
	o.deltaPhi += phi
}

// Zoom queues a distance scale; values below 1 move closer.
func (o *Orbit) Zoom(scale float32) {
	if !o.Enabled || scale <= 0 {
		return
	}
	o.zoom *= scale
}

// Halt discards pending motion. Called when an animation takes over the camera.
func (o *Orbit) Halt() {
	o.deltaTheta, o.deltaPhi, o.zoom = 0, 0, 1
}

// Update moves the camera by the damped share of pending motion and keeps it pointed at the
// target. Returns true if the camera moved.
func (o *Orbit) Update() bool {
	if !o.Enabled || o.Camera == nil {
		return false
	}
	if math32.Abs(o.deltaTheta) < 1e-6 && math32.Abs(o.deltaPhi) < 1e-6 && math32.Abs(o.zoom-1) < 1e-6 {
		o.Halt()
		return false
	}
	damping := o.Damping
	if damping <= 0 || damping > 1 {
		damping = 1
	}
	cam := o.Camera
	target := cam.Target
	offset := cam.Position.Sub(target)
	radius := offset.Len()
	if radius < degenerateDistance {
		return false
	}
	theta := math32.Atan2(offset.X(), offset.Z())
	phi := math32.Acos(mgl32.Clamp(offset.Y()/radius, -1, 1))

	theta += o.deltaTheta * damping
	phi += o.deltaPhi * damping
	phi = mgl32.Clamp(phi, minPolar, math32.Pi-minPolar)
	step := 1 + (o.zoom-1)*damping
	radius = mgl32.Clamp(radius*step, minDistance, maxDistance)

	sinPhi := math32.Sin(phi)
	offset = mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	}
	cam.Position = target.Add(offset)
	cam.LookAt(target)

	o.deltaTheta *= 1 - damping
	o.deltaPhi *= 1 - damping
	o.zoom = 1 + (o.zoom-1)*(1-damping)
	return true
}
