package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/scenegraph"
)

// lighting is the per-frame light setup handed to the lit shader.
type lighting struct {
	ambient   mgl32.Vec3
	dir       mgl32.Vec3 // towards the light, normalized
	color     mgl32.Vec3
	intensity float32
}

// fallbackLighting is used when the scene has no directional light.
var fallbackLighting = lighting{
	ambient:   mgl32.Vec3{0.2, 0.22, 0.26},
	dir:       mgl32.Vec3{0.5, 1, 0.5}.Normalize(),
	color:     mgl32.Vec3{1, 0.98, 0.95},
	intensity: 0.75,
}

// lightsOf sums the scene's ambient lights and takes the first directional one.
func lightsOf(s *scenegraph.Scene) lighting {
	l := fallbackLighting
	var ambient mgl32.Vec3
	sawAmbient, sawSun := false, false
	for _, n := range s.Lights() {
		if n.Light == nil {
			continue
		}
		c := rgb(n.Light.Color)
		switch n.Light.Type {
		case scenegraph.LightAmbient:
			ambient = ambient.Add(c.Mul(n.Light.Intensity))
			sawAmbient = true
		case scenegraph.LightDirectional:
			if sawSun {
				continue
			}
			p := n.WorldPosition()
			if p.Len() < 1e-6 {
				continue
			}
			l.dir = p.Normalize()
			l.color = c
			l.intensity = n.Light.Intensity
			sawSun = true
		}
	}
	if sawAmbient {
		l.ambient = ambient
	}
	return l
}

// shade applies ambient plus Lambert diffuse to c for a surface with world normal n. Used for
// geometry drawn without the lit shader.
func (l lighting) shade(c color.RGBA, n mgl32.Vec3) color.RGBA {
	f := l.ambient
	if d := n.Dot(l.dir); d > 0 {
		f = f.Add(l.color.Mul(d * l.intensity))
	} else if d < 0 {
		// Double-sided surfaces seen from behind light the same way.
		f = f.Add(l.color.Mul(-d * l.intensity))
	}
	scale := func(v uint8, k float32) uint8 {
		x := float32(v) * k
		if x > 255 {
			return 255
		}
		return uint8(x)
	}
	return color.RGBA{R: scale(c.R, f.X()), G: scale(c.G, f.Y()), B: scale(c.B, f.Z()), A: c.A}
}

func rgb(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
