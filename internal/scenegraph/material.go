package scenegraph

import (
	"image"
	"image/color"
)

// Material is the surface description of a mesh or edges node.
// Texture, when set, is used as the albedo map; a nil Texture renders the flat Color.
type Material struct {
	Color       color.RGBA
	Opacity     float32
	Transparent bool
	DoubleSided bool
	// Unlit skips lighting (basic material).
	Unlit   bool
	Texture image.Image
}

// Solid returns an opaque lit material of the given 0xRRGGBB colour.
func Solid(hex uint32) *Material {
	return &Material{Color: Hex(hex), Opacity: 1}
}

// Hex converts 0xRRGGBB to an opaque colour.
func Hex(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// Tint returns Color with alpha scaled by Opacity when the material is transparent.
func (m *Material) Tint() color.RGBA {
	c := m.Color
	if m.Transparent {
		a := m.Opacity
		if a < 0 {
			a = 0
		}
		if a > 1 {
			a = 1
		}
		c.A = uint8(a * 255)
	}
	return c
}

// LightType distinguishes ambient from directional lights.
type LightType int

const (
	LightAmbient LightType = iota
	LightDirectional
)

// Light parameters. Directional lights shine from the node's world position towards the origin.
type Light struct {
	Type      LightType
	Color     color.RGBA
	Intensity float32
}
