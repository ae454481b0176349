// Package assets loads image files used as textures.
package assets

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// MaxTextureSide caps the longer side of a loaded image; larger images are scaled down to it.
const MaxTextureSide = 1024

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// LoadImage decodes the PNG or JPEG at path, scaling it down so neither side exceeds
// MaxTextureSide.
func LoadImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("load image %s: %w", path, ErrEmptyImage)
	}
	return Fit(img, MaxTextureSide), nil
}

// Fit scales img down, keeping its aspect ratio, so its longer side is at most maxSide.
// Images that already fit are returned as is.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}
	return transform.Resize(img, w, h, transform.Linear)
}
