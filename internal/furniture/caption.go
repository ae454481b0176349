package furniture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"vinyl-portfolio/internal/scenegraph"
)

const (
	captionPixels     = 512
	captionFontSize   = 80
	captionLineHeight = 80
)

// CaptionImage renders lines centred on a square of colour bg, in black bold text.
func CaptionImage(lines []string, bg uint32) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, captionPixels, captionPixels))
	draw.Draw(img, img.Bounds(), image.NewUniform(scenegraph.Hex(bg)), image.Point{}, draw.Src)
	if len(lines) == 0 {
		return img, nil
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("caption font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("caption face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.Black), Face: face}
	m := face.Metrics()
	// Lines are spaced around the centre the way a middle text baseline lays them out.
	middle := (m.Ascent - m.Descent) / 2
	first := float32(captionPixels)/2 - float32(len(lines)-1)*captionLineHeight/2
	for i, line := range lines {
		cy := first + float32(i)*captionLineHeight
		w := d.MeasureString(line)
		d.Dot = fixed.Point26_6{
			X: fixed.I(captionPixels/2) - w/2,
			Y: fixed.Int26_6(cy*64) + middle,
		}
		d.DrawString(line)
	}
	return img, nil
}
