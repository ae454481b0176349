package anim

import "github.com/chewxy/math32"

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float32) float32

// Linear is the identity ease.
func Linear(t float32) float32 { return t }

// EaseInOutQuad accelerates through the first half and decelerates through the second.
func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math32.Pow(-2*t+2, 2)/2
}

// EaseOutCubic starts fast and settles gently.
func EaseOutCubic(t float32) float32 {
	return 1 - math32.Pow(1-t, 3)
}

func clamp01(t float32) float32 {
	if t < 0 || math32.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
