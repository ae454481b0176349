package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vinyl-portfolio/internal/config"
	"vinyl-portfolio/internal/debug"
)

// overlayKeys are the function keys that flip a debug overlay.
var overlayKeys = []int32{rl.KeyF1, rl.KeyF2, rl.KeyF3}

// toggleOverlay flips the overlay preference bound to key. Reports false for unbound keys.
func toggleOverlay(p *config.Prefs, key int32) bool {
	switch key {
	case rl.KeyF1:
		p.ShowFPS = !p.ShowFPS
	case rl.KeyF2:
		p.ShowMemAlloc = !p.ShowMemAlloc
	case rl.KeyF3:
		p.ShowInteraction = !p.ShowInteraction
	default:
		return false
	}
	return true
}

// applyOverlays copies the overlay preferences onto d.
func applyOverlays(d *debug.Debug, p config.Prefs) {
	d.ShowFPS = p.ShowFPS
	d.ShowMemAlloc = p.ShowMemAlloc
	d.ShowInteraction = p.ShowInteraction
}

// pollOverlayKeys applies this frame's overlay key presses to p and reports whether any
// preference changed.
func pollOverlayKeys(p *config.Prefs) bool {
	changed := false
	for _, k := range overlayKeys {
		if rl.IsKeyPressed(k) && toggleOverlay(p, k) {
			changed = true
		}
	}
	return changed
}
