package main

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vinyl-portfolio/internal/app"
)

// clickSlop is how far, in pixels, the pointer may travel between press and release and still
// count as a click rather than an orbit drag.
const clickSlop = 4

// pointer samples raylib's mouse state into app.Input once per frame.
type pointer struct {
	travel  float32
	started bool
}

func (p *pointer) poll() app.Input {
	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	in := app.Input{
		Width:   rl.GetScreenWidth(),
		Height:  rl.GetScreenHeight(),
		Resized: rl.IsWindowResized(),
		MouseX:  pos.X,
		MouseY:  pos.Y,
		Moved:   delta.X != 0 || delta.Y != 0 || !p.started,
		Wheel:   rl.GetMouseWheelMove(),
	}
	p.started = true

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p.travel = 0
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		p.travel += math32.Sqrt(delta.X*delta.X + delta.Y*delta.Y)
		if p.travel > clickSlop {
			in.Dragging = true
			in.DragDX, in.DragDY = delta.X, delta.Y
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && p.travel <= clickSlop {
		in.Clicked = true
	}
	return in
}
