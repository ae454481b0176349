package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options describes the window opened by Run.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
	// Shutdown runs after the loop ends, while the GL context is still alive.
	Shutdown func()
}

// Run opens the window and runs the main loop. Each frame it calls update (input and
// animation), then draw between BeginDrawing and EndDrawing; draw is responsible for clearing.
// The window is resizable and multisampled. Close via the window button or ESC.
func Run(opts Options, update, draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	w, h := int32(opts.Width), int32(opts.Height)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()

	if opts.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(0), rl.GetMonitorHeight(0))
	}
	fps := opts.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		draw()
		rl.EndDrawing()
	}
	if opts.Shutdown != nil {
		opts.Shutdown()
	}
}

// Cursor switches the mouse cursor between the arrow and the pointing hand.
type Cursor struct {
	pointer bool
}

// SetPointer shows the pointing hand when pointer is true. Repeated calls with the same value
// do not touch the window.
func (c *Cursor) SetPointer(pointer bool) {
	if c.pointer == pointer {
		return
	}
	c.pointer = pointer
	if pointer {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
		return
	}
	rl.SetMouseCursor(rl.MouseCursorDefault)
}
