package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vinyl-portfolio/internal/app"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30

	stateFontSize   = 16
	stateLineHeight = stateFontSize + 4
	// logLines is how many recent log lines the interaction overlay shows.
	logLines = 6
)

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// ShowInteraction draws page, hover and transition state top-left, with recent log lines.
	ShowInteraction bool

	status       func() app.Status
	logs         func() []string
	textures     func() int
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden. status, logs and textures may be nil;
// textures reports how many textures the renderer holds on the GPU.
func New(status func() app.Status, logs func() []string, textures func() int) *Debug {
	return &Debug{status: status, logs: logs, textures: textures}
}

// Draw renders any enabled overlays. Call after the scene in the draw loop.
// FPS is drawn at the top-right in green, memory (heap alloc) under it.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y)
	}

	if d.ShowInteraction {
		d.drawInteraction()
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
}

func (d *Debug) drawInteraction() {
	y := int32(fpsPadding)
	for _, l := range d.InteractionLines() {
		rl.DrawText(l, fpsPadding, y, stateFontSize, rl.DarkGreen)
		y += stateLineHeight
	}
}

// InteractionLines is the text of the interaction overlay: state, resident textures, then the
// most recent log lines.
func (d *Debug) InteractionLines() []string {
	var lines []string
	if d.status != nil {
		lines = StatusLines(d.status())
	}
	if d.textures != nil {
		lines = append(lines, fmt.Sprintf("textures: %d", d.textures()))
	}
	if d.logs != nil {
		lines = append(lines, Tail(d.logs(), logLines)...)
	}
	return lines
}

// StatusLines formats the interaction state, one fact per line.
func StatusLines(st app.Status) []string {
	lines := []string{
		"page: " + st.Page.String(),
		"hover: " + st.Hover.String(),
	}
	if st.Hit.Node != nil {
		lines = append(lines, fmt.Sprintf("hit: %s (%s)", st.Hit.Node.Name, st.Hit.Category))
	}
	if st.Transitioning {
		lines = append(lines, "transitioning")
	}
	lines = append(lines, fmt.Sprintf("animations: %d", st.Animations))
	return lines
}

// Tail returns the last n entries of lines.
func Tail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
