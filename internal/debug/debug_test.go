package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vinyl-portfolio/internal/app"
	"vinyl-portfolio/internal/interact"
	"vinyl-portfolio/internal/scenegraph"
	"vinyl-portfolio/internal/scenes"
)

func TestStatusLines(t *testing.T) {
	lines := StatusLines(app.Status{Page: scenes.PageInitial, Hover: interact.None})
	assert.Equal(t, []string{"page: initial", "hover: none", "animations: 0"}, lines)

	vinyl := scenegraph.NewGroup("vinyl-3")
	lines = StatusLines(app.Status{
		Page:          scenes.PageInitial,
		Hover:         interact.ShelfVinyls,
		Hit:           interact.Hit{Category: interact.ShelfVinyls, Node: vinyl},
		Transitioning: true,
		Animations:    2,
	})
	assert.Equal(t, []string{
		"page: initial",
		"hover: shelf-vinyls",
		"hit: vinyl-3 (shelf-vinyls)",
		"transitioning",
		"animations: 2",
	}, lines)
}

func TestTail(t *testing.T) {
	assert.Equal(t, []string{"c", "d"}, Tail([]string{"a", "b", "c", "d"}, 2))
	assert.Equal(t, []string{"a"}, Tail([]string{"a"}, 6))
	assert.Empty(t, Tail(nil, 3))
}

func TestInteractionLines(t *testing.T) {
	logs := []string{"1", "2", "3", "4", "5", "6", "7"}
	d := New(
		func() app.Status { return app.Status{Page: scenes.PageAboutMe, Hover: interact.None} },
		func() []string { return logs },
		func() int { return 3 },
	)

	assert.Equal(t, []string{
		"page: about-me",
		"hover: none",
		"animations: 0",
		"textures: 3",
		"2", "3", "4", "5", "6", "7",
	}, d.InteractionLines())

	assert.Empty(t, New(nil, nil, nil).InteractionLines())
}
