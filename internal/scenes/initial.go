package scenes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"vinyl-portfolio/internal/furniture"
	"vinyl-portfolio/internal/interact"
	"vinyl-portfolio/internal/scenegraph"
)

const (
	initialBackground = 0xFFF0F0
	initialFloor      = 0x0F1B5C
	floorSize         = 100
	groundSize        = 50

	ambientColor     = 0xD4A477
	ambientIntensity = 0.6
)

var (
	// InitialCameraPosition and OrbitTarget frame the room on start-up.
	InitialCameraPosition = mgl32.Vec3{0, 15, 30}
	OrbitTarget           = mgl32.Vec3{-10, 0, 0}
	sunPosition           = mgl32.Vec3{10, 15, 5}
)

// Room is the initial scene: the table and the shelf.
type Room struct {
	Table *furniture.Table
	Shelf *furniture.Shelf
	Floor *scenegraph.Node
}

// Registry returns the interactable roots of the room.
func (r *Room) Registry() *interact.Registry {
	if r == nil {
		return nil
	}
	reg := &interact.Registry{}
	if r.Table != nil {
		reg.TableDisc = r.Table.Disc
		reg.TableMeshes = r.Table.Meshes
	}
	if r.Shelf != nil {
		reg.Vinyls = r.Shelf.Vinyls
		reg.TopVinyl = r.Shelf.TopVinyl
		reg.ShelfDisc = r.Shelf.ShelfDisc
		reg.Caption = r.Shelf.Caption
	}
	return reg
}

// BuildRoom populates the initial scene. Lights are added separately by AddLights because
// they outlive every teardown.
func BuildRoom(ctx SceneContext) (*Room, error) {
	layout, err := furniture.DefaultLayout()
	if err != nil {
		return nil, fmt.Errorf("build room: %w", err)
	}
	s := ctx.Scene
	s.Background = scenegraph.Hex(initialBackground)

	r := &Room{
		Floor: furniture.NewFloor("floor", floorSize, initialFloor),
		Table: furniture.NewTable(furniture.DefaultTableOptions()),
		Shelf: furniture.NewShelf(layout),
	}
	s.Add(r.Floor)
	s.Add(r.Table.Root)
	s.Add(r.Shelf.Root)
	ctx.Logger.Info().
		Int("vinyls", len(r.Shelf.Vinyls)).
		Int("tableMeshes", len(r.Table.Meshes)).
		Msg("room built")
	return r, nil
}

// AddLights adds the ambient and directional lights. They survive Scene.Clear.
func AddLights(s *scenegraph.Scene) {
	s.Add(scenegraph.NewLight("ambient", scenegraph.Light{
		Type:      scenegraph.LightAmbient,
		Color:     scenegraph.Hex(ambientColor),
		Intensity: ambientIntensity,
	}))
	sun := scenegraph.NewLight("sun", scenegraph.Light{
		Type:      scenegraph.LightDirectional,
		Color:     scenegraph.Hex(0xffffff),
		Intensity: 1,
	})
	sun.Position = sunPosition
	s.Add(sun)
}
