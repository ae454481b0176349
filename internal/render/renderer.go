// Package render draws a scene graph with raylib. GPU meshes, shaders and textures are created
// lazily on first draw, so they are allocated after the window and GL context exist.
package render

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"vinyl-portfolio/internal/assets"
	"vinyl-portfolio/internal/camera"
	"vinyl-portfolio/internal/scenegraph"
)

// cached holds a unit mesh and the materials it is drawn with.
type cached struct {
	mesh          rl.Mesh
	lit           rl.Material
	litTextured   rl.Material
	unlit         rl.Material
	unlitTextured rl.Material
}

// texture is the GPU copy of a node's albedo image. src detects a swapped image.
type texture struct {
	src   image.Image
	tex   rl.Texture2D
	valid bool
}

// Renderer draws one scene. Textures are per node and unloaded when the scene releases the node.
type Renderer struct {
	Logger zerolog.Logger

	scene       *scenegraph.Scene
	ready       bool
	meshes      map[scenegraph.Shape]*cached
	textures    map[*scenegraph.Node]texture
	lit         rl.Shader
	litTextured rl.Shader
	light       lighting
}

// New returns a renderer for s and hooks it into s's release path.
func New(log zerolog.Logger, s *scenegraph.Scene) *Renderer {
	r := &Renderer{
		Logger:   log,
		scene:    s,
		meshes:   make(map[scenegraph.Shape]*cached),
		textures: make(map[*scenegraph.Node]texture),
		light:    fallbackLighting,
	}
	s.OnRelease(r.release)
	return r
}

// ensure loads shaders and unit meshes. Must run with a live GL context.
func (r *Renderer) ensure() {
	if r.ready {
		return
	}
	r.ready = true
	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	r.litTextured = rl.LoadShaderFromMemory(litVS, litTexturedFS)
	r.meshes[scenegraph.ShapeBox] = r.newCached(rl.GenMeshCube(1, 1, 1))
	r.meshes[scenegraph.ShapePlane] = r.newCached(rl.GenMeshPlane(1, 1, 1, 1))
	r.Logger.Debug().
		Bool("lit", rl.IsShaderValid(r.lit)).
		Bool("litTextured", rl.IsShaderValid(r.litTextured)).
		Msg("renderer resources loaded")
}

func (r *Renderer) newCached(mesh rl.Mesh) *cached {
	c := &cached{
		mesh:          mesh,
		lit:           rl.LoadMaterialDefault(),
		litTextured:   rl.LoadMaterialDefault(),
		unlit:         rl.LoadMaterialDefault(),
		unlitTextured: rl.LoadMaterialDefault(),
	}
	if rl.IsShaderValid(r.lit) {
		c.lit.Shader = r.lit
	}
	if rl.IsShaderValid(r.litTextured) {
		c.litTextured.Shader = r.litTextured
	}
	return c
}

// release drops the GPU texture of a released node.
func (r *Renderer) release(n *scenegraph.Node) {
	t, ok := r.textures[n]
	if !ok {
		return
	}
	if t.valid {
		rl.UnloadTexture(t.tex)
	}
	delete(r.textures, n)
}

// Textures reports how many node textures are resident.
func (r *Renderer) Textures() int { return len(r.textures) }

// Close unloads every GPU resource. Call before the window closes.
func (r *Renderer) Close() {
	for n := range r.textures {
		r.release(n)
	}
	if !r.ready {
		return
	}
	for _, c := range r.meshes {
		rl.UnloadMesh(&c.mesh)
	}
	if rl.IsShaderValid(r.lit) {
		rl.UnloadShader(r.lit)
	}
	if rl.IsShaderValid(r.litTextured) {
		rl.UnloadShader(r.litTextured)
	}
	r.ready = false
}

// Draw clears to the scene background and draws the scene from cam: opaque nodes first,
// then transparent ones and edges back to front.
func (r *Renderer) Draw(cam *camera.Camera) {
	rl.ClearBackground(toColor(r.scene.Background))
	r.ensure()
	r.light = lightsOf(r.scene)
	setLitUniforms(r.lit, r.light)
	setLitUniforms(r.litTextured, r.light)

	opaque, transparent := collect(r.scene.Root, cam.Position)

	rl.BeginMode3D(toCamera3D(cam))
	for _, it := range opaque {
		r.drawItem(it)
	}
	rl.DisableDepthMask()
	for _, it := range transparent {
		r.drawItem(it)
	}
	rl.EnableDepthMask()
	rl.EndMode3D()
}

func (r *Renderer) drawItem(it item) {
	n := it.node
	m := n.Material
	col := m.Tint()
	if m.DoubleSided {
		rl.DisableBackfaceCulling()
		defer rl.EnableBackfaceCulling()
	}

	if n.Kind == scenegraph.KindEdges {
		for _, s := range edges(n.Geometry) {
			rl.DrawLine3D(toVector3(transform(it.world, s.A)), toVector3(transform(it.world, s.B)), toColor(col))
		}
		return
	}

	switch n.Geometry.Shape {
	case scenegraph.ShapeBox:
		r.drawMesh(n, it.world.Mul4(boxBasis(n.Geometry)), col)
	case scenegraph.ShapePlane:
		r.drawMesh(n, it.world.Mul4(planeBasis(n.Geometry)), col)
	case scenegraph.ShapeRing:
		if !m.Unlit {
			normal := it.world.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize()
			col = r.light.shade(col, normal)
		}
		for _, t := range ringTriangles(n.Geometry) {
			rl.DrawTriangle3D(
				toVector3(transform(it.world, t[0])),
				toVector3(transform(it.world, t[1])),
				toVector3(transform(it.world, t[2])),
				toColor(col),
			)
		}
	}
}

func (r *Renderer) drawMesh(n *scenegraph.Node, model mgl32.Mat4, col color.RGBA) {
	c := r.meshes[n.Geometry.Shape]
	if c == nil {
		return
	}
	m := n.Material
	mtl := c.lit
	if m.Unlit {
		mtl = c.unlit
	}
	if m.Texture != nil {
		if tex, ok := r.texture(n); ok {
			mtl = c.litTextured
			if m.Unlit {
				mtl = c.unlitTextured
			}
			rl.SetMaterialTexture(&mtl, rl.MapAlbedo, tex)
		}
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(col)
	}
	rl.DrawMesh(c.mesh, mtl, toMatrix(model))
}

// texture uploads n's albedo image on first use and again when the image changes.
func (r *Renderer) texture(n *scenegraph.Node) (rl.Texture2D, bool) {
	src := n.Material.Texture
	if t, ok := r.textures[n]; ok {
		if t.src == src {
			return t.tex, t.valid
		}
		r.release(n)
	}
	img := rl.NewImageFromImage(assets.Fit(src, assets.MaxTextureSide))
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	t := texture{src: src, tex: tex, valid: rl.IsTextureValid(tex)}
	if !t.valid {
		r.Logger.Warn().Str("node", n.Name).Msg("texture upload failed")
	}
	r.textures[n] = t
	return t.tex, t.valid
}

func transform(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// toMatrix converts a column-major mgl32 matrix. Both index elements as column*4+row.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

func toCamera3D(c *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(c.Position),
		Target:     toVector3(c.Position.Add(c.Direction())),
		Up:         toVector3(c.ViewUp()),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
