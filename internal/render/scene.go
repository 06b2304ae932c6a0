package render

import (
	"image"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-viewer/internal/config"
	"transform-viewer/internal/loader"
	"transform-viewer/internal/object"
	"transform-viewer/internal/transform"
	"transform-viewer/internal/ui/stylesheet"
)

// Cube is the Handle of the primary test object. It is drawn with the scene's unlit cube mesh.
type Cube struct{}

// Scene holds the camera and GPU resources and draws managed objects. GPU resources are
// created in Mount, after the window/OpenGL context exists, and released in Unload.
//
// Scene also implements loader.Backend: loaded models are tracked and freed by Unload.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Background  rl.Color

	cubeColor rl.Color
	cubeMesh  rl.Mesh
	cubeMtl   rl.Material
	litShader rl.Shader
	models    []*rl.Model
	mounted   bool
}

// New returns a scene configured from cfg. The camera sits at cfg.Camera looking down -Z,
// like a default perspective camera that has only been moved.
func New(cfg config.Render) *Scene {
	s := &Scene{GridVisible: cfg.ShowGrid}
	pos := rl.NewVector3(cfg.Camera[0], cfg.Camera[1], cfg.Camera[2])
	s.Camera.Position = pos
	s.Camera.Target = rl.NewVector3(pos.X, pos.Y, pos.Z-1)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cfg.FOV
	s.Camera.Projection = rl.CameraPerspective

	s.Background, _ = stylesheet.ParseHexColor(cfg.Background)
	s.cubeColor, _ = stylesheet.ParseHexColor(cfg.CubeColor)
	return s
}

// Mount creates the cube mesh and the lit model shader. Call once after the window opens.
func (s *Scene) Mount() {
	if s.mounted {
		return
	}
	s.cubeMesh = rl.GenMeshCube(1, 1, 1)
	s.cubeMtl = rl.LoadMaterialDefault()
	if albedo := s.cubeMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = s.cubeColor
	}
	s.litShader = loadLitShader()
	s.mounted = true
}

// Load implements loader.Backend with rl.LoadModel. A model without meshes is returned as
// an empty Asset, which the loader reports as loader.ErrNoScene.
func (s *Scene) Load(path string) (loader.Asset, error) {
	if _, err := os.Stat(path); err != nil {
		return loader.Asset{}, err
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return loader.Asset{}, nil
	}
	if s.litShader.ID != 0 {
		mats := model.GetMaterials()
		for i := range mats {
			mats[i].Shader = s.litShader
		}
	}
	s.models = append(s.models, &model)
	return loader.Asset{Root: &model}, nil
}

// Draw renders objects in 3D. Call between BeginDrawing and EndDrawing, before the 2D overlay.
// Objects with an unknown Handle are skipped.
func (s *Scene) Draw(objects []*object.Object) {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	for _, o := range objects {
		m := Matrix(o.Matrix())
		switch h := o.Handle.(type) {
		case Cube:
			if s.mounted {
				rl.DrawMesh(s.cubeMesh, s.cubeMtl, m)
			}
		case *rl.Model:
			h.Transform = m
			rl.DrawModel(*h, rl.NewVector3(0, 0, 0), 1, rl.White)
		}
	}
	rl.EndMode3D()
}

// Release frees a model handed out by Load, if the handle is one.
func (s *Scene) Release(handle any) {
	model, ok := handle.(*rl.Model)
	if !ok {
		return
	}
	for i, m := range s.models {
		if m == model {
			s.unloadModel(model)
			s.models = append(s.models[:i], s.models[i+1:]...)
			return
		}
	}
}

// unloadModel detaches the shared lit shader first so UnloadModel does not free it once per material.
func (s *Scene) unloadModel(model *rl.Model) {
	mats := model.GetMaterials()
	for i := range mats {
		if mats[i].Shader.ID == s.litShader.ID {
			mats[i].Shader = rl.Shader{}
		}
	}
	rl.UnloadModel(*model)
}

// Unload releases every model, the cube and the shader. The scene can be mounted again.
func (s *Scene) Unload() {
	for _, m := range s.models {
		s.unloadModel(m)
	}
	s.models = nil
	if !s.mounted {
		return
	}
	rl.UnloadMesh(&s.cubeMesh)
	rl.UnloadMaterial(s.cubeMtl)
	if s.litShader.ID != 0 {
		rl.UnloadShader(s.litShader)
	}
	s.cubeMesh, s.cubeMtl, s.litShader = rl.Mesh{}, rl.Material{}, rl.Shader{}
	s.mounted = false
}

// Matrix converts a column-major transform to raylib's layout; Mi is component i.
func Matrix(m transform.Mat4) rl.Matrix {
	f := m.Float32()
	return rl.Matrix{
		M0: f[0], M1: f[1], M2: f[2], M3: f[3],
		M4: f[4], M5: f[5], M6: f[6], M7: f[7],
		M8: f[8], M9: f[9], M10: f[10], M11: f[11],
		M12: f[12], M13: f[13], M14: f[14], M15: f[15],
	}
}

// Screenshot grabs the current framebuffer. Call after EndDrawing.
func Screenshot() image.Image {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	return img.ToImage()
}
