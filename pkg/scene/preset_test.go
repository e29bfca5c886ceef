package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const tetrahedronPLY = `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face 4
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
0 1 0
0 0 1
3 0 2 1
3 0 1 3
3 0 3 2
3 1 2 3
`

func writeTetrahedron(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tetra.ply")
	if err := os.WriteFile(path, []byte(tetrahedronPLY), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func renderSetting(p *Preset, mode integrator.Mode) *renderer.RenderSetting {
	return &renderer.RenderSetting{
		Width:           16,
		Height:          16,
		SamplesPerPixel: 2,
		MaxDepth:        4,
		Camera:          p.Camera,
		Scene:           p.Scene,
		Mode:            mode,
		Seed:            3,
	}
}

func TestPresets(t *testing.T) {
	mesh, err := NewMeshScene(writeTetrahedron(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	presets := []*Preset{NewCornellScene(), NewSpheresScene(), mesh}
	for _, p := range presets {
		t.Run(p.Name, func(t *testing.T) {
			if !p.Camera.Valid() {
				t.Error("Expected a valid camera")
			}
			if p.Width <= 0 || p.Height <= 0 || p.SamplesPerPixel <= 0 || p.MaxDepth <= 0 {
				t.Errorf("Expected positive settings, got %dx%d spp %d depth %d", p.Width, p.Height, p.SamplesPerPixel, p.MaxDepth)
			}

			// Every camera ray through the centre should find geometry
			_, ok := p.Scene.Hit(p.Camera.CreateRay(16, 16, 8, 8), p.Camera.Interval())
			if !ok {
				t.Error("Expected the centre ray to hit the scene")
			}

			pixels, _, err := renderer.NewRenderer(renderer.NewWorkerPool(2), nil).Render(renderSetting(p, integrator.Shade()))
			if err != nil {
				t.Fatalf("Unexpected render error: %v", err)
			}
			lit := false
			for _, px := range pixels {
				lit = lit || px != (renderer.RGB{})
			}
			if !lit {
				t.Error("Expected some lit pixels")
			}
		})
	}
}

func TestCornellSceneContents(t *testing.T) {
	s := NewCornellScene().Scene
	if len(s.Planes) != 5 || len(s.Spheres) != 2 || len(s.Polygons) != 2 {
		t.Errorf("Unexpected Cornell box contents: %v", s)
	}

	// The light is the only emitter
	for _, p := range s.Polygons {
		if p.Emission.MaxComponent() <= 0 {
			t.Error("Expected the ceiling quad to emit")
		}
	}
	for _, p := range s.Planes {
		if !p.Emission.IsZero() {
			t.Error("Expected walls not to emit")
		}
	}
}

func TestSpheresSceneSkyFromInside(t *testing.T) {
	p := NewSpheresScene()
	// Looking straight up from the camera only the sky can be hit
	hit, ok := p.Scene.Hit(core.NewRay(p.Camera.Position(), core.NewVec3(0, 1, 0)), renderer.DefaultInterval)
	if !ok {
		t.Fatal("Expected to hit the sky sphere from inside")
	}
	if hit.Emission.IsZero() {
		t.Errorf("Expected an emissive hit, got %+v", hit)
	}
}

func TestMeshSceneMissingFile(t *testing.T) {
	if _, err := NewMeshScene(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("Expected an error for a missing mesh")
	}
}

func TestPresetDebugRenderDeterministic(t *testing.T) {
	p := NewCornellScene()
	first, _, err := renderer.NewRenderer(renderer.NewGroupExecutor(3), nil).Render(renderSetting(p, integrator.DepthNormalColor(8)))
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := renderer.NewRenderer(renderer.SerialExecutor{}, nil).Render(renderSetting(p, integrator.DepthNormalColor(8)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Pixel %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
