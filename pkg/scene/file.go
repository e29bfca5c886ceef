package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// File is the JSON form of a scene
type File struct {
	Name            string          `json:"name,omitempty"`
	Width           int             `json:"width,omitempty"`
	Height          int             `json:"height,omitempty"`
	SamplesPerPixel int             `json:"spp,omitempty"`
	MaxDepth        int             `json:"reflect_n,omitempty"`
	Camera          CameraConfig    `json:"camera"`
	Spheres         []SphereConfig  `json:"spheres,omitempty"`
	Planes          []PlaneConfig   `json:"planes,omitempty"`
	Polygons        []PolygonConfig `json:"polygons,omitempty"`
	Meshes          []MeshConfig    `json:"meshes,omitempty"`
}

// Vec is a vector stored as a three element array
type Vec [3]float64

func (v Vec) vec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

func vecOf(v core.Vec3) Vec { return Vec{v.X, v.Y, v.Z} }

type CameraConfig struct {
	Position Vec     `json:"position"`
	Focus    Vec     `json:"focus"`
	Upside   Vec     `json:"upside"`
	FOV      float64 `json:"fov"` // Degrees
}

type MaterialConfig struct {
	Type string  `json:"type"` // diffuse, mirror or fresnel
	IOR  float64 `json:"ior,omitempty"`
}

type SurfaceConfig struct {
	Material    MaterialConfig `json:"material"`
	Reflectance Vec            `json:"reflectance"`
	Emission    Vec            `json:"emission"`
}

type SphereConfig struct {
	Center Vec     `json:"center"`
	Radius float64 `json:"radius"`
	SurfaceConfig
}

type PlaneConfig struct {
	Point  Vec `json:"point"`
	Normal Vec `json:"normal"`
	SurfaceConfig
}

type PolygonConfig struct {
	Vertices [3]Vec `json:"vertices"`
	SurfaceConfig
}

// MeshConfig places a mesh file. Path is relative to the scene file.
// A positive Fit scales the mesh to that size with its base at Offset;
// otherwise Scale and Offset are applied directly.
type MeshConfig struct {
	Path   string  `json:"path"`
	Scale  float64 `json:"scale,omitempty"`
	Offset Vec     `json:"offset"`
	Fit    float64 `json:"fit,omitempty"`
	SurfaceConfig
}

// LoadFile reads a scene file
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var sf File
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	dir := filepath.Dir(path)
	for i := range sf.Meshes {
		if p := sf.Meshes[i].Path; p != "" && !filepath.IsAbs(p) {
			sf.Meshes[i].Path = filepath.Join(dir, p)
		}
	}
	return &sf, nil
}

// SaveFile writes a scene file
func SaveFile(path string, sf *File) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// LoadPreset reads and builds a scene file
func LoadPreset(path string) (*Preset, error) {
	sf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	preset, err := sf.Build()
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", path, err)
	}
	return preset, nil
}

// Build converts the file into a renderable preset, filling in defaults
func (sf *File) Build() (*Preset, error) {
	if sf.Camera.FOV <= 0 || sf.Camera.FOV >= 180 {
		return nil, fmt.Errorf("camera fov must be in (0, 180) degrees, got %g", sf.Camera.FOV)
	}

	s := New()
	for i, desc := range sf.Spheres {
		surface, err := desc.SurfaceConfig.build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if desc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, desc.Radius)
		}
		s.Add(geometry.NewSphere(desc.Center.vec3(), desc.Radius, surface))
	}
	for i, desc := range sf.Planes {
		surface, err := desc.SurfaceConfig.build()
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		if desc.Normal.vec3().IsZero() {
			return nil, fmt.Errorf("plane %d: normal must not be zero", i)
		}
		s.Add(geometry.NewPlane(desc.Point.vec3(), desc.Normal.vec3(), surface))
	}
	for i, desc := range sf.Polygons {
		surface, err := desc.SurfaceConfig.build()
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		v := desc.Vertices
		s.Add(geometry.NewPolygon(v[0].vec3(), v[1].vec3(), v[2].vec3(), surface))
	}
	for i, desc := range sf.Meshes {
		polygons, err := desc.build()
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.AddPolygons(polygons...)
	}

	c := sf.Camera
	return &Preset{
		Name:            sf.Name,
		Scene:           s,
		Camera:          renderer.NewCamera(c.Position.vec3(), c.Focus.vec3(), c.Upside.vec3(), c.FOV),
		Width:           orDefault(sf.Width, DefaultWidth),
		Height:          orDefault(sf.Height, DefaultHeight),
		SamplesPerPixel: orDefault(sf.SamplesPerPixel, DefaultSamplesPerPixel),
		MaxDepth:        orDefault(sf.MaxDepth, DefaultMaxDepth),
	}, nil
}

func (desc MeshConfig) build() ([]geometry.Polygon, error) {
	surface, err := desc.SurfaceConfig.build()
	if err != nil {
		return nil, err
	}
	mesh, err := loaders.LoadMesh(desc.Path)
	if err != nil {
		return nil, err
	}
	switch {
	case desc.Fit > 0:
		mesh.Fit(desc.Offset.vec3(), desc.Fit)
	default:
		mesh.Transform(orDefaultFloat(desc.Scale, 1), desc.Offset.vec3())
	}
	return mesh.Polygons(surface), nil
}

func (desc SurfaceConfig) build() (geometry.Surface, error) {
	m, err := desc.Material.build()
	if err != nil {
		return geometry.Surface{}, err
	}
	return geometry.NewSurface(m, desc.Reflectance.vec3(), desc.Emission.vec3()), nil
}

func (desc MaterialConfig) build() (material.Material, error) {
	switch desc.Type {
	case "", "diffuse":
		return material.Diffuse(), nil
	case "mirror":
		return material.Mirror(), nil
	case "fresnel":
		if desc.IOR <= 0 {
			return material.Material{}, fmt.Errorf("fresnel material needs a positive ior, got %g", desc.IOR)
		}
		return material.Fresnel(desc.IOR), nil
	default:
		return material.Material{}, fmt.Errorf("unknown material type %q", desc.Type)
	}
}

// NewFile describes an in-memory scene as a scene file. Shapes outside the
// typed collections cannot be represented and are reported as an error.
func NewFile(p *Preset) (*File, error) {
	if len(p.Scene.Shapes) > 0 {
		return nil, fmt.Errorf("scene has %d shapes without a file representation", len(p.Scene.Shapes))
	}
	c := p.Camera
	sf := &File{
		Name:            p.Name,
		Width:           p.Width,
		Height:          p.Height,
		SamplesPerPixel: p.SamplesPerPixel,
		MaxDepth:        p.MaxDepth,
		Camera: CameraConfig{
			Position: vecOf(c.Position()),
			Focus:    vecOf(c.Focus()),
			Upside:   vecOf(c.Upside()),
			FOV:      c.FOV() * 180 / math.Pi,
		},
	}
	for _, sp := range p.Scene.Spheres {
		sf.Spheres = append(sf.Spheres, SphereConfig{Center: vecOf(sp.Center), Radius: sp.Radius, SurfaceConfig: surfaceConfig(sp.Surface)})
	}
	for _, pl := range p.Scene.Planes {
		sf.Planes = append(sf.Planes, PlaneConfig{Point: vecOf(pl.Point), Normal: vecOf(pl.Normal), SurfaceConfig: surfaceConfig(pl.Surface)})
	}
	for _, pg := range p.Scene.Polygons {
		sf.Polygons = append(sf.Polygons, PolygonConfig{Vertices: [3]Vec{vecOf(pg.A), vecOf(pg.B), vecOf(pg.C)}, SurfaceConfig: surfaceConfig(pg.Surface)})
	}
	return sf, nil
}

func surfaceConfig(s geometry.Surface) SurfaceConfig {
	return SurfaceConfig{
		Material:    MaterialConfig{Type: s.Material.Kind.String(), IOR: s.Material.IOR},
		Reflectance: vecOf(s.Reflectance),
		Emission:    vecOf(s.Emission),
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orDefaultFloat(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
