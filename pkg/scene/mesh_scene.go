package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMeshScene loads a glTF or PLY mesh and stands it on the floor of the Cornell box
func NewMeshScene(path string) (*Preset, error) {
	mesh, err := loaders.LoadMesh(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}
	mesh.Fit(core.NewVec3(0, 0, 0), 1.2)

	s := newCornellBox()
	surface := geometry.NewSurface(material.Diffuse(), core.NewVec3(0.8, 0.7, 0.5), core.Vec3{})
	s.AddPolygons(mesh.Polygons(surface)...)

	return &Preset{
		Name:            "mesh:" + mesh.Name,
		Scene:           s,
		Camera:          cornellCamera(),
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		SamplesPerPixel: DefaultSamplesPerPixel,
		MaxDepth:        DefaultMaxDepth,
	}, nil
}
