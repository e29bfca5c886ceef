package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box extents: x and z in [-1, 1], y in [0, 2]
const (
	cornellHalf   = 1.0
	cornellHeight = 2.0
)

// NewCornellScene creates a classic Cornell box with plane walls, a ceiling
// area light, a mirror sphere and a glass sphere
func NewCornellScene() *Preset {
	s := newCornellBox()

	mirror := geometry.NewSurface(material.Mirror(), core.Splat(0.999), core.Vec3{})
	glass := geometry.NewSurface(material.Fresnel(material.IORGlassBK7), core.Splat(0.999), core.Vec3{})
	s.Add(
		geometry.NewSphere(core.NewVec3(-0.45, 0.35, -0.4), 0.35, mirror),
		geometry.NewSphere(core.NewVec3(0.45, 0.35, 0.3), 0.35, glass),
	)

	return &Preset{
		Name:            "cornell",
		Scene:           s,
		Camera:          cornellCamera(),
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		SamplesPerPixel: DefaultSamplesPerPixel,
		MaxDepth:        DefaultMaxDepth,
	}
}

// newCornellBox returns the walls and light without any content.
// The front of the box is open; the camera looks in from +z.
func newCornellBox() *Scene {
	white := geometry.NewSurface(material.Diffuse(), core.Splat(0.75), core.Vec3{})
	red := geometry.NewSurface(material.Diffuse(), core.NewVec3(0.75, 0.25, 0.25), core.Vec3{})
	green := geometry.NewSurface(material.Diffuse(), core.NewVec3(0.25, 0.75, 0.25), core.Vec3{})
	light := geometry.NewSurface(material.Diffuse(), core.Vec3{}, core.Splat(12))

	s := New()
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white),             // Floor
		geometry.NewPlane(core.NewVec3(0, cornellHeight, 0), core.NewVec3(0, -1, 0), white), // Ceiling
		geometry.NewPlane(core.NewVec3(0, 0, -cornellHalf), core.NewVec3(0, 0, 1), white),   // Back
		geometry.NewPlane(core.NewVec3(-cornellHalf, 0, 0), core.NewVec3(1, 0, 0), red),     // Left
		geometry.NewPlane(core.NewVec3(cornellHalf, 0, 0), core.NewVec3(-1, 0, 0), green),   // Right
	)

	// Ceiling light slightly below the ceiling so it wins the nearest hit
	lamp := geometry.NewQuad(
		core.NewVec3(-0.3, cornellHeight-1e-3, -0.3),
		core.NewVec3(0.6, 0, 0),
		core.NewVec3(0, 0, 0.6),
		light,
	)
	s.AddPolygons(lamp[:]...)
	return s
}

func cornellCamera() *renderer.Camera {
	return renderer.NewCamera(
		core.NewVec3(0, 1, 3.7),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		40,
	)
}
