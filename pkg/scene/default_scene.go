package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// skyRadius encloses the whole scene; camera rays start inside it and hit its far side
const skyRadius = 1e4

// NewSpheresScene creates a red and a green sphere on a ground plane with a
// glass sphere in front, lit by an emissive sky sphere
func NewSpheresScene() *Preset {
	ground := geometry.NewSurface(material.Diffuse(), core.Splat(0.5), core.Vec3{})
	red := geometry.NewSurface(material.Diffuse(), core.NewVec3(1, 0, 0), core.Vec3{})
	greenMirror := geometry.NewSurface(material.Mirror(), core.NewVec3(0, 1, 0), core.Vec3{})
	glass := geometry.NewSurface(material.Fresnel(material.IORGlassBK7), core.Splat(0.999), core.Vec3{})
	sky := geometry.NewSurface(material.Diffuse(), core.Vec3{}, core.NewVec3(0.9, 0.95, 1.0))

	s := New()
	s.Add(
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(-0.5, 0, 0), 1, red),
		geometry.NewSphere(core.NewVec3(0.5, 0, 0), 1, greenMirror),
		geometry.NewSphere(core.NewVec3(1.2, -0.5, 1.8), 0.5, glass),
		geometry.NewSphere(core.Vec3{}, skyRadius, sky),
	)

	return &Preset{
		Name:  "spheres",
		Scene: s,
		Camera: renderer.NewCamera(
			core.NewVec3(5, 5, 5),
			core.NewVec3(0, 0, 0),
			core.NewVec3(0, 1, 0),
			30,
		),
		Width:           1200,
		Height:          800,
		SamplesPerPixel: DefaultSamplesPerPixel,
		MaxDepth:        DefaultMaxDepth,
	}
}
