package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// World is anything a ray can be traced against
type World interface {
	Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}

// New returns the integrator that renders the given mode
func New(mode Mode, maxDepth int, interval core.Interval) Integrator {
	if mode.Kind == ModeShade {
		return NewPathTracingIntegrator(maxDepth, interval)
	}
	return NewDebugIntegrator(mode, interval)
}
