package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PathTracingIntegrator implements unidirectional path tracing with
// purely multiplicative throughput. Emitters are found only by hitting them.
type PathTracingIntegrator struct {
	maxDepth int
	interval core.Interval
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, interval core.Interval) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth: maxDepth,
		interval: interval,
	}
}

// MaxDepth returns the maximum number of path segments traced per sample
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the radiance for a single camera ray.
// A miss contributes nothing; there is no background.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.Splat(1)

	for depth := 0; depth < pt.maxDepth; depth++ {
		// Nothing further along this path can contribute
		if throughput.MaxComponent() <= 0 {
			break
		}

		hit, ok := world.Hit(ray, pt.interval)
		if !ok {
			break
		}

		radiance = radiance.Add(throughput.MultiplyVec(hit.Emission))

		direction := material.Scatter(ray, hit, sampler)
		throughput = throughput.MultiplyVec(hit.Reflectance)
		ray = core.NewRay(hit.Point, direction)
	}

	return radiance
}
