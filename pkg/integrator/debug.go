package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DebugIntegrator visualizes the first hit of each camera ray.
// It never consumes samples, so its output is fully deterministic.
type DebugIntegrator struct {
	mode     Mode
	interval core.Interval
}

// NewDebugIntegrator creates an integrator for one of the non-shading modes
func NewDebugIntegrator(mode Mode, interval core.Interval) *DebugIntegrator {
	return &DebugIntegrator{mode: mode, interval: interval}
}

// RayColor returns the debug color of the nearest hit, or black on a miss
func (d *DebugIntegrator) RayColor(ray core.Ray, world World, _ core.Sampler) core.Vec3 {
	hit, ok := world.Hit(ray, d.interval)
	if !ok {
		return core.Vec3{}
	}

	switch d.mode.Kind {
	case ModeNormal:
		return hit.Normal
	case ModeNormalColor:
		return normalColor(hit.Reflectance, hit.Normal, ray.Direction)
	case ModeDepth:
		return core.Splat(depthFalloff(hit.T, d.mode.Range))
	case ModeDepthNormalColor:
		c := normalColor(hit.Reflectance, hit.Normal, ray.Direction)
		if m := c.MaxComponent(); m > 0 {
			c = c.Divide(m)
		}
		return c.Multiply(depthFalloff(hit.T, d.mode.Range))
	default:
		return core.Vec3{}
	}
}

// normalColor is the reflectance scaled by how squarely the surface faces the viewer
func normalColor(reflectance, normal, direction core.Vec3) core.Vec3 {
	return reflectance.Multiply(math.Max(0, normal.Dot(direction.Negate())))
}

func depthFalloff(t, d float64) float64 {
	return math.Max(0, 1-t/d)
}
