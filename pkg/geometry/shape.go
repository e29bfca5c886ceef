package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with t strictly inside interval.
type Shape interface {
	Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool)
}

// Surface holds the shading properties every primitive carries
type Surface struct {
	Material    material.Material
	Reflectance core.Vec3 // Per-channel albedo, may exceed 1
	Emission    core.Vec3 // Emitted radiance, zero for non-emitters
}

// NewSurface creates a surface description
func NewSurface(m material.Material, reflectance, emission core.Vec3) Surface {
	return Surface{Material: m, Reflectance: reflectance, Emission: emission}
}

// record builds a hit record carrying this surface's properties
func (s Surface) record(t float64, point, normal core.Vec3) material.HitRecord {
	return material.HitRecord{
		T:           t,
		Point:       point,
		Normal:      normal,
		Reflectance: s.Reflectance,
		Emission:    s.Emission,
		Material:    s.Material,
	}
}
