package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Surface
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface Surface) Sphere {
	return Sphere{
		Center:  center,
		Radius:  radius,
		Surface: surface,
	}
}

// Hit tests if a ray intersects with the sphere.
// The near root is preferred; the far root is only used when the near one
// falls outside the interval, which is the case for rays starting inside.
func (s Sphere) Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	op := s.Center.Subtract(ray.Origin)
	b := op.Dot(ray.Direction)
	discriminant := b*b - op.Dot(op) + s.Radius*s.Radius

	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t := b - sqrtD
	if !interval.Surrounds(t) {
		t = b + sqrtD
		if !interval.Surrounds(t) {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Divide(s.Radius)
	return s.record(t, point, normal), true
}
