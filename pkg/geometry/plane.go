package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal, zero for a degenerate plane
	Surface
}

// NewPlane creates a new plane. A zero normal yields a plane that is never hit.
func NewPlane(point, normal core.Vec3, surface Surface) Plane {
	return Plane{
		Point:   point,
		Normal:  normal.Normalize(),
		Surface: surface,
	}
}

// Hit tests if a ray intersects with the plane. The reported normal is not
// flipped toward the ray.
func (p Plane) Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	t, ok := intersectPlane(ray, p.Point, p.Normal, interval)
	if !ok {
		return material.HitRecord{}, false
	}
	return p.record(t, ray.At(t), p.Normal), true
}

// intersectPlane solves n.(o + t*d - point) = 0 for t inside interval.
// A ray exactly parallel to the plane never hits it.
func intersectPlane(ray core.Ray, point, normal core.Vec3, interval core.Interval) (float64, bool) {
	nd := normal.Dot(ray.Direction)
	if nd == 0 {
		return 0, false
	}

	t := normal.Dot(point.Subtract(ray.Origin)) / nd
	if !interval.Surrounds(t) {
		return 0, false
	}
	return t, true
}
