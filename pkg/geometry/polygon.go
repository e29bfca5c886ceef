package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Polygon represents a single triangle defined by three vertices
type Polygon struct {
	A, B, C core.Vec3
	Surface
}

// NewPolygon creates a new triangle from three vertices
func NewPolygon(a, b, c core.Vec3, surface Surface) Polygon {
	return Polygon{A: a, B: b, C: c, Surface: surface}
}

// NewQuad returns the two triangles spanning corner, corner+u, corner+u+v and corner+v
func NewQuad(corner, u, v core.Vec3, surface Surface) [2]Polygon {
	p1 := corner.Add(u)
	p2 := p1.Add(v)
	p3 := corner.Add(v)
	return [2]Polygon{
		NewPolygon(corner, p1, p2, surface),
		NewPolygon(corner, p2, p3, surface),
	}
}

// Hit intersects the supporting plane through A, then keeps the point only
// if it lies on the inner side of all three edges.
func (p Polygon) Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	normal := p.B.Subtract(p.A).Cross(p.C.Subtract(p.A))
	if normal.IsZero() {
		return material.HitRecord{}, false
	}

	t, ok := intersectPlane(ray, p.A, normal, interval)
	if !ok {
		return material.HitRecord{}, false
	}

	point := ray.At(t)
	if !p.contains(point, normal) {
		return material.HitRecord{}, false
	}
	return p.record(t, point, normal.Normalize()), true
}

// contains reports whether a point on the triangle's plane is strictly inside it.
// Each edge cross product must point along the face normal; a point on an edge
// gives a zero cross product and is rejected.
func (p Polygon) contains(point, normal core.Vec3) bool {
	edges := [3]core.Vec3{
		p.A.Subtract(p.C).Cross(point.Subtract(p.A)),
		p.B.Subtract(p.A).Cross(point.Subtract(p.B)),
		p.C.Subtract(p.B).Cross(point.Subtract(p.C)),
	}
	for _, e := range edges {
		if e.Dot(normal) <= 0 {
			return false
		}
	}
	return true
}

// Normal returns the unit face normal, zero for a degenerate triangle
func (p Polygon) Normal() core.Vec3 {
	return p.B.Subtract(p.A).Cross(p.C.Subtract(p.A)).Normalize()
}
