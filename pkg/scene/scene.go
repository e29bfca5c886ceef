package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene holds every primitive, grouped by kind. Intersection is a brute force
// scan; each primitive is tested independently and the results are reduced
// with Nearest.
type Scene struct {
	Spheres  []geometry.Sphere
	Planes   []geometry.Plane
	Polygons []geometry.Polygon
	Shapes   []geometry.Shape // Any other primitive
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// Add files each shape into its typed collection
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		switch v := shape.(type) {
		case geometry.Sphere:
			s.Spheres = append(s.Spheres, v)
		case geometry.Plane:
			s.Planes = append(s.Planes, v)
		case geometry.Polygon:
			s.Polygons = append(s.Polygons, v)
		default:
			s.Shapes = append(s.Shapes, shape)
		}
	}
}

// AddPolygons appends a batch of polygons, typically a loaded mesh
func (s *Scene) AddPolygons(polygons ...geometry.Polygon) {
	s.Polygons = append(s.Polygons, polygons...)
}

// Len returns the number of primitives in the scene
func (s *Scene) Len() int {
	return len(s.Spheres) + len(s.Planes) + len(s.Polygons) + len(s.Shapes)
}

func (s *Scene) String() string {
	return fmt.Sprintf("%d spheres, %d planes, %d polygons, %d other", len(s.Spheres), len(s.Planes), len(s.Polygons), len(s.Shapes))
}

// Intersection is an optional hit
type Intersection struct {
	Record material.HitRecord
	Found  bool
}

// Nearest combines two intersections, keeping the smaller t.
// It is associative and commutative up to ties, with the empty Intersection as identity.
func Nearest(a, b Intersection) Intersection {
	if !a.Found {
		return b
	}
	if !b.Found {
		return a
	}
	if b.Record.T < a.Record.T {
		return b
	}
	return a
}

func intersect(shape geometry.Shape, ray core.Ray, interval core.Interval) Intersection {
	record, ok := shape.Hit(ray, interval)
	return Intersection{Record: record, Found: ok}
}

// Hit returns the nearest intersection of ray with any primitive within interval
func (s *Scene) Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	best := Intersection{}
	for i := range s.Spheres {
		best = Nearest(best, intersect(s.Spheres[i], ray, interval))
	}
	for i := range s.Planes {
		best = Nearest(best, intersect(s.Planes[i], ray, interval))
	}
	for i := range s.Polygons {
		best = Nearest(best, intersect(s.Polygons[i], ray, interval))
	}
	for _, shape := range s.Shapes {
		best = Nearest(best, intersect(shape, ray, interval))
	}
	return best.Record, best.Found
}
