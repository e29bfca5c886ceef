package scene

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var testInterval = core.NewInterval(1e-4, 1e10)

func gray() geometry.Surface {
	return geometry.NewSurface(material.Diffuse(), core.Splat(0.5), core.Vec3{})
}

// fixedShape reports a hit at a fixed distance for every ray
type fixedShape struct {
	t float64
}

func (f fixedShape) Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	if !interval.Surrounds(f.t) {
		return material.HitRecord{}, false
	}
	return material.HitRecord{T: f.t, Point: ray.At(f.t)}, true
}

func TestSceneHitNearest(t *testing.T) {
	// Three primitives of different kinds along -z at t = 3, 1 and 7
	s := New()
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1), gray()),
		geometry.NewSphere(core.NewVec3(0, 0, -2), 1, gray()),
		geometry.NewPolygon(core.NewVec3(-1, -1, -7), core.NewVec3(1, -1, -7), core.NewVec3(0, 1, -7), gray()),
	)

	hit, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), testInterval)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.T != 1 {
		t.Errorf("Expected nearest t = 1, got %g", hit.T)
	}
}

func TestSceneHitOrderIndependent(t *testing.T) {
	orders := [][]float64{{3, 1, 7}, {7, 3, 1}, {1, 7, 3}}
	for _, order := range orders {
		s := New()
		for _, tv := range order {
			s.Add(fixedShape{t: tv})
		}
		hit, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), testInterval)
		if !ok || hit.T != 1 {
			t.Errorf("Order %v: expected t = 1, got %g (hit %v)", order, hit.T, ok)
		}
	}
}

func TestSceneHitRespectsInterval(t *testing.T) {
	s := New()
	s.Add(fixedShape{t: 3}, fixedShape{t: 1}, fixedShape{t: 7})

	hit, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), core.NewInterval(2, 5))
	if !ok || hit.T != 3 {
		t.Errorf("Expected t = 3 inside (2, 5), got %g (hit %v)", hit.T, ok)
	}
	if _, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), core.NewInterval(8, 9)); ok {
		t.Error("Expected no hit inside (8, 9)")
	}
}

func TestSceneEmpty(t *testing.T) {
	if _, ok := New().Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), testInterval); ok {
		t.Error("Expected no hit in an empty scene")
	}
}

func TestNearest(t *testing.T) {
	none := Intersection{}
	near := Intersection{Record: material.HitRecord{T: 1}, Found: true}
	far := Intersection{Record: material.HitRecord{T: 5}, Found: true}

	tests := []struct {
		name     string
		a, b     Intersection
		expected Intersection
	}{
		{"both empty", none, none, none},
		{"identity left", none, near, near},
		{"identity right", far, none, far},
		{"near first", near, far, near},
		{"near second", far, near, near},
	}
	for _, tt := range tests {
		if got := Nearest(tt.a, tt.b); got != tt.expected {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.expected, got)
		}
	}

	// Associativity
	if Nearest(Nearest(far, near), none) != Nearest(far, Nearest(near, none)) {
		t.Error("Expected Nearest to be associative")
	}
}

func TestSceneAddSortsByKind(t *testing.T) {
	s := New()
	quad := geometry.NewQuad(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), gray())
	s.Add(
		geometry.NewSphere(core.Vec3{}, 1, gray()),
		geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), gray()),
		quad[0], quad[1],
		fixedShape{t: 2},
	)
	if len(s.Spheres) != 1 || len(s.Planes) != 1 || len(s.Polygons) != 2 || len(s.Shapes) != 1 {
		t.Errorf("Unexpected collections: %v", s)
	}
	if s.Len() != 5 {
		t.Errorf("Expected 5 primitives, got %d", s.Len())
	}
}
