package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestFresnelBasicBehavior(t *testing.T) {
	glass := Fresnel(1.5)

	// 45-degree ray entering the top face of a slab
	rayDirection := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 1, 0), rayDirection)
	hit := HitRecord{
		T:        math.Sqrt2,
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: glass,
	}

	expectedReflect := core.NewVec3(1, 1, 0).Normalize()
	sinT := math.Sin(math.Pi/4) / 1.5
	expectedRefract := core.NewVec3(sinT, -math.Sqrt(1-sinT*sinT), 0)

	reflections := 0
	const n = 4000
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < n; i++ {
		dir := Scatter(ray, hit, sampler)
		switch {
		case dir.Subtract(expectedReflect).Length() < 1e-9:
			reflections++
		case dir.Subtract(expectedRefract).Length() < 1e-9:
		default:
			t.Fatalf("Direction %v is neither the reflection nor the refraction", dir)
		}
	}

	// Schlick at 45 degrees for n=1.5 is about 0.042
	expected := Reflectance(math.Cos(math.Pi/4), 1.5)
	if frac := float64(reflections) / n; math.Abs(frac-expected) > 0.015 {
		t.Errorf("Reflection fraction %.3f, expected ~%.3f", frac, expected)
	}
}

func TestFresnelTotalInternalReflection(t *testing.T) {
	glass := Fresnel(1.5)

	// Shallow ray leaving glass through a face whose outward normal points down
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, -1, 0),
		Material: glass,
	}

	for i := 0; i < 10; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		dir := Scatter(ray, hit, sampler)

		if dir.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %v", dir)
		}
		if math.Abs(dir.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f, got %.6f", rayDirection.X, dir.X)
		}
	}
}

func TestRefract(t *testing.T) {
	n := core.NewVec3(0, 1, 0)

	t.Run("normal incidence passes straight through", func(t *testing.T) {
		dir, ok := Refract(n, n, 1/1.5)
		if !ok {
			t.Fatal("Expected refraction")
		}
		if dir.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-12 {
			t.Errorf("Expected (0, -1, 0), got %v", dir)
		}
	})

	t.Run("unit length and snell", func(t *testing.T) {
		wi := core.NewVec3(-0.6, 0.8, 0)
		dir, ok := Refract(wi, n, 1/1.33)
		if !ok {
			t.Fatal("Expected refraction")
		}
		if math.Abs(dir.Length()-1) > 1e-12 {
			t.Errorf("Refracted direction should be unit length, got %f", dir.Length())
		}
		if math.Abs(dir.X-0.6/1.33) > 1e-12 {
			t.Errorf("Snell's law violated: sinT %f, expected %f", dir.X, 0.6/1.33)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		wi := core.NewVec3(0.9, math.Sqrt(1-0.81), 0)
		if _, ok := Refract(wi, n, 1.5); ok {
			t.Error("Expected total internal reflection")
		}
	})
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence - ((1-n)/(1+n))^2
	r0 := Reflectance(1.0, 1.5)
	if math.Abs(r0-0.04) > 1e-12 {
		t.Errorf("Normal incidence reflectance = %.4f, expected 0.04", r0)
	}

	// Grazing incidence - total reflection
	if r90 := Reflectance(0.0, 1.5); math.Abs(r90-1) > 1e-12 {
		t.Errorf("Grazing incidence reflectance = %.3f, expected 1", r90)
	}

	// Same R0 whether expressed as n or 1/n
	if math.Abs(Reflectance(0.5, 1.5)-Reflectance(0.5, 1/1.5)) > 1e-12 {
		t.Error("Reflectance should be symmetric in n and 1/n")
	}

	if r45 := Reflectance(math.Cos(math.Pi/4), 1.5); r45 <= r0 || r45 >= 1 {
		t.Errorf("Reflectance should increase with angle, got R(45)=%.3f", r45)
	}
}
