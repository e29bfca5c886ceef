package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseScattersIntoIncomingHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// The stored normal points away from the ray; scattering must still go back toward it
	for _, normal := range []core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)} {
		hit := HitRecord{Normal: normal, Material: Diffuse()}
		for i := 0; i < 1000; i++ {
			dir := Scatter(ray, hit, sampler)
			if dir.Z < -1e-12 {
				t.Fatalf("normal %v: scattered below the surface: %v", normal, dir)
			}
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit direction, got %v", dir)
			}
		}
	}
}

func TestOrientNormal(t *testing.T) {
	down := core.NewVec3(0, -1, 0)
	up := core.NewVec3(0, 1, 0)
	if got := OrientNormal(up, down); !got.Equals(up) {
		t.Errorf("Expected %v, got %v", up, got)
	}
	if got := OrientNormal(down, down); !got.Equals(up) {
		t.Errorf("Expected flipped normal %v, got %v", up, got)
	}
}

func TestMaterialString(t *testing.T) {
	tests := []struct {
		material Material
		expected string
	}{
		{Diffuse(), "diffuse"},
		{Mirror(), "mirror"},
		{Fresnel(IORGlassBK7), "fresnel(1.5168)"},
	}
	for _, tt := range tests {
		if got := tt.material.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}
