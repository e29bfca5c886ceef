package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMirrorPerfectReflection(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	expected := core.NewVec3(0, -1, 1).Normalize()

	tests := []struct {
		name   string
		normal core.Vec3
	}{
		{"front face", core.NewVec3(0, 0, 1)},
		{"back face normal is oriented first", core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{Normal: tt.normal, Material: Mirror()}
			actual := Scatter(rayIn, hit, sampler)
			if actual.Subtract(expected).Length() > 1e-10 {
				t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	wi := core.NewVec3(-1, 1, 0).Normalize()
	got := Reflect(wi, core.NewVec3(0, 1, 0))
	if got.Subtract(core.NewVec3(1, 1, 0).Normalize()).Length() > 1e-12 {
		t.Errorf("Expected (0.707, 0.707, 0), got %v", got)
	}
}
