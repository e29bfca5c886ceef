package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Refractive indices
const (
	IORVacuum   = 1.0
	IORGlassBK7 = 1.5168
)

// Kind identifies the scattering model of a material
type Kind int

const (
	KindDiffuse Kind = iota // Lambertian reflection
	KindMirror              // Perfect specular reflection
	KindFresnel             // Dielectric reflection and refraction
)

func (k Kind) String() string {
	switch k {
	case KindDiffuse:
		return "diffuse"
	case KindMirror:
		return "mirror"
	case KindFresnel:
		return "fresnel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is a closed set of scattering models. It is a small value type:
// every primitive holds its own copy.
type Material struct {
	Kind Kind
	IOR  float64 // Index of refraction, used by KindFresnel only
}

// Diffuse returns a Lambertian material
func Diffuse() Material {
	return Material{Kind: KindDiffuse}
}

// Mirror returns a perfect specular reflector
func Mirror() Material {
	return Material{Kind: KindMirror}
}

// Fresnel returns a dielectric with the given index of refraction
func Fresnel(ior float64) Material {
	return Material{Kind: KindFresnel, IOR: ior}
}

func (m Material) String() string {
	if m.Kind == KindFresnel {
		return fmt.Sprintf("fresnel(%g)", m.IOR)
	}
	return m.Kind.String()
}

// HitRecord contains information about a ray-object intersection.
// Normal is unit length but not guaranteed to face the incoming ray.
type HitRecord struct {
	T           float64   // Parameter t along the ray
	Point       core.Vec3 // Point of intersection
	Normal      core.Vec3 // Geometric surface normal
	Reflectance core.Vec3 // Per-channel albedo of the surface
	Emission    core.Vec3 // Emitted radiance (Le)
	Material    Material  // Material of the hit object
}

// OrientNormal returns the hit normal flipped, if needed, to face against direction
func OrientNormal(normal, direction core.Vec3) core.Vec3 {
	if normal.Dot(direction.Negate()) > 0 {
		return normal
	}
	return normal.Negate()
}
