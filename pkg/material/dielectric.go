package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// scatterFresnel chooses between reflection and refraction with probability
// equal to the Schlick Fresnel term, so no weighting is applied afterwards.
func scatterFresnel(rayIn core.Ray, hit HitRecord, sampler core.Sampler) core.Vec3 {
	ior := hit.Material.IOR
	wi := rayIn.Direction.Negate()

	// Entering when the geometric normal faces the incoming ray
	into := wi.Dot(hit.Normal) > 0
	n := hit.Normal
	eta := ior
	if into {
		eta = 1.0 / ior
	} else {
		n = n.Negate()
	}

	refracted, ok := Refract(wi, n, eta)
	if !ok {
		// Total internal reflection
		return Reflect(wi, n)
	}

	// Schlick is evaluated with the cosine on the outer (vacuum) side
	cosine := wi.Dot(n)
	if !into {
		cosine = refracted.Dot(n.Negate())
	}

	if sampler.Get1D() < Reflectance(cosine, ior) {
		return Reflect(wi, n)
	}
	return refracted
}

// Refract bends wi (pointing away from the surface, on the side of n) through
// the interface with relative index eta = n_incident / n_transmitted.
// It reports false on total internal reflection.
func Refract(wi, n core.Vec3, eta float64) (core.Vec3, bool) {
	cosI := wi.Dot(n)
	discriminant := 1.0 - eta*eta*(1.0-cosI*cosI)
	if discriminant < 0 {
		return core.Vec3{}, false
	}
	cosT := math.Sqrt(discriminant)
	return n.Multiply(eta*cosI - cosT).Subtract(wi.Multiply(eta)), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, ior float64) float64 {
	r0 := (1 - ior) / (1 + ior)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
