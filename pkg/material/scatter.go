package material

import "github.com/df07/go-pathtracer/pkg/core"

// Scatter samples the outgoing direction for a ray arriving at hit.
// Throughput weighting is left to the caller: every model here is importance
// sampled so the sample weight is exactly the surface reflectance.
func Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) core.Vec3 {
	switch hit.Material.Kind {
	case KindMirror:
		n := OrientNormal(hit.Normal, rayIn.Direction)
		return Reflect(rayIn.Direction.Negate(), n)
	case KindFresnel:
		return scatterFresnel(rayIn, hit, sampler)
	default:
		n := OrientNormal(hit.Normal, rayIn.Direction)
		return scatterDiffuse(n, sampler)
	}
}
