package material

import "github.com/df07/go-pathtracer/pkg/core"

// scatterDiffuse draws a cosine-weighted direction around the oriented normal.
// The cos/pi term of the Lambertian BRDF cancels against the sampling PDF.
func scatterDiffuse(n core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(n, sampler.Get2D())
}
