package material

import "github.com/df07/go-pathtracer/pkg/core"

// Reflect mirrors wi, the direction pointing away from the surface toward the
// viewer, about the normal n: r = 2(wi.n)n - wi
func Reflect(wi, n core.Vec3) core.Vec3 {
	return n.Multiply(2 * wi.Dot(n)).Subtract(wi)
}
