package core

// Ray represents a ray with an origin and direction.
// Direction is conventionally unit length but this is not enforced.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Interval is an open range (Min, Max) of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Surrounds reports whether t lies strictly inside the interval
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}
