package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultInterval bounds t for every primary and secondary ray. The near
// epsilon keeps a bounce from re-hitting the surface it left.
var DefaultInterval = core.NewInterval(1e-4, 1e10)

// Camera is a pinhole camera. It is immutable after construction.
type Camera struct {
	position core.Vec3
	focus    core.Vec3
	upside   core.Vec3

	// Orthonormal viewing basis: we points backwards from the focus,
	// ue to the right and ve up.
	we, ue, ve core.Vec3

	fov      float64 // Vertical field of view in radians
	interval core.Interval
}

// NewCamera creates a camera at position looking at focus.
// fovDegrees is the vertical field of view.
func NewCamera(position, focus, upside core.Vec3, fovDegrees float64) *Camera {
	we := position.Subtract(focus).Normalize()
	ue := upside.Cross(we).Normalize()
	ve := we.Cross(ue)

	return &Camera{
		position: position,
		focus:    focus,
		upside:   upside,
		we:       we,
		ue:       ue,
		ve:       ve,
		fov:      fovDegrees * math.Pi / 180.0,
		interval: DefaultInterval,
	}
}

// CreateRay maps a continuous pixel position on a w x h sensor to a world ray.
// y grows upwards, so callers pass h - row for image rows.
func (c *Camera) CreateRay(w, h, x, y float64) core.Ray {
	tf := math.Tan(c.fov / 2)
	rpx := 2*x/w - 1
	rpy := 2*y/h - 1
	aspect := w / h

	local := core.NewVec3(aspect*tf*rpx, tf*rpy, -1).Normalize()
	direction := c.ue.Multiply(local.X).
		Add(c.ve.Multiply(local.Y)).
		Add(c.we.Multiply(local.Z))

	return core.NewRay(c.position, direction)
}

// Position returns the eye point
func (c *Camera) Position() core.Vec3 { return c.position }

// Focus returns the point the camera looks at
func (c *Camera) Focus() core.Vec3 { return c.focus }

// Upside returns the up hint the basis was built from
func (c *Camera) Upside() core.Vec3 { return c.upside }

// Basis returns the view, right and up axes
func (c *Camera) Basis() (we, ue, ve core.Vec3) { return c.we, c.ue, c.ve }

// FOV returns the vertical field of view in radians
func (c *Camera) FOV() float64 { return c.fov }

// Interval returns the valid range of t for rays from this camera
func (c *Camera) Interval() core.Interval { return c.interval }

// Valid reports whether the basis is well defined: the camera must not sit on
// its focus and the up hint must not be parallel to the view direction.
func (c *Camera) Valid() bool {
	return !c.we.IsZero() && !c.ue.IsZero() && c.fov > 0 && c.fov < math.Pi
}
