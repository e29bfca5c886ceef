package core

// TangentSpace is an orthonormal basis {U, V, N} built around a unit normal
type TangentSpace struct {
	U, V, N Vec3
}

// NewTangentSpace builds the tangent vectors for unit normal n with the
// branch-free construction of Duff et al. sign(0) is taken as +1 so that
// normals in the XY plane do not divide by zero.
func NewTangentSpace(n Vec3) TangentSpace {
	s := 1.0
	if n.Z < 0 {
		s = -1.0
	}
	a := -1.0 / (s + n.Z)
	b := n.X * n.Y * a

	return TangentSpace{
		U: NewVec3(1.0+s*n.X*n.X*a, s*b, -s*n.X),
		V: NewVec3(b, s+n.Y*n.Y*a, -n.Y),
		N: n,
	}
}

// ToWorld transforms a direction expressed in (u, v, n) coordinates to world space
func (ts TangentSpace) ToWorld(local Vec3) Vec3 {
	return ts.U.Multiply(local.X).Add(ts.V.Multiply(local.Y)).Add(ts.N.Multiply(local.Z))
}
