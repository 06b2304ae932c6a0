package transform

import "math"

// Vec3 is a 3-component vector used for positions, Euler angles (radians) and scales.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Uniform returns (s, s, s).
func Uniform(s float64) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Quat is a unit quaternion (x, y, z, w).
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat is the rotation that leaves every vector unchanged.
var IdentityQuat = Quat{W: 1}

// QuatFromEuler converts Euler angles applied in XYZ order (intrinsic) to a quaternion.
func QuatFromEuler(e Vec3) Quat {
	c1, s1 := math.Cos(e.X/2), math.Sin(e.X/2)
	c2, s2 := math.Cos(e.Y/2), math.Sin(e.Y/2)
	c3, s3 := math.Cos(e.Z/2), math.Sin(e.Z/2)

	return Quat{
		X: s1*c2*c3 + c1*s2*s3,
		Y: c1*s2*c3 - s1*c2*s3,
		Z: c1*c2*s3 + s1*s2*c3,
		W: c1*c2*c3 - s1*s2*s3,
	}
}

// Mat4 is a 4x4 matrix stored column-major: element (row r, column c) is m[c*4+r].
// Translation lives in m[12], m[13], m[14].
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix translating by t.
func Translation(t Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// Scaling returns a matrix scaling each axis by s.
func Scaling(s Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s.X, s.Y, s.Z
	return m
}

// Rotation returns the rotation matrix of q. q is assumed normalized.
func Rotation(q Quat) Mat4 {
	return Compose(Vec3{}, q, Uniform(1))
}

// Mul returns a × b.
func Mul(a, b Mat4) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[0*4+r]*b[c*4+0] + a[1*4+r]*b[c*4+1] +
				a[2*4+r]*b[c*4+2] + a[3*4+r]*b[c*4+3]
		}
	}
	return m
}

// Compose builds the affine matrix T(position) · R(orientation) · S(scale) in closed form.
func Compose(position Vec3, orientation Quat, scale Vec3) Mat4 {
	x, y, z, w := orientation.X, orientation.Y, orientation.Z, orientation.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	sx, sy, sz := scale.X, scale.Y, scale.Z

	return Mat4{
		(1 - (yy + zz)) * sx, (xy + wz) * sx, (xz - wy) * sx, 0,
		(xy - wz) * sy, (1 - (xx + zz)) * sy, (yz + wx) * sy, 0,
		(xz + wy) * sz, (yz - wx) * sz, (1 - (xx + yy)) * sz, 0,
		position.X, position.Y, position.Z, 1,
	}
}

// ComposeEuler is Compose with the orientation given as XYZ Euler angles.
func ComposeEuler(position, rotation, scale Vec3) Mat4 {
	return Compose(position, QuatFromEuler(rotation), scale)
}

// Float32 narrows m to float32 in the same column-major order, for GPU-side consumers.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
