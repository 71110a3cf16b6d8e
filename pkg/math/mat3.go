package math

// Mat3 is a 3x3 matrix in column-major order, matching the upper-left
// block of a Mat4.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// Ident3 returns the 3x3 identity.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Det returns the determinant.
func (m Mat3) Det() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Inverse returns the inverse and false if the matrix is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Det()
	if det == 0 {
		return Ident3(), false
	}
	inv := 1 / det

	// Adjugate (transposed cofactors), column-major.
	return Mat3{
		(m[4]*m[8] - m[7]*m[5]) * inv,
		(m[7]*m[2] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[4]*m[2]) * inv,

		(m[6]*m[5] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[6]*m[2]) * inv,
		(m[3]*m[2] - m[0]*m[5]) * inv,

		(m[3]*m[7] - m[6]*m[4]) * inv,
		(m[6]*m[1] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[3]*m[1]) * inv,
	}, true
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// NormalMatrix returns the inverse-transpose of the linear part of m,
// the matrix that keeps normals perpendicular to transformed surfaces.
// The bool is false when the linear part is singular.
func NormalMatrix(m Mat4) (Mat3, bool) {
	inv, ok := m.Mat3().Inverse()
	if !ok {
		return Ident3(), false
	}
	return inv.Transpose(), true
}
