// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

// Matrix4 is a 4x4 matrix stored in column-major order,
// as used by standard graphics APIs.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{}
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[15] = 1
}

// Mul returns this matrix multiplied by the other given matrix (m * other).
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	var out Matrix4
	out.MulMatrices(m, other)
	return out
}

// MulMatrices sets this matrix to a * b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	*m = out
}

// MulVector4 returns the given [Vector4] multiplied by this matrix.
func (m *Matrix4) MulVector4(v Vector4) Vector4 {
	return Vec4(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12]*v.W,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13]*v.W,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14]*v.W,
		m[3]*v.X+m[7]*v.Y+m[11]*v.Z+m[15]*v.W,
	)
}

// SetTranslation sets this matrix to a pure translation matrix.
func (m *Matrix4) SetTranslation(v Vector3) {
	m.SetIdentity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

// Pos returns the translation component of this matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// SetTransform sets this matrix to the composed transform of the given
// position, rotation and scale.
func (m *Matrix4) SetTransform(pos Vector3, rot Quat, scale Vector3) {
	m.SetRotationFromQuat(rot)
	m[0] *= scale.X
	m[1] *= scale.X
	m[2] *= scale.X
	m[4] *= scale.Y
	m[5] *= scale.Y
	m[6] *= scale.Y
	m[8] *= scale.Z
	m[9] *= scale.Z
	m[10] *= scale.Z
	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
}

// SetRotationFromQuat sets the rotation component of this matrix from the
// given quaternion, resetting translation and scale.
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	xx := q.X * x2
	xy := q.X * y2
	xz := q.X * z2
	yy := q.Y * y2
	yz := q.Y * z2
	zz := q.Z * z2
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2

	m.SetIdentity()
	m[0] = 1 - (yy + zz)
	m[4] = xy - wz
	m[8] = xz + wy
	m[1] = xy + wz
	m[5] = 1 - (xx + zz)
	m[9] = yz - wx
	m[2] = xz - wy
	m[6] = yz + wx
	m[10] = 1 - (xx + yy)
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the given vertical field of view in degrees, aspect ratio
// (width / height), and near and far plane distances.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)/2)
	rd := 1 / (near - far)
	*m = Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = (near + far) * rd
	m[11] = -1
	m[14] = 2 * near * far * rd
}

// SetLookAt sets this matrix to a view matrix for a camera at the given
// eye position looking at the given target, with the given up direction.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	z := eye.Sub(target).Normal()
	if z.LengthSquared() == 0 { // eye and target are coincident
		z.Z = 1
	}
	x := up.Cross(z).Normal()
	if x.LengthSquared() == 0 { // up is parallel to view direction
		z.X += 0.0001
		z = z.Normal()
		x = up.Cross(z).Normal()
	}
	y := z.Cross(x)

	m.SetIdentity()
	m[0] = x.X
	m[4] = x.Y
	m[8] = x.Z
	m[1] = y.X
	m[5] = y.Y
	m[9] = y.Z
	m[2] = z.X
	m[6] = z.Y
	m[10] = z.Z
	m[12] = -x.Dot(eye)
	m[13] = -y.Dot(eye)
	m[14] = -z.Dot(eye)
}

// SetInverse sets this matrix to the inverse of the given matrix,
// returning an error and setting the identity if it is not invertible.
func (m *Matrix4) SetInverse(src *Matrix4) error {
	n11, n12, n13, n14 := src[0], src[4], src[8], src[12]
	n21, n22, n23, n24 := src[1], src[5], src[9], src[13]
	n31, n32, n33, n34 := src[2], src[6], src[10], src[14]
	n41, n42, n43, n44 := src[3], src[7], src[11], src[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		m.SetIdentity()
		return errors.New("math32.Matrix4: cannot invert matrix with determinant of 0")
	}
	d := 1 / det

	m[0] = t11 * d
	m[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * d
	m[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * d
	m[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * d
	m[4] = t12 * d
	m[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * d
	m[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * d
	m[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * d
	m[8] = t13 * d
	m[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * d
	m[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * d
	m[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * d
	m[12] = t14 * d
	m[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * d
	m[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * d
	m[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * d
	return nil
}

// Inverse returns the inverse of this matrix.
// The identity is returned if the matrix cannot be inverted.
func (m *Matrix4) Inverse() Matrix4 {
	var out Matrix4
	out.SetInverse(m)
	return out
}
