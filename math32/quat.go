// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/chewxy/math32"

// Quat is a quaternion representing a 3D rotation.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// QuatIdentity returns a new identity (no rotation) quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// IsIdentity returns whether this is the identity quaternion.
func (q Quat) IsIdentity() bool {
	return q == Quat{W: 1}
}

// SetFromAxisAngle sets this quaternion from a rotation of the given
// angle in radians around the given normalized axis.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	half := angle / 2
	s := math32.Sin(half)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = math32.Cos(half)
}

// Mul returns this quaternion multiplied by the other given quaternion,
// composing the two rotations.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}
