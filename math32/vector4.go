// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4 is a vector or point in homogeneous coordinates with
// X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// ToVector3 returns the X, Y and Z components as a [Vector3],
// dividing by W when it is non-zero.
func (v Vector4) ToVector3() Vector3 {
	if v.W != 0 && v.W != 1 {
		return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
	}
	return Vec3(v.X, v.Y, v.Z)
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
