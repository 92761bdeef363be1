// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/insitu3d/insitu/math32"

// Pose contains the position, rotation and scale of a node,
// along with the local and world matrices derived from them.
type Pose struct {
	// Pos is the position of the node relative to its parent.
	Pos math32.Vector3

	// Quat is the rotation of the node relative to its parent.
	Quat math32.Quat

	// Scale is the scale of the node relative to its parent.
	Scale math32.Vector3

	// Matrix is the local transform matrix, computed from Pos, Quat and Scale.
	Matrix math32.Matrix4

	// WorldMatrix is the full world transform matrix,
	// the product of all parent matrices and Matrix.
	WorldMatrix math32.Matrix4
}

// Defaults sets the pose to an un-rotated unit-scale pose at the origin.
func (ps *Pose) Defaults() {
	ps.Quat = math32.QuatIdentity()
	ps.Scale.SetScalar(1)
	ps.Matrix.SetIdentity()
	ps.WorldMatrix.SetIdentity()
}

// UpdateMatrix updates the local matrix from Pos, Quat and Scale.
func (ps *Pose) UpdateMatrix() {
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the local matrix and then the world matrix
// from the given parent world matrix, which can be nil for root nodes.
func (ps *Pose) UpdateWorldMatrix(parent *math32.Matrix4) {
	ps.UpdateMatrix()
	if parent == nil {
		ps.WorldMatrix = ps.Matrix
		return
	}
	ps.WorldMatrix = parent.Mul(&ps.Matrix)
}

// WorldPos returns the world-space position of the pose.
func (ps *Pose) WorldPos() math32.Vector3 {
	return ps.WorldMatrix.Pos()
}
