// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/insitu3d/insitu/math32"

// Camera determines the view onto a scene: its position and look
// direction, and the perspective projection parameters.
type Camera struct {
	// Pos is the position of the camera.
	Pos math32.Vector3

	// Target is the location the camera is pointing at.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near plane z coordinate.
	Near float32

	// Far is the far plane z coordinate.
	Far float32

	// ViewMatrix is the world-to-camera matrix, updated by [Camera.UpdateMatrix].
	ViewMatrix math32.Matrix4

	// PrjnMatrix is the projection matrix, updated by [Camera.UpdateMatrix].
	PrjnMatrix math32.Matrix4

	// InvPrjnViewMatrix is the inverse of PrjnMatrix * ViewMatrix,
	// used to unproject screen coordinates.
	InvPrjnViewMatrix math32.Matrix4
}

// NewCamera returns a new [Camera] with default parameters,
// positioned at (0, 0, 10) looking at the origin, with matrices updated.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	cm.UpdateMatrix()
	return cm
}

// Defaults sets default camera parameters.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = 0.01
	cm.Far = 1000
	cm.Pos = math32.Vec3(0, 0, 10)
	cm.Target = math32.Vector3{}
	cm.UpDir = math32.Vec3(0, 1, 0)
}

// LookAt positions the camera at pos looking at target and updates
// the matrices.
func (cm *Camera) LookAt(pos, target math32.Vector3) *Camera {
	cm.Pos = pos
	cm.Target = target
	cm.UpdateMatrix()
	return cm
}

// UpdateMatrix updates the view, projection and inverse matrices from
// the current camera parameters. Call after changing any of them.
func (cm *Camera) UpdateMatrix() {
	cm.ViewMatrix.SetLookAt(cm.Pos, cm.Target, cm.UpDir)
	cm.PrjnMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	pv := cm.PrjnMatrix.Mul(&cm.ViewMatrix)
	cm.InvPrjnViewMatrix = pv.Inverse()
}

// ScreenRay returns the world-space ray from the camera through the
// screen position given as fractions of the viewport width and height,
// each in [0, 1], with y increasing downward.
func (cm *Camera) ScreenRay(fx, fy float32) math32.Ray {
	ndcx := 2*fx - 1
	ndcy := 1 - 2*fy
	near := cm.InvPrjnViewMatrix.MulVector4(math32.Vec4(ndcx, ndcy, -1, 1)).ToVector3()
	far := cm.InvPrjnViewMatrix.MulVector4(math32.Vec4(ndcx, ndcy, 1, 1)).ToVector3()
	return math32.NewRay(near, far.Sub(near))
}
