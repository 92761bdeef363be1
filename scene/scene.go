// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the minimal scene graph that insitu surfaces
// live in: a node tree with poses, drawables with triangle-precision
// raycasting, cameras, viewports, and a spatial index for picking.
package scene

// Scene is the root of a scene tree. The root node's pose is the
// identity transform.
type Scene struct {
	Node

	// Index is the spatial index used for picking, or nil if the scene
	// has none. A scene without an index cannot be picked against.
	Index *Index
}

// NewScene returns a new [Scene] with the given name.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.Name = name
	sc.Pose.Defaults()
	sc.Node.Scene = sc
	return sc
}

// Update updates the world matrices of all nodes in the scene.
// Call after changing node poses and before picking.
func (sc *Scene) Update() {
	sc.Node.UpdateWorldMatrix(nil)
}
