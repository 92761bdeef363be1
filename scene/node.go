// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/insitu3d/insitu/math32"

// Node is an element of the scene tree. It has a [Pose] transform that
// applies to itself and everything under it, and can carry at most one
// [Drawable].
type Node struct {
	// Name is the user-visible name of the node.
	Name string

	// Pose is the transform of the node relative to its parent.
	Pose Pose

	// Scene is the scene this node belongs to.
	Scene *Scene

	// Parent is the parent node; nil for the scene root.
	Parent *Node

	// Children are the child nodes, in addition order.
	Children []*Node

	// Drawable is the drawable attached to this node, if any.
	Drawable Drawable
}

// NewChild adds and returns a new child node with the given name.
func (nd *Node) NewChild(name string) *Node {
	child := &Node{Name: name, Scene: nd.Scene, Parent: nd}
	child.Pose.Defaults()
	nd.Children = append(nd.Children, child)
	return child
}

// SetDrawable attaches the given drawable to this node, detaching any
// previous one. A nil drawable detaches.
func (nd *Node) SetDrawable(d Drawable) {
	if nd.Drawable != nil {
		nd.Drawable.AsDrawableBase().Node = nil
	}
	nd.Drawable = d
	if d != nil {
		d.AsDrawableBase().Node = nd
	}
}

// Model returns the [Model] attached to this node, or nil if the node
// has no drawable or a drawable of another type.
func (nd *Node) Model() *Model {
	md, _ := nd.Drawable.(*Model)
	return md
}

// WalkDown calls the given function on this node and all nodes below it,
// in depth-first order. The walk of a branch stops when the function
// returns false.
func (nd *Node) WalkDown(fn func(*Node) bool) {
	if !fn(nd) {
		return
	}
	for _, child := range nd.Children {
		child.WalkDown(fn)
	}
}

// UpdateWorldMatrix updates the world matrices of this node and
// everything below it.
func (nd *Node) UpdateWorldMatrix(parent *math32.Matrix4) {
	nd.Pose.UpdateWorldMatrix(parent)
	for _, child := range nd.Children {
		child.UpdateWorldMatrix(&nd.Pose.WorldMatrix)
	}
}
