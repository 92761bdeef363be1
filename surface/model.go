// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/insitu3d/insitu/gfx"
	"github.com/insitu3d/insitu/scene"
)

// ModelComponent renders its UI surface through an anonymous material
// applied to the node's model. When the node has no model, attaching
// creates one with the canonical unit plane mesh, and detaching
// removes it again.
type ModelComponent struct {
	Component

	// Material is the anonymous material wrapping the surface
	// texture, applied to the node's model.
	Material *gfx.Material

	createdModel bool
}

// NewModelComponent returns a new [ModelComponent] on the given
// device, with its material bound to the surface texture.
func NewModelComponent(dev gfx.Device, name string, deps Deps) *ModelComponent {
	mc := &ModelComponent{Component: newComponent(dev, name, deps, GateEnabled)}
	mc.Material = gfx.NewMaterial(gfx.TechDiffuse).
		SetTexture(gfx.UnitDiffuse, mc.Surface.Texture)
	return mc
}

// SetNode attaches the component to the given node, or detaches it
// when nd is nil.
func (mc *ModelComponent) SetNode(nd *scene.Node) {
	if nd != nil {
		mc.node = nd
		model := nd.Model()
		if model == nil {
			model = scene.NewModel(scene.NewPlaneMesh(mc.Surface.Texture.Name))
			nd.SetDrawable(model)
			mc.createdModel = true
		}
		model.SetMaterial(mc.Material)
		return
	}
	if mc.node != nil && mc.createdModel {
		mc.node.SetDrawable(nil)
		mc.createdModel = false
	}
	mc.node = nil
}
