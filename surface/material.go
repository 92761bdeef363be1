// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/insitu3d/insitu/gfx"
	"github.com/insitu3d/insitu/scene"
)

// MaterialComponent exposes its UI surface as a named virtual material
// in the resource store, for models and other resources that reference
// materials by name. The material is registered with the store exactly
// while the component is attached to a scene node.
type MaterialComponent struct {
	Component

	material *gfx.Material
}

// NewMaterialComponent returns a new [MaterialComponent] on the given
// device. The material itself is created lazily, by
// [MaterialComponent.SetVirtualMaterialName] or
// [MaterialComponent.ApplyAttributes].
func NewMaterialComponent(dev gfx.Device, name string, deps Deps) *MaterialComponent {
	return &MaterialComponent{Component: newComponent(dev, name, deps, GateInputFree)}
}

// SetNode attaches the component to the given node, or detaches it
// when nd is nil, updating the virtual material registration.
func (mc *MaterialComponent) SetNode(nd *scene.Node) {
	mc.node = nd
	mc.updateVirtualMaterial()
}

// Material returns the owned material, or nil if none has been
// created yet.
func (mc *MaterialComponent) Material() *gfx.Material {
	return mc.material
}

// SetVirtualMaterialName names the owned material, creating it first
// if needed. An existing resource of that name is reused rather than
// shadowed: removing a component and undoing that in an editor must
// not leave a model pointing at an orphaned material while a fresh one
// takes over the name. The reused material's diffuse texture is
// rebound to the owned texture.
func (mc *MaterialComponent) SetVirtualMaterialName(name string) {
	if mc.material != nil {
		// renaming: drop the registration under the old name,
		// updateVirtualMaterial re-registers under the new one
		if mc.Store != nil {
			mc.Store.RemoveVirtual(mc.material)
		}
	} else if existing, ok := mc.lookup(name); ok {
		mc.material = existing
		mc.material.SetTexture(gfx.UnitDiffuse, mc.Surface.Texture)
	} else {
		mc.material = mc.createMaterial()
	}
	mc.material.SetName(name)
	mc.updateVirtualMaterial()
}

// VirtualMaterialName returns the name of the owned material.
// Calling it before a material exists is a programming error and
// panics.
func (mc *MaterialComponent) VirtualMaterialName() string {
	if mc.material == nil {
		panic("surface.MaterialComponent: VirtualMaterialName called before material exists")
	}
	return mc.material.Name
}

// ApplyAttributes is the post-deserialization hook: it creates the
// material if attribute application did not, and updates the virtual
// registration.
func (mc *MaterialComponent) ApplyAttributes() {
	if mc.material == nil {
		mc.material = mc.createMaterial()
	}
	mc.updateVirtualMaterial()
}

func (mc *MaterialComponent) lookup(name string) (*gfx.Material, bool) {
	if mc.Store == nil {
		return nil, false
	}
	return mc.Store.Material(name)
}

func (mc *MaterialComponent) createMaterial() *gfx.Material {
	return gfx.NewMaterial(gfx.TechDiffuse).
		SetTexture(gfx.UnitDiffuse, mc.Surface.Texture)
}

// updateVirtualMaterial registers the material with the store iff the
// component is attached to a node.
func (mc *MaterialComponent) updateVirtualMaterial() {
	if mc.material == nil || mc.Store == nil {
		return
	}
	if mc.node != nil {
		mc.Store.AddVirtual(mc.material)
	} else {
		mc.Store.RemoveVirtual(mc.material)
	}
}
