// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insitu3d/insitu/gfx"
	"github.com/insitu3d/insitu/scene"
)

func newMaterialComponent(st *gfx.Store) *MaterialComponent {
	return NewMaterialComponent(gfx.MemDevice{}, "screen", Deps{Store: st})
}

func TestVirtualMaterialNaming(t *testing.T) {
	st := gfx.NewStore()
	mc := newMaterialComponent(st)
	require.Nil(t, mc.Material())

	mc.SetVirtualMaterialName("hud")
	mt := mc.Material()
	require.NotNil(t, mt)
	assert.Equal(t, "hud", mc.VirtualMaterialName())
	assert.Same(t, mc.Surface.Texture, mt.Texture(gfx.UnitDiffuse), "bound to the surface texture")

	// detached: named but not registered
	_, ok := st.Material("hud")
	assert.False(t, ok)
}

func TestVirtualMaterialRegisteredWhileAttached(t *testing.T) {
	st := gfx.NewStore()
	mc := newMaterialComponent(st)
	mc.SetVirtualMaterialName("hud")

	sc := scene.NewScene("level")
	nd := sc.NewChild("screen")

	mc.SetNode(nd)
	got, ok := st.Material("hud")
	require.True(t, ok)
	assert.Same(t, mc.Material(), got)
	assert.True(t, st.IsVirtual("hud"))

	mc.SetNode(nil)
	_, ok = st.Material("hud")
	assert.False(t, ok, "detaching unregisters")

	// naming while already attached registers immediately
	mc.SetNode(nd)
	mc.SetVirtualMaterialName("console")
	_, ok = st.Material("console")
	assert.True(t, ok)
}

func TestVirtualMaterialRename(t *testing.T) {
	st := gfx.NewStore()
	mc := newMaterialComponent(st)
	sc := scene.NewScene("level")
	mc.SetNode(sc.NewChild("screen"))

	mc.SetVirtualMaterialName("hud")
	mc.SetVirtualMaterialName("console")

	_, ok := st.Material("hud")
	assert.False(t, ok, "old name released")
	got, ok := st.Material("console")
	require.True(t, ok)
	assert.Same(t, mc.Material(), got)
	assert.Equal(t, "console", mc.VirtualMaterialName())
}

func TestVirtualMaterialReusesExisting(t *testing.T) {
	st := gfx.NewStore()
	existing := gfx.NewMaterial(gfx.TechDiffuse).SetName("hud")
	st.Add(existing)

	mc := newMaterialComponent(st)
	mc.SetVirtualMaterialName("hud")

	assert.Same(t, existing, mc.Material(), "existing resource adopted, not shadowed")
	assert.Same(t, mc.Surface.Texture, existing.Texture(gfx.UnitDiffuse), "diffuse rebound to the surface")
}

func TestVirtualMaterialNamePanicsWithoutMaterial(t *testing.T) {
	mc := newMaterialComponent(gfx.NewStore())
	assert.Panics(t, func() { mc.VirtualMaterialName() })
}

func TestApplyAttributesCreatesMaterial(t *testing.T) {
	st := gfx.NewStore()
	mc := newMaterialComponent(st)
	sc := scene.NewScene("level")
	mc.SetNode(sc.NewChild("screen"))

	mc.ApplyAttributes()
	mt := mc.Material()
	require.NotNil(t, mt)
	assert.Same(t, mc.Surface.Texture, mt.Texture(gfx.UnitDiffuse))
	assert.Equal(t, "", mt.Name, "anonymous until named")
	assert.False(t, st.IsVirtual(""), "anonymous materials are not registered")

	// a second application keeps the same material
	mc.ApplyAttributes()
	assert.Same(t, mt, mc.Material())
}

func TestModelComponentCreatesAndRemovesModel(t *testing.T) {
	sc := scene.NewScene("level")
	nd := sc.NewChild("screen")
	co := NewModelComponent(gfx.MemDevice{}, "screen", Deps{})

	co.SetNode(nd)
	model := nd.Model()
	require.NotNil(t, model, "attaching creates a plane model")
	assert.Same(t, co.Material, model.Material)
	assert.Same(t, co.Surface.Texture, co.Material.Texture(gfx.UnitDiffuse))

	co.SetNode(nil)
	assert.Nil(t, nd.Model(), "created model removed on detach")
}

func TestModelComponentKeepsExistingModel(t *testing.T) {
	sc := scene.NewScene("level")
	nd := sc.NewChild("screen")
	own := scene.NewModel(scene.NewPlaneMesh("custom"))
	nd.SetDrawable(own)

	co := NewModelComponent(gfx.MemDevice{}, "screen", Deps{})
	co.SetNode(nd)
	assert.Same(t, own, nd.Model(), "existing model kept")
	assert.Same(t, co.Material, own.Material)

	co.SetNode(nil)
	assert.Same(t, own, nd.Model(), "models the component did not create survive detach")
}
