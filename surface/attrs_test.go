// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insitu3d/insitu/gfx"
)

func TestAttributesRoundTrip(t *testing.T) {
	mc := newMaterialComponent(gfx.NewStore())
	mc.RemapMousePos = false
	mc.SetVirtualMaterialName("hud")

	var buf bytes.Buffer
	require.NoError(t, mc.SaveAttributes(&buf))
	assert.Contains(t, buf.String(), "remap-mouse-position = false")
	assert.Contains(t, buf.String(), "virtual-material-name = 'hud'")

	other := newMaterialComponent(gfx.NewStore())
	require.NoError(t, other.LoadAttributes(&buf))
	assert.False(t, other.RemapMousePos)
	assert.Equal(t, "hud", other.VirtualMaterialName())
}

func TestLoadAttributesDefaults(t *testing.T) {
	// missing keys fall back to defaults, and loading still creates
	// the material
	mc := newMaterialComponent(gfx.NewStore())
	require.NoError(t, mc.LoadAttributes(strings.NewReader("")))
	assert.True(t, mc.RemapMousePos)
	require.NotNil(t, mc.Material())
	assert.Equal(t, "", mc.Material().Name)
}

func TestLoadAttributesInvalid(t *testing.T) {
	mc := newMaterialComponent(gfx.NewStore())
	err := mc.LoadAttributes(strings.NewReader("remap-mouse-position = 'not a bool'"))
	assert.Error(t, err)
}

func TestComponentAttributes(t *testing.T) {
	co := NewModelComponent(gfx.MemDevice{}, "screen", Deps{})

	var buf bytes.Buffer
	require.NoError(t, co.SaveAttributes(&buf))
	assert.Contains(t, buf.String(), "remap-mouse-position = true")
	assert.NotContains(t, buf.String(), "virtual-material-name", "omitted when empty")

	require.NoError(t, co.LoadAttributes(strings.NewReader("remap-mouse-position = false")))
	assert.False(t, co.RemapMousePos)
}
