// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insitu3d/insitu/gfx"
)

// flakyDevice allocates normally until fail is set.
type flakyDevice struct {
	fail bool
}

func (d *flakyDevice) AllocRenderTarget(width, height int) (*image.RGBA, error) {
	if d.fail {
		return nil, errors.New("render target allocation failed")
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

func TestSurfaceDefaults(t *testing.T) {
	sf := NewSurface(gfx.MemDevice{}, "screen")
	assert.Equal(t, image.Pt(DefaultSize, DefaultSize), sf.Texture.Size())
	assert.Equal(t, image.Pt(DefaultSize, DefaultSize), sf.UI.Dimensions())
	assert.True(t, sf.UI.Enabled)
	assert.Equal(t, gfx.UpdateManual, sf.Texture.Surface().UpdateMode)
	assert.Same(t, sf.Texture.Surface(), sf.UI.RenderTarget())
}

func TestSurfaceSetSizeValid(t *testing.T) {
	sf := NewSurface(gfx.MemDevice{}, "screen")
	require.NoError(t, sf.SetSize(1024, 1024))
	assert.Equal(t, image.Pt(1024, 1024), sf.UI.Dimensions())
	assert.True(t, sf.UI.Enabled)

	// bounds are inclusive
	assert.NoError(t, sf.SetSize(MinSize, MinSize))
	assert.NoError(t, sf.SetSize(MaxSize, MaxSize))
}

func TestSurfaceSetSizeInvalid(t *testing.T) {
	sf := NewSurface(gfx.MemDevice{}, "screen")

	invalid := [][2]int{
		{256, 512},   // not square
		{32, 32},     // below minimum
		{8192, 8192}, // above maximum
		{0, 0},
		{-64, -64},
		{MinSize - 1, MinSize - 1},
		{MaxSize + 1, MaxSize + 1},
	}
	for _, sz := range invalid {
		err := sf.SetSize(sz[0], sz[1])
		assert.Error(t, err, "size %dx%d", sz[0], sz[1])
		// prior state retained
		assert.Equal(t, image.Pt(DefaultSize, DefaultSize), sf.Texture.Size())
		assert.Equal(t, image.Pt(DefaultSize, DefaultSize), sf.UI.Dimensions())
		assert.True(t, sf.UI.Enabled)
	}
}

func TestSurfaceSetSizeAllocationFailure(t *testing.T) {
	dev := &flakyDevice{}
	sf := NewSurface(dev, "screen")
	require.True(t, sf.UI.Enabled)

	dev.fail = true
	assert.Error(t, sf.SetSize(256, 256))
	assert.False(t, sf.UI.Enabled, "disabled as safe fallback")
	assert.Nil(t, sf.UI.RenderTarget())

	// recovery re-attaches and re-enables
	dev.fail = false
	require.NoError(t, sf.SetSize(256, 256))
	assert.True(t, sf.UI.Enabled)
	assert.Same(t, sf.Texture.Surface(), sf.UI.RenderTarget())
	assert.Equal(t, image.Pt(256, 256), sf.UI.Dimensions())
}

func TestSurfaceRender(t *testing.T) {
	sf := NewSurface(gfx.MemDevice{}, "screen")
	sf.Render() // clears to background
	px := sf.Texture.RGBA.RGBAAt(10, 10)
	assert.Equal(t, uint8(255), px.A)

	sf.UI.Enabled = false
	sf.Render() // disabled: no-op, no panic
}
