// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTextureSetSize(t *testing.T) {
	tx := NewRenderTexture("screen")
	assert.Equal(t, image.Point{}, tx.Size(), "unallocated")

	require.NoError(t, tx.SetSize(MemDevice{}, 256, 256))
	assert.Equal(t, image.Pt(256, 256), tx.Size())
	assert.Equal(t, 1, tx.Levels)
}

func TestRenderSurfaceStableIdentity(t *testing.T) {
	tx := NewRenderTexture("screen")
	rs := tx.Surface()
	require.NoError(t, tx.SetSize(MemDevice{}, 128, 128))
	assert.Same(t, rs, tx.Surface(), "surface identity survives reallocation")
	assert.Equal(t, image.Pt(128, 128), rs.Size())
}

func TestMaterialTextures(t *testing.T) {
	tx := NewRenderTexture("screen")
	mt := NewMaterial(TechDiffuse)
	assert.Equal(t, []Technique{TechDiffuse}, mt.Techniques)
	assert.Nil(t, mt.Texture(UnitDiffuse))

	mt.SetTexture(UnitDiffuse, tx)
	assert.Same(t, tx, mt.Texture(UnitDiffuse))
	assert.Nil(t, mt.Texture(UnitNormal))
}
