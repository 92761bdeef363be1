// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "image"

// SurfaceUpdate is the update policy of a [RenderSurface].
type SurfaceUpdate int32

const (
	// UpdateAuto renders the surface every frame.
	UpdateAuto SurfaceUpdate = iota

	// UpdateManual renders the surface only when its owner asks.
	UpdateManual
)

// RenderSurface is the renderable face of a [RenderTexture]: what a UI
// context or render pass draws into, with an update policy.
type RenderSurface struct {
	// Texture is the texture this surface belongs to.
	Texture *RenderTexture

	// UpdateMode determines when the surface is re-rendered.
	UpdateMode SurfaceUpdate
}

// Size returns the pixel size of the surface.
func (rs *RenderSurface) Size() image.Point {
	return rs.Texture.Size()
}

// RenderTexture is a texture that can be used as a render target.
// Reallocation keeps the texture object identity stable, so materials
// holding a reference see the new contents automatically.
type RenderTexture struct {
	// Name is the name of the texture.
	Name string

	// Levels is the number of mip levels; 1 means no mipmaps.
	Levels int

	// RGBA is the current pixel storage, allocated by the device.
	// Nil until the first successful [RenderTexture.SetSize].
	RGBA *image.RGBA

	surface *RenderSurface
}

// NewRenderTexture returns a new unallocated render-target texture
// with the given name and no mipmaps.
func NewRenderTexture(name string) *RenderTexture {
	tx := &RenderTexture{Name: name, Levels: 1}
	tx.surface = &RenderSurface{Texture: tx}
	return tx
}

// Size returns the current pixel size of the texture,
// or the zero point if it has never been allocated.
func (tx *RenderTexture) Size() image.Point {
	if tx.RGBA == nil {
		return image.Point{}
	}
	return tx.RGBA.Bounds().Size()
}

// SetSize reallocates the texture at the given size on the given
// device. On failure the previous storage is kept.
func (tx *RenderTexture) SetSize(dev Device, width, height int) error {
	rgba, err := dev.AllocRenderTarget(width, height)
	if err != nil {
		return err
	}
	tx.RGBA = rgba
	return nil
}

// Surface returns the render surface of the texture. The surface
// identity is stable across reallocation.
func (tx *RenderTexture) Surface() *RenderSurface {
	return tx.surface
}
