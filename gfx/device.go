// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfx provides the graphics-side collaborators of insitu:
// render-target textures and surfaces, materials, the resource store,
// and the abstractions over the host engine's graphics backend.
package gfx

import "image"

// Device abstracts the graphics backend's render-target allocation,
// so that surfaces can be driven by a real GPU backend or the
// in-memory [MemDevice].
type Device interface {
	// AllocRenderTarget allocates render-target pixel storage of the
	// given size, returning an error if the backend cannot provide it.
	AllocRenderTarget(width, height int) (*image.RGBA, error)
}

// MemDevice is the in-memory [Device]: render targets are plain
// CPU-side images.
type MemDevice struct{}

func (MemDevice) AllocRenderTarget(width, height int) (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// Output reports the current dimensions of a graphics output
// (the backbuffer), for normalizing full-output viewport rects.
type Output interface {
	// Size returns the current output size in pixels.
	Size() image.Point
}

// FixedOutput is an [Output] with a fixed size.
type FixedOutput image.Point

func (o FixedOutput) Size() image.Point {
	return image.Point(o)
}
