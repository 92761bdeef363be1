// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image"

// Viewport binds a rectangle of the output to a scene and a camera.
// A zero-area Rect is the full-output convention: the viewport covers
// the whole backbuffer.
type Viewport struct {
	// Rect is the output rectangle covered by the viewport,
	// in screen pixels. The zero rectangle means full output.
	Rect image.Rectangle

	// Scene is the scene the viewport renders.
	Scene *Scene

	// Camera is the camera the viewport renders with.
	Camera *Camera
}

// NewViewport returns a new full-output viewport of the given scene
// and camera.
func NewViewport(sc *Scene, cam *Camera) *Viewport {
	return &Viewport{Scene: sc, Camera: cam}
}

// IsFullOutput returns whether this viewport uses the zero-area rect
// convention for covering the full output.
func (vp *Viewport) IsFullOutput() bool {
	return vp.Rect.Dx() == 0 || vp.Rect.Dy() == 0
}

// Viewports is the renderer's list of active viewports,
// in registration order.
type Viewports struct {
	list []*Viewport
}

// Add appends the given viewport to the list and returns it.
func (vs *Viewports) Add(vp *Viewport) *Viewport {
	vs.list = append(vs.list, vp)
	return vp
}

// Len returns the number of registered viewports.
func (vs *Viewports) Len() int {
	return len(vs.list)
}

// At returns the viewport at the given registration index.
func (vs *Viewports) At(i int) *Viewport {
	return vs.list[i]
}
