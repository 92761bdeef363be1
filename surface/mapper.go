// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"

	"github.com/insitu3d/insitu/gfx"
	"github.com/insitu3d/insitu/scene"
	"github.com/insitu3d/insitu/ui"
)

// Sentinel is the rewritten position meaning "the cursor belongs to
// another UI, not this surface".
var Sentinel = image.Pt(-1, -1)

// Result is the outcome of a [Mapper.Map] call. When Applicable is
// false the cursor position must be left as it was; otherwise Pos is
// the UI-local pixel position, or [Sentinel].
type Result struct {
	Pos        image.Point
	Applicable bool
}

// OverlayGate decides whether the always-on-top overlay context takes
// part in the precedence check. The two component variants gate on
// different conditions.
type OverlayGate func(*ui.Context) bool

// GateEnabled gates the overlay check on the overlay being enabled
// (model-variant behavior).
func GateEnabled(ov *ui.Context) bool {
	return ov.Enabled
}

// GateInputFree gates the overlay check on the overlay not blocking
// input (material-variant behavior).
func GateInputFree(ov *ui.Context) bool {
	return !ov.BlockInput
}

// Mapper maps 2D screen-space cursor positions to UI-local pixel
// coordinates on a surface in the scene. It is a stateless
// transformation over live scene, viewport and texture state; all
// collaborators are explicit fields.
type Mapper struct {
	// Scene is the scene the surface lives in.
	Scene *scene.Scene

	// Node is the node carrying the surface's model.
	Node *scene.Node

	// Viewports is the renderer's active viewport list.
	Viewports *scene.Viewports

	// Output reports the backbuffer dimensions, for normalizing
	// full-output viewport rects.
	Output gfx.Output

	// Overlay is the always-on-top UI rendered into the backbuffer,
	// if any; when it claims the cursor, mapping yields [Sentinel].
	Overlay *ui.Context

	// Gate is the overlay gating condition for this variant.
	Gate OverlayGate

	// UI is the offscreen context of the mapped surface; its
	// dimensions scale the hit UV into pixels.
	UI *ui.Context
}

// Map maps the given screen-space position.
//
// The position maps to [Sentinel] when the overlay claims the cursor.
// It maps to a UI-local pixel position when the pick ray's nearest
// relevant hit is the surface's own model; billboard-like drawables
// that are transparent to picking are skipped, and any other
// intervening drawable blocks the mapping. In every other case —
// missing scene, model or spatial index, no resolvable viewport or
// camera, nothing hit — the result is not applicable, which is a
// normal transient state and not an error.
func (mp *Mapper) Map(pos image.Point) Result {
	unchanged := Result{Pos: pos}

	// an overlay hovering a real element owns the cursor
	if mp.Overlay != nil && mp.Gate != nil && mp.Gate(mp.Overlay) &&
		mp.Overlay.HoverElement() != mp.Overlay.RootElement() {
		return Result{Pos: Sentinel, Applicable: true}
	}

	if mp.Scene == nil || mp.Node == nil || mp.Viewports == nil || mp.Scene.Index == nil {
		return unchanged
	}
	model := mp.Node.Model()
	if model == nil {
		return unchanged
	}

	vp := mp.resolveViewport(pos)
	if vp == nil {
		return unchanged
	}
	cam := vp.Camera
	if cam == nil {
		return unchanged
	}

	rect := vp.Rect
	if vp.IsFullOutput() {
		if mp.Output == nil {
			return unchanged
		}
		rect = image.Rectangle{Max: mp.Output.Size()}
		if rect.Dx() == 0 || rect.Dy() == 0 {
			return unchanged
		}
	}

	ray := cam.ScreenRay(
		float32(pos.X)/float32(rect.Dx()),
		float32(pos.Y)/float32(rect.Dy()),
	)
	hits := mp.Scene.Index.Raycast(scene.NewRayQuery(ray))

	for _, hit := range hits {
		if hit.Drawable != scene.Drawable(model) {
			if pt, ok := hit.Drawable.(scene.PickTransparent); ok && pt.TransparentToPicking() {
				continue
			}
			// an opaque occluder in front blocks the surface from input
			return unchanged
		}
		dims := mp.UI.Dimensions()
		return Result{
			Pos:        image.Pt(int(hit.UV.X*float32(dims.X)), int(hit.UV.Y*float32(dims.Y))),
			Applicable: true,
		}
	}
	return unchanged
}

// resolveViewport finds the viewport the position belongs to, among
// the active viewports bound to the mapper's scene. A full-output
// viewport is kept only as a fallback; a viewport whose rect contains
// the position overrides it, so smaller viewports win in
// picture-in-picture setups.
func (mp *Mapper) resolveViewport(pos image.Point) *scene.Viewport {
	var vp *scene.Viewport
	for i := 0; i < mp.Viewports.Len(); i++ {
		cand := mp.Viewports.At(i)
		if cand == nil || cand.Scene != mp.Scene {
			continue
		}
		if cand.IsFullOutput() {
			if vp == nil {
				vp = cand
			}
		} else if pos.In(cand.Rect) {
			vp = cand
		}
	}
	return vp
}
