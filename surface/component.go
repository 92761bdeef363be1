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

// Deps are the engine collaborators a component needs, passed in
// explicitly rather than looked up from global state.
type Deps struct {
	// Viewports is the renderer's active viewport list.
	Viewports *scene.Viewports

	// Output reports the backbuffer dimensions.
	Output gfx.Output

	// Overlay is the always-on-top UI rendered into the backbuffer,
	// if any.
	Overlay *ui.Context

	// Store is the resource store for named virtual materials.
	Store *gfx.Store
}

// Component is the state shared by the two surface component variants:
// the owned [Surface], the node binding, and the mouse-position
// remapping hook.
type Component struct {
	Deps

	// Surface is the offscreen UI surface owned by the component.
	Surface *Surface

	// RemapMousePos is whether [Component.OnMouseMove] rewrites
	// positions; persisted as an attribute.
	RemapMousePos bool

	node *scene.Node
	gate OverlayGate
}

func newComponent(dev gfx.Device, name string, deps Deps, gate OverlayGate) Component {
	return Component{
		Deps:          deps,
		Surface:       NewSurface(dev, name),
		RemapMousePos: true,
		gate:          gate,
	}
}

// Node returns the scene node the component is attached to, or nil.
func (co *Component) Node() *scene.Node {
	return co.node
}

// Mapper returns a coordinate mapper over the component's current
// scene, node and collaborators.
func (co *Component) Mapper() *Mapper {
	var sc *scene.Scene
	if co.node != nil {
		sc = co.node.Scene
	}
	return &Mapper{
		Scene:     sc,
		Node:      co.node,
		Viewports: co.Viewports,
		Output:    co.Output,
		Overlay:   co.Overlay,
		Gate:      co.gate,
		UI:        co.Surface.UI,
	}
}

// OnMouseMove is the mouse-move interception hook: it rewrites the
// event's screen position in place to the equivalent UI-local position
// when the cursor is on the surface, to [Sentinel] when another UI
// claims it, and leaves it untouched otherwise. Applicable positions
// also drive the offscreen context's hover tracking.
func (co *Component) OnMouseMove(pos *image.Point) {
	if !co.RemapMousePos || co.node == nil {
		return
	}
	res := co.Mapper().Map(*pos)
	if !res.Applicable {
		return
	}
	*pos = res.Pos
	if res.Pos != Sentinel {
		co.Surface.UI.CursorMoved(res.Pos)
	}
}
