// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/insitu3d/insitu/math32"

// Kind is a bitmask classifying drawables for raycast queries.
type Kind uint32

const (
	// KindGeometry is renderable surface geometry, including billboards.
	KindGeometry Kind = 1 << iota

	// KindLight is a light volume.
	KindLight
)

// KindAny matches every drawable kind.
const KindAny = ^Kind(0)

// LayersAll is the layer mask matching every layer.
const LayersAll = ^uint32(0)

// Drawable is something attached to a scene node that occupies space
// and can be picked by raycasting.
type Drawable interface {
	// AsDrawableBase returns the [DrawableBase] with the core
	// drawable state.
	AsDrawableBase() *DrawableBase

	// WorldBBox returns the world-space axis-aligned bounding box
	// of the drawable. World matrices must be up to date.
	WorldBBox() math32.Box3

	// Raycast appends to the given slice the intersections of the given
	// world-space ray with the drawable, at triangle precision with
	// surface UV, ignoring hits beyond maxDist.
	Raycast(ray math32.Ray, maxDist float32, hits []Hit) []Hit
}

// PickTransparent is the capability reported by drawables that rays
// pass through during picking, such as billboards.
type PickTransparent interface {
	// TransparentToPicking returns whether picking rays should treat
	// the drawable as not there.
	TransparentToPicking() bool
}

// DrawableBase is the core state shared by all drawables.
type DrawableBase struct {
	// Node is the scene node the drawable is attached to, or nil.
	Node *Node

	// Kind classifies the drawable for raycast query filtering.
	Kind Kind

	// Layers is the layer mask of the drawable; queries only see
	// drawables whose mask intersects the query's.
	Layers uint32
}

func (db *DrawableBase) AsDrawableBase() *DrawableBase {
	return db
}

// Hit is one intersection from a raycast query.
type Hit struct {
	// Drawable is the drawable that was hit.
	Drawable Drawable

	// Point is the world-space intersection point.
	Point math32.Vector3

	// Distance is the distance from the ray origin to Point.
	Distance float32

	// UV is the surface texture coordinate at the intersection,
	// each component in [0, 1].
	UV math32.Vector2
}
