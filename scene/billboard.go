// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/insitu3d/insitu/math32"

// Billboard is one camera-facing quad in a [Billboards] set.
type Billboard struct {
	// Pos is the center of the billboard, relative to the owning node.
	Pos math32.Vector3

	// Size is the width and height of the billboard.
	Size math32.Vector2
}

// Billboards is a set of camera-facing quads, for particle and sprite
// effects. Billboards occupy space for raycasting but report themselves
// as transparent to picking, so rays pass through them.
type Billboards struct {
	DrawableBase

	// Billboards are the individual quads.
	Billboards []Billboard
}

// NewBillboards returns a new geometry [Billboards] set,
// visible on all layers.
func NewBillboards(bbs ...Billboard) *Billboards {
	return &Billboards{
		DrawableBase: DrawableBase{Kind: KindGeometry, Layers: LayersAll},
		Billboards:   bbs,
	}
}

// TransparentToPicking implements [PickTransparent]: picking rays pass
// through billboard sets.
func (bb *Billboards) TransparentToPicking() bool {
	return true
}

// bbox returns the world-space box of the given billboard, extruded
// slightly along z so that it is pickable from any direction.
func (bb *Billboards) bbox(b Billboard) math32.Box3 {
	var center math32.Vector3
	if bb.Node != nil {
		center = b.Pos.MulMatrix4AsPoint(&bb.Node.Pose.WorldMatrix)
	} else {
		center = b.Pos
	}
	half := math32.Vec3(b.Size.X/2, b.Size.Y/2, 0.01)
	box := math32.B3Empty()
	box.ExpandByPoint(center.Sub(half))
	box.ExpandByPoint(center.Add(half))
	return box
}

func (bb *Billboards) WorldBBox() math32.Box3 {
	box := math32.B3Empty()
	for _, b := range bb.Billboards {
		box.ExpandByBox(bb.bbox(b))
	}
	return box
}

func (bb *Billboards) Raycast(ray math32.Ray, maxDist float32, hits []Hit) []Hit {
	for _, b := range bb.Billboards {
		box := bb.bbox(b)
		pt, ok := ray.IntersectBox(box)
		if !ok {
			continue
		}
		dist := pt.DistanceTo(ray.Origin)
		if dist > maxDist {
			continue
		}
		hits = append(hits, Hit{
			Drawable: bb,
			Point:    pt,
			Distance: dist,
			UV:       math32.Vec2(0.5, 0.5),
		})
	}
	return hits
}
