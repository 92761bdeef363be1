// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"sort"

	"github.com/insitu3d/insitu/math32"
)

// RayLevel is the precision of a raycast query.
type RayLevel int32

const (
	// LevelBBox intersects against drawable bounding boxes only.
	LevelBBox RayLevel = iota

	// LevelTriangle intersects at triangle precision.
	LevelTriangle

	// LevelTriangleUV intersects at triangle precision and computes
	// the surface UV at each hit.
	LevelTriangleUV
)

// RayQuery describes a raycast query against an [Index].
type RayQuery struct {
	// Ray is the world-space ray to cast.
	Ray math32.Ray

	// MaxDistance is the maximum hit distance; use [math32.Infinity]
	// for an unbounded query.
	MaxDistance float32

	// Level is the precision of the query.
	Level RayLevel

	// Kinds filters hits to drawables of the given kinds.
	Kinds Kind

	// Layers filters hits to drawables whose layer mask intersects
	// this mask.
	Layers uint32
}

// NewRayQuery returns a triangle-UV precision query over geometry
// drawables on all layers, with unbounded distance.
func NewRayQuery(ray math32.Ray) *RayQuery {
	return &RayQuery{
		Ray:         ray,
		MaxDistance: math32.Infinity,
		Level:       LevelTriangleUV,
		Kinds:       KindGeometry,
		Layers:      LayersAll,
	}
}

// Index is the spatial index of a scene, used for picking.
// It walks the scene tree with a bounding-box prefilter; drawables
// passing the prefilter are intersected at the query's precision.
type Index struct {
	// Scene is the scene this index belongs to.
	Scene *Scene
}

// NewIndex creates a spatial index for the given scene and attaches
// it as [Scene.Index].
func NewIndex(sc *Scene) *Index {
	ix := &Index{Scene: sc}
	sc.Index = ix
	return ix
}

// Raycast returns all intersections of the query's ray with matching
// drawables in the scene, sorted nearest-first.
// World matrices must be up to date; see [Scene.Update].
func (ix *Index) Raycast(q *RayQuery) []Hit {
	var hits []Hit
	ix.Scene.WalkDown(func(nd *Node) bool {
		d := nd.Drawable
		if d == nil {
			return true
		}
		db := d.AsDrawableBase()
		if db.Kind&q.Kinds == 0 || db.Layers&q.Layers == 0 {
			return true
		}
		box := d.WorldBBox()
		if box.IsEmpty() {
			return true
		}
		pt, ok := q.Ray.IntersectBox(box)
		if !ok || pt.DistanceTo(q.Ray.Origin) > q.MaxDistance {
			return true
		}
		if q.Level == LevelBBox {
			hits = append(hits, Hit{
				Drawable: d,
				Point:    pt,
				Distance: pt.DistanceTo(q.Ray.Origin),
			})
			return true
		}
		hits = d.Raycast(q.Ray, q.MaxDistance, hits)
		return true
	})

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}
