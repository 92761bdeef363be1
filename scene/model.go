// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/insitu3d/insitu/gfx"
	"github.com/insitu3d/insitu/math32"
)

// Model is a static mesh drawable with a material.
type Model struct {
	DrawableBase

	// Mesh is the shape of the model.
	Mesh *Mesh

	// Material is the surface material of the model.
	Material *gfx.Material
}

// NewModel returns a new geometry [Model] with the given mesh,
// visible on all layers.
func NewModel(mesh *Mesh) *Model {
	return &Model{
		DrawableBase: DrawableBase{Kind: KindGeometry, Layers: LayersAll},
		Mesh:         mesh,
	}
}

// SetMaterial sets the material of the model.
func (md *Model) SetMaterial(mat *gfx.Material) *Model {
	md.Material = mat
	return md
}

func (md *Model) WorldBBox() math32.Box3 {
	if md.Mesh == nil || md.Node == nil {
		return math32.B3Empty()
	}
	return md.Mesh.BBox.MulMatrix4(&md.Node.Pose.WorldMatrix)
}

func (md *Model) Raycast(ray math32.Ray, maxDist float32, hits []Hit) []Hit {
	if md.Mesh == nil || md.Node == nil {
		return hits
	}
	world := &md.Node.Pose.WorldMatrix
	inv := world.Inverse()
	local := ray.MulMatrix4(&inv)

	start := len(hits)
	hits = md.Mesh.Raycast(local, hits)
	for i := start; i < len(hits); i++ {
		pt := hits[i].Point.MulMatrix4AsPoint(world)
		dist := pt.DistanceTo(ray.Origin)
		hits[i].Drawable = md
		hits[i].Point = pt
		hits[i].Distance = dist
	}
	// drop world-space hits beyond the query range
	out := hits[:start]
	for _, h := range hits[start:] {
		if h.Distance <= maxDist {
			out = append(out, h)
		}
	}
	return out
}
