// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/insitu3d/insitu/math32"

// Mesh is an indexed triangle mesh with per-vertex texture coordinates,
// in local (model) space.
type Mesh struct {
	// Name is the name of the mesh.
	Name string

	// Vertex are the vertex positions.
	Vertex []math32.Vector3

	// UV are the per-vertex texture coordinates, parallel to Vertex.
	UV []math32.Vector2

	// Index is the triangle index list, three entries per triangle.
	Index []int

	// BBox is the local-space bounding box of the vertices.
	BBox math32.Box3
}

// NewMesh returns a new mesh with the given name, vertices, UVs and
// triangle indices, computing the bounding box.
func NewMesh(name string, vertex []math32.Vector3, uv []math32.Vector2, index []int) *Mesh {
	ms := &Mesh{Name: name, Vertex: vertex, UV: uv, Index: index}
	ms.BBox.SetEmpty()
	for _, v := range vertex {
		ms.BBox.ExpandByPoint(v)
	}
	return ms
}

// NewPlaneMesh returns the canonical unit plane: a unit square in the
// XY plane centered on the origin, facing +Z, with the full 0..1 UV
// range mapped across it. V increases downward, matching UI pixel
// coordinates.
func NewPlaneMesh(name string) *Mesh {
	return NewMesh(name,
		[]math32.Vector3{
			math32.Vec3(-0.5, 0.5, 0),
			math32.Vec3(0.5, 0.5, 0),
			math32.Vec3(0.5, -0.5, 0),
			math32.Vec3(-0.5, -0.5, 0),
		},
		[]math32.Vector2{
			math32.Vec2(0, 0),
			math32.Vec2(1, 0),
			math32.Vec2(1, 1),
			math32.Vec2(0, 1),
		},
		[]int{0, 1, 2, 0, 2, 3},
	)
}

// Raycast appends to hits the intersections of the given local-space ray
// with the mesh triangles, with barycentric-interpolated UV.
// Points and distances are in local space; the caller transforms them.
func (ms *Mesh) Raycast(ray math32.Ray, hits []Hit) []Hit {
	for i := 0; i+2 < len(ms.Index); i += 3 {
		ia, ib, ic := ms.Index[i], ms.Index[i+1], ms.Index[i+2]
		pt, u, v, ok := ray.IntersectTriangle(ms.Vertex[ia], ms.Vertex[ib], ms.Vertex[ic])
		if !ok {
			continue
		}
		var uv math32.Vector2
		if len(ms.UV) == len(ms.Vertex) {
			uv = ms.UV[ia].MulScalar(1 - u - v).Add(ms.UV[ib].MulScalar(u)).Add(ms.UV[ic].MulScalar(v))
		}
		hits = append(hits, Hit{
			Point:    pt,
			Distance: pt.DistanceTo(ray.Origin),
			UV:       uv,
		})
	}
	return hits
}
