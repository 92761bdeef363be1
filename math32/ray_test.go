// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRayIntersectBox(t *testing.T) {
	box := B3(-1, -1, -1, 1, 1, 1)

	r := NewRay(Vec3(0, 0, 5), Vec3(0, 0, -1))
	pt, ok := r.IntersectBox(box)
	assert.True(t, ok)
	assert.Equal(t, Vec3(0, 0, 1), pt)

	r = NewRay(Vec3(0, 5, 5), Vec3(0, 0, -1))
	_, ok = r.IntersectBox(box)
	assert.False(t, ok)

	// pointing away
	r = NewRay(Vec3(0, 0, 5), Vec3(0, 0, 1))
	_, ok = r.IntersectBox(box)
	assert.False(t, ok)

	// origin inside
	r = NewRay(Vec3(0, 0, 0), Vec3(1, 0, 0))
	pt, ok = r.IntersectBox(box)
	assert.True(t, ok)
	assert.Equal(t, Vec3(0, 0, 0), pt)
}

func TestRayIntersectTriangle(t *testing.T) {
	a := Vec3(-1, -1, 0)
	b := Vec3(1, -1, 0)
	c := Vec3(-1, 1, 0)

	r := NewRay(Vec3(-0.5, -0.5, 5), Vec3(0, 0, -1))
	pt, u, v, ok := r.IntersectTriangle(a, b, c)
	assert.True(t, ok)
	assert.InDelta(t, -0.5, pt.X, 1e-6)
	assert.InDelta(t, -0.5, pt.Y, 1e-6)
	assert.InDelta(t, 0.25, u, 1e-6)
	assert.InDelta(t, 0.25, v, 1e-6)

	// outside the triangle (in the other half of the quad)
	r = NewRay(Vec3(0.5, 0.5, 5), Vec3(0, 0, -1))
	_, _, _, ok = r.IntersectTriangle(a, b, c)
	assert.False(t, ok)

	// behind the origin
	r = NewRay(Vec3(-0.5, -0.5, -5), Vec3(0, 0, -1))
	_, _, _, ok = r.IntersectTriangle(a, b, c)
	assert.False(t, ok)

	// back face is accepted
	r = NewRay(Vec3(-0.5, -0.5, -5), Vec3(0, 0, 1))
	_, _, _, ok = r.IntersectTriangle(a, b, c)
	assert.True(t, ok)
}

func TestRayMulMatrix4(t *testing.T) {
	var m Matrix4
	m.SetTranslation(Vec3(10, 0, 0))
	r := NewRay(Vec3(0, 0, 0), Vec3(0, 0, -1)).MulMatrix4(&m)
	assert.Equal(t, Vec3(10, 0, 0), r.Origin)
	assert.Equal(t, Vec3(0, 0, -1), r.Dir)
}
