// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Ray is a ray with an origin point and a normalized direction.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay returns a new [Ray] with the given origin and direction,
// normalizing the direction.
func NewRay(origin, dir Vector3) Ray {
	return Ray{Origin: origin, Dir: dir.Normal()}
}

// At returns the point at the given parametric distance along the ray.
func (r Ray) At(t float32) Vector3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// MulMatrix4 returns this ray transformed by the given matrix.
// The direction is re-normalized, so parametric distances along the
// transformed ray do not correspond to distances along this one
// under non-uniform scaling.
func (r Ray) MulMatrix4(m *Matrix4) Ray {
	return NewRay(r.Origin.MulMatrix4AsPoint(m), r.Dir.MulMatrix4AsDir(m))
}

// IntersectBox returns the nearest intersection point of this ray with
// the given bounding box, and whether it intersects at all.
// A ray starting inside the box intersects it.
func (r Ray) IntersectBox(box Box3) (Vector3, bool) {
	tmin := -Infinity
	tmax := Infinity

	for dim := 0; dim < 3; dim++ {
		var o, d, lo, hi float32
		switch dim {
		case 0:
			o, d, lo, hi = r.Origin.X, r.Dir.X, box.Min.X, box.Max.X
		case 1:
			o, d, lo, hi = r.Origin.Y, r.Dir.Y, box.Min.Y, box.Max.Y
		case 2:
			o, d, lo, hi = r.Origin.Z, r.Dir.Z, box.Min.Z, box.Max.Z
		}
		if d == 0 {
			if o < lo || o > hi {
				return Vector3{}, false
			}
			continue
		}
		t0 := (lo - o) / d
		t1 := (hi - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = max(tmin, t0)
		tmax = min(tmax, t1)
		if tmin > tmax {
			return Vector3{}, false
		}
	}
	if tmax < 0 {
		return Vector3{}, false
	}
	t := tmin
	if t < 0 {
		t = 0 // origin inside the box
	}
	return r.At(t), true
}

// IntersectTriangle returns the intersection point of this ray with the
// triangle a, b, c, along with the barycentric weights of b and c at the
// intersection, and whether it intersects in front of the ray origin.
// Both triangle facings are accepted.
func (r Ray) IntersectTriangle(a, b, c Vector3) (point Vector3, u, v float32, ok bool) {
	// Moller-Trumbore
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if Abs(det) < 1e-8 {
		return Vector3{}, 0, 0, false // parallel to triangle plane
	}
	inv := 1 / det
	tv := r.Origin.Sub(a)
	u = tv.Dot(p) * inv
	if u < 0 || u > 1 {
		return Vector3{}, 0, 0, false
	}
	q := tv.Cross(e1)
	v = r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return Vector3{}, 0, 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return Vector3{}, 0, 0, false
	}
	return r.At(t), u, v, true
}
