// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, matrix, and math package
// for the 3D picking and coordinate mapping done by insitu.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRadFactor is the number of radians per degree.
const DegToRadFactor = math.Pi / 180

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// DegToRad converts a number of degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(f float32) bool {
	return math32.IsNaN(f)
}
