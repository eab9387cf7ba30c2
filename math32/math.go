// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

// Package math32 is a float32 based vector, matrix, and math package
// for color and shading computations, with the same semantics as
// the corresponding GPU shader built-ins.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi    = math.Pi
	Sqrt3 = 1.7320508075688772
)

const (
	// HalfMax is the largest finite value representable by a
	// 16 bit half float, which is the ceiling used by shaders
	// running at medium precision.
	HalfMax = 65504

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sign0 returns -1 if x < 0, 1 if x > 0, and 0 otherwise,
// matching the sign() shader built-in. NaN returns 0.
func Sign0(x float32) float32 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Atan2 returns the arc tangent of y/x, using the signs of the two
// to determine the quadrant of the return value.
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Pow returns x**y, the base-x exponential of y.
// See [math.Pow] for special cases.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Log2 returns the binary logarithm of x.
// The special cases are the same as for [math.Log].
func Log2(x float32) float32 {
	return math32.Log2(x)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Min returns the smaller of x or y. Unlike [math.Min] a NaN
// argument does not propagate: the comparison is a plain x < y,
// as in shader min().
func Min(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y, with the same plain
// comparison semantics as [Min].
func Max(x, y float32) float32 {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Mix returns the linear blend x + (y-x)*a, as in shader mix().
func Mix(x, y, a float32) float32 {
	return x + (y-x)*a
}

// Smoothstep returns the Hermite interpolation of x between
// edge0 and edge1: 0 below edge0, 1 above edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Sq returns x squared.
func Sq(x float32) float32 {
	return x * x
}
