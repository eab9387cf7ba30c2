// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector3 is a 3D vector/point with X, Y and Z components.
// For colors the components are the R, G and B channels in order.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{scalar, scalar, scalar}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector3) DivScalar(scalar float32) Vector3 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector3{}
}

// Dot returns the dot product of this vector with other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

///////////////////////////////////////////////////////////////////////
//  Component-wise functions

// MaxScalar returns the component-wise maximum of this vector and s.
func (v Vector3) MaxScalar(s float32) Vector3 {
	return Vec3(Max(v.X, s), Max(v.Y, s), Max(v.Z, s))
}

// ClampScalar clamps each component to [mn, mx].
func (v Vector3) ClampScalar(mn, mx float32) Vector3 {
	return Vec3(Clamp(v.X, mn, mx), Clamp(v.Y, mn, mx), Clamp(v.Z, mn, mx))
}

// Min3 returns the smallest of the three components.
func (v Vector3) Min3() float32 {
	return Min(v.X, Min(v.Y, v.Z))
}

// Max3 returns the largest of the three components.
func (v Vector3) Max3() float32 {
	return Max(v.X, Max(v.Y, v.Z))
}

// Mix returns the linear blend of this vector toward other by a,
// per component, as in shader mix().
func (v Vector3) Mix(other Vector3, a float32) Vector3 {
	return Vec3(Mix(v.X, other.X, a), Mix(v.Y, other.Y, a), Mix(v.Z, other.Z, a))
}

// Map returns the vector with f applied to each component.
func (v Vector3) Map(f func(float32) float32) Vector3 {
	return Vec3(f(v.X), f(v.Y), f(v.Z))
}

// HasNaN reports whether any component is NaN.
func (v Vector3) HasNaN() bool {
	return IsNaN(v.X) || IsNaN(v.Y) || IsNaN(v.Z)
}
