// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Matrix3 is a 3x3 matrix in row major order:
// m[3*r + c] is the element in the r'th row and c'th column.
// Color transform matrices are written in this order so that the
// literal reads the same as the published tables. Only the storage
// type comes from [f32.Mat3], which has no methods of its own.
type Matrix3 f32.Mat3

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Matrix3) At(r, c int) float32 {
	return m[3*r+c]
}

// Mul returns the matrix product m * b, so that
// m.Mul(b).MulVector3(v) == m.MulVector3(b.MulVector3(v)).
func (m Matrix3) Mul(b Matrix3) Matrix3 {
	var p Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p[3*r+c] = m[3*r+0]*b[3*0+c] + m[3*r+1]*b[3*1+c] + m[3*r+2]*b[3*2+c]
		}
	}
	return p
}

// MulVector3 returns the column vector v transformed by m.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Row returns row r as a vector.
func (m Matrix3) Row(r int) Vector3 {
	return Vector3{m[3*r], m[3*r+1], m[3*r+2]}
}

func (m Matrix3) String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f]\n", m[0], m[1], m[2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3], m[4], m[5])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[6], m[7], m[8])
	return str
}
