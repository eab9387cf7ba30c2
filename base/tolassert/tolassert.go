// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// and color vectors with tolerance (in other words, it checks whether numbers
// are about equal).
package tolassert

import (
	"cogentcore.org/tonemap/math32"
	"github.com/stretchr/testify/assert"
)

// Float is a type constraint for all floating point types.
type Float interface {
	~float32 | ~float64
}

// DefaultTol is the tolerance used by [Equal] and [EqualVector3].
const DefaultTol = 0.001

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}

// EqualVector3 asserts that each component of the two vectors is about equal,
// using a default tolerance of 0.001.
func EqualVector3(t assert.TestingT, expected, actual math32.Vector3, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualVector3Tol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualVector3Tol asserts that each component of the two vectors is about equal,
// using the given tolerance value. A NaN component never matches.
func EqualVector3Tol(t assert.TestingT, expected, actual math32.Vector3, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	ok := EqualTol(t, expected.X, actual.X, tolerance, msgAndArgs...)
	ok = EqualTol(t, expected.Y, actual.Y, tolerance, msgAndArgs...) && ok
	return EqualTol(t, expected.Z, actual.Z, tolerance, msgAndArgs...) && ok
}
