// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"testing"

	"cogentcore.org/tonemap/base/tolassert"
	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/math32"
	"github.com/stretchr/testify/assert"
)

func TestReinhardWeighted(t *testing.T) {
	in := aces.SRGB(0.2, 0.5, 0.1)
	w := ReinhardWeighted(in, 1)
	tolassert.EqualVector3Tol(t, math32.Vec3(0.2/1.5, 0.5/1.5, 0.1/1.5), w.V(), 1e-6)
	tolassert.EqualVector3Tol(t, in.V(), ReinhardWeightedInvert(w).V(), 1e-5)

	// the weight scales the result
	w2 := ReinhardWeighted(in, 0.25)
	tolassert.EqualVector3Tol(t, w.V().MulScalar(0.25), w2.V(), 1e-6)

	tolassert.EqualVector3(t, math32.Vector3{}, ReinhardWeighted(gray(0), 1).V())
	tolassert.EqualVector3(t, math32.Vector3{}, ReinhardWeightedInvert(gray(0)).V())
}

func TestReinhardWeightedRoundTrip(t *testing.T) {
	for _, in := range []aces.LinearSRGB{
		gray(0.001), gray(0.18), gray(1), gray(20),
		aces.SRGB(4, 0.1, 0), aces.SRGB(0, 0, 0.9), aces.SRGB(0.3, 7, 2),
	} {
		w := ReinhardWeighted(in, 1)
		assert.Less(t, w.V().Max3(), float32(1), "%v", in)
		back := ReinhardWeightedInvert(w)
		tol := 1e-5 * math32.Max(1, in.V().Max3())
		tolassert.EqualVector3Tol(t, in.V(), back.V(), tol, "%v", in)
	}
}
