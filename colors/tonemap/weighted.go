// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import "cogentcore.org/tonemap/colors/aces"

// ReinhardWeighted compresses x by x * (weight / (max3(x) + 1)).
// It is used around filters that are sensitive to very bright
// samples, and is undone by [ReinhardWeightedInvert].
// With a weight of 1 the largest channel of the result is below 1
// for any non-negative input.
func ReinhardWeighted(x aces.LinearSRGB, weight float32) aces.LinearSRGB {
	v := x.V()
	return aces.SRGBFromVector(v.MulScalar(weight / (v.Max3() + 1)))
}

// ReinhardWeightedInvert undoes [ReinhardWeighted] with a weight of 1,
// returning x / (1 - max3(x)). The largest channel of x must be below 1,
// as it is for any output of ReinhardWeighted(c, 1) with non-negative c;
// otherwise the result is meaningless.
func ReinhardWeightedInvert(x aces.LinearSRGB) aces.LinearSRGB {
	v := x.V()
	return aces.SRGBFromVector(v.DivScalar(1 - v.Max3()))
}
