// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/math32"
)

// MiddleGray is the scene luminance of an 18% reflectance.
const MiddleGray = 0.18

// MiddleGrayStop is the index of [DebugColors] that shows middle gray.
const MiddleGrayStop = 5

// DebugColors is the ramp shown by [DisplayRangeOp], one color per
// exposure stop from 5 stops below middle gray (black) to 10 stops
// above (white). The last entry repeats white, so that interpolation
// at the top stop can read index+1.
var DebugColors = [17]math32.Vector3{
	math32.Vec3(0, 0, 0),             // black
	math32.Vec3(0, 0, 0.1647),        // darkest blue
	math32.Vec3(0, 0, 0.3647),        // darker blue
	math32.Vec3(0, 0, 0.6647),        // dark blue
	math32.Vec3(0, 0, 0.9647),        // blue
	math32.Vec3(0, 0.9255, 0.9255),   // cyan
	math32.Vec3(0, 0.5647, 0),        // dark green
	math32.Vec3(0, 0.7843, 0),        // green
	math32.Vec3(1, 1, 0),             // yellow
	math32.Vec3(0.90588, 0.75294, 0), // yellow-orange
	math32.Vec3(1, 0.5647, 0),        // orange
	math32.Vec3(1, 0, 0),             // bright red
	math32.Vec3(0.8392, 0, 0),        // red
	math32.Vec3(1, 0, 1),             // magenta
	math32.Vec3(0.6, 0.3333, 0.7882), // purple
	math32.Vec3(1, 1, 1),             // white
	math32.Vec3(1, 1, 1),             // white
}

// DisplayRangeStop returns the position of x on the [DebugColors] ramp,
// log2(luminance/0.18) + 5 clamped to [0, 15]. Black and non-finite
// luminance map to 0.
func DisplayRangeStop(x aces.LinearSRGB) float32 {
	v := math32.Log2(x.Luminance()/MiddleGray) + MiddleGrayStop
	if !(v > 0) { // also NaN
		return 0
	}
	return math32.Min(v, 15)
}

// DisplayRangeOp maps the exposure of x relative to middle gray onto
// the [DebugColors] ramp, interpolating linearly between stops.
// Middle gray is cyan; each stop above or below shifts the color.
func DisplayRangeOp(x aces.LinearSRGB) aces.LinearSRGB {
	v := DisplayRangeStop(x)
	index := int(v)
	return aces.SRGBFromVector(DebugColors[index].Mix(DebugColors[index+1], v-float32(index)))
}
