// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/math32"
)

// BrightnessMatch is the exposure boost applied by [ACESOp] when
// brightness matching is on. It is not part of the ACES transform:
// it makes the output level of [ACESOp] comparable to [ACESSRGBOp],
// whose Narkowicz fit is of an ACES curve brightened by the same factor.
const BrightnessMatch = 1 / 0.6

// ACESOp applies the ACES reference rendering transform and a fit
// of the output device transform for an sRGB monitor in a dim surround.
// The stages run in a fixed order:
//
//  1. linear sRGB to AP0
//  2. glow module
//  3. red modifier, weighted by the saturation from before glow
//  4. AP0 to AP1, clamped to [0, HalfMax]
//  5. global desaturation
//  6. optional [BrightnessMatch] boost
//  7. RRT + ODT rational fit
//  8. dark to dim surround compensation
//  9. output desaturation
//  10. AP1 to linear sRGB
//
// Stage 4 is the only clamp; the glow and red stages can transiently
// push channels negative or above 1. The result has sRGB primaries but
// is still linear, so the caller applies the display transfer function.
func ACESOp(x aces.LinearSRGB, brightnessMatch bool) aces.LinearSRGB {
	ap0 := x.AP0()
	saturation := aces.Saturation(ap0.V())
	ap0 = aces.Glow(ap0, saturation)
	ap0 = aces.RedModifier(ap0, saturation)

	ap1 := aces.AP1FromVector(ap0.AP1().V().ClampScalar(0, math32.HalfMax))
	ap1 = aces.Desaturate(ap1, aces.RRTSaturation)
	if brightnessMatch {
		ap1 = aces.AP1FromVector(ap1.V().MulScalar(BrightnessMatch))
	}
	ap1 = aces.RRTODTFit(ap1)

	linearCV := aces.DarkToDimSurround(ap1)
	linearCV = aces.Desaturate(linearCV, aces.ODTSaturation)
	return linearCV.LinearSRGB()
}
