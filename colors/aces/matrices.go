// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aces

import "cogentcore.org/tonemap/math32"

// The color space transforms, in row major order, as published with the
// ACES reference implementation. The sRGB transforms include the Bradford
// chromatic adaptation between D65 and the ACES white point.
var (
	// SRGBToAP0 converts linear sRGB (D65) to ACES 2065-1.
	SRGBToAP0 = math32.Matrix3{
		0.4397010, 0.3829780, 0.1773350,
		0.0897923, 0.8134230, 0.0967616,
		0.0175440, 0.1115440, 0.8707040,
	}

	// SRGBToAP1 converts linear sRGB (D65) to ACEScg.
	// It equals AP0ToAP1 * SRGBToAP0 to the published precision.
	SRGBToAP1 = math32.Matrix3{
		0.61319, 0.33951, 0.04737,
		0.07021, 0.91634, 0.01345,
		0.02062, 0.10957, 0.86961,
	}

	// AP0ToAP1 converts ACES 2065-1 to ACEScg.
	AP0ToAP1 = math32.Matrix3{
		1.4514393161, -0.2365107469, -0.2149285693,
		-0.0765537734, 1.1762296998, -0.0996759264,
		0.0083161484, -0.0060324498, 0.9977163014,
	}

	// AP1ToAP0 converts ACEScg to ACES 2065-1.
	AP1ToAP0 = math32.Matrix3{
		0.6954522414, 0.1406786965, 0.1638690622,
		0.0447945634, 0.8596711185, 0.0955343182,
		-0.0055258826, 0.0040252103, 1.0015006723,
	}

	// AP1ToXYZ converts ACEScg to CIE XYZ.
	AP1ToXYZ = math32.Matrix3{
		0.6624541811, 0.1340042065, 0.1561876870,
		0.2722287168, 0.6740817658, 0.0536895174,
		-0.0055746495, 0.0040607335, 1.0103391003,
	}

	// XYZToAP1 converts CIE XYZ to ACEScg.
	XYZToAP1 = math32.Matrix3{
		1.6410233797, -0.3248032942, -0.2364246952,
		-0.6636628587, 1.6153315917, 0.0167563477,
		0.0117218943, -0.0082844420, 0.9883948585,
	}

	// AP1ToSRGB converts ACEScg to linear sRGB (D65). It is the
	// approximate inverse of AP0ToAP1 * SRGBToAP0: the product
	// differs from identity by less than 1e-3 per element.
	AP1ToSRGB = math32.Matrix3{
		1.70505, -0.62179, -0.08326,
		-0.13026, 1.14080, -0.01055,
		-0.02400, -0.12899, 1.15319,
	}
)

var (
	// LuminanceSRGB holds the Rec.709 luma weights of linear sRGB.
	LuminanceSRGB = math32.Vec3(0.2126, 0.7152, 0.0722)

	// LuminanceAP1 holds the luma weights of ACEScg, which is
	// the Y row of [AP1ToXYZ].
	LuminanceAP1 = math32.Vec3(0.2722287168, 0.6740817658, 0.0536895174)
)

// Luminance returns the luminance of the color.
func (c LinearSRGB) Luminance() float32 { return c.V().Dot(LuminanceSRGB) }

// Luminance returns the luminance of the color.
func (c AP1) Luminance() float32 { return c.V().Dot(LuminanceAP1) }
