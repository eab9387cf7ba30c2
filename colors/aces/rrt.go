// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aces

import "cogentcore.org/tonemap/math32"

// Constants of the reference rendering transform stages.
const (
	// GlowGain is the maximum gain of the glow module.
	GlowGain = 0.05

	// GlowMid is the luma proxy at which the glow gain is halved.
	GlowMid = 0.08

	// RedScale is the amount the red modifier keeps of the
	// distance to [RedPivot].
	RedScale = 0.82

	// RedPivot is the value the red channel is pulled toward.
	RedPivot = 0.03

	// RedHue is the hue, in degrees, at the center of the red modifier.
	RedHue = 0

	// RedWidth is the full width, in degrees, of the red modifier falloff.
	RedWidth = 135

	// RRTSaturation is the blend factor of the global desaturation.
	RRTSaturation = 0.96

	// ODTSaturation is the blend factor of the output desaturation.
	ODTSaturation = 0.93

	// DimSurroundGamma is the luminance gamma of the dark to dim
	// surround compensation.
	DimSurroundGamma = 0.9811

	// ycRadiusWeight makes pure red, green and blue have a luma proxy
	// close to that of a neutral of the same value.
	ycRadiusWeight = 1.75
)

// Saturation returns the ACES saturation of rgb:
// (max(max3, 1e-5) - max(min3, 1e-5)) / max(max3, 1e-2),
// which is in [0, 1] for non-negative input and 0 for black.
func Saturation(rgb math32.Vector3) float32 {
	const tiny = 1e-5
	mi := rgb.Min3()
	ma := rgb.Max3()
	return (math32.Max(ma, tiny) - math32.Max(mi, tiny)) / math32.Max(ma, 1e-2)
}

// YC returns a luminance proxy of rgb, approximately Y + K * chroma.
// Surfaces of constant YC are cones around the neutral axis, and
// YC(1, 1, 1) == 1.
func YC(rgb math32.Vector3) float32 {
	r, g, b := rgb.X, rgb.Y, rgb.Z
	// the radicand is non-negative for real input; rounding can take it
	// just below zero for neutrals.
	chroma := math32.Sqrt(math32.Max(b*(b-g)+g*(g-r)+r*(r-b), 0))
	return (b + g + r + ycRadiusWeight*chroma) / 3
}

// SigmoidShaper is a sigmoid from [-2, 2] to [0, 1], with
// SigmoidShaper(0) == 0.5.
func SigmoidShaper(x float32) float32 {
	t := math32.Max(1-math32.Abs(x/2), 0)
	y := 1 + math32.Sign0(x)*(1-t*t)
	return y / 2
}

// GlowFwd returns the glow gain for the luma proxy ycIn:
// the full glowGainIn at or below 2/3 glowMid, zero at or above
// 2 glowMid, and interpolated in between.
func GlowFwd(ycIn, glowGainIn, glowMid float32) float32 {
	switch {
	case ycIn <= 2.0/3.0*glowMid:
		return glowGainIn
	case ycIn >= 2*glowMid:
		return 0
	}
	return glowGainIn * (glowMid/ycIn - 0.5)
}

// Hue returns the geometric hue angle of rgb in degrees, in [0, 360).
// The hue of a neutral (all channels exactly equal) is undefined,
// and is returned as 0.
func Hue(rgb math32.Vector3) float32 {
	var hue float32
	if !(rgb.X == rgb.Y && rgb.Y == rgb.Z) {
		hue = math32.RadToDeg(math32.Atan2(math32.Sqrt3*(rgb.Y-rgb.Z), 2*rgb.X-rgb.Y-rgb.Z))
	}
	if hue < 0 {
		hue += 360
	}
	// a tiny negative angle plus 360 rounds to 360 in float32
	if hue >= 360 {
		hue -= 360
	}
	return hue
}

// CenterHue returns hue relative to centerH, wrapped into [-180, 180].
func CenterHue(hue, centerH float32) float32 {
	hueCentered := hue - centerH
	if hueCentered < -180 {
		hueCentered += 360
	} else if hueCentered > 180 {
		hueCentered -= 360
	}
	return hueCentered
}

// Glow applies the glow module: dark, saturated colors are
// brightened by up to [GlowGain]. saturation is the [Saturation]
// of c, which the pipeline computes once and shares with [RedModifier].
func Glow(c AP0, saturation float32) AP0 {
	v := c.V()
	s := SigmoidShaper((saturation - 0.4) / 0.2)
	addedGlow := 1 + GlowFwd(YC(v), GlowGain*s, GlowMid)
	return AP0FromVector(v.MulScalar(addedGlow))
}

// RedModifier pulls the red channel of reddish hues toward
// [RedPivot], in proportion to saturation. Only red is modified.
// saturation is that of the color before [Glow], not of c: glow
// scales c, which changes the saturation of dark colors.
func RedModifier(c AP0, saturation float32) AP0 {
	centeredHue := CenterHue(Hue(c.V()), RedHue)
	hueWeight := math32.Sq(math32.Smoothstep(0, 1, 1-math32.Abs(2*centeredHue/RedWidth)))
	c.R += hueWeight * saturation * (RedPivot - c.R) * (1 - RedScale)
	return c
}

// Desaturate blends c toward its own luminance, keeping
// the fraction amount of the original color.
func Desaturate(c AP1, amount float32) AP1 {
	lum := math32.Vector3Scalar(c.Luminance())
	return AP1FromVector(lum.Mix(c.V(), amount))
}

// RRTODTFit applies the rational fit of the reference rendering
// transform combined with the output transform for a 100 nit
// monitor in a dim surround, per channel.
func RRTODTFit(c AP1) AP1 {
	const (
		a  = 2.785085
		b  = 0.107772
		cc = 2.936045
		d  = 0.887122
		e  = 0.806889
	)
	return AP1FromVector(c.V().Map(func(x float32) float32 {
		return (x * (a*x + b)) / (x*(cc*x+d) + e)
	}))
}

// DarkToDimSurround compensates for viewing in a dim rather than
// dark surround, by applying [DimSurroundGamma] to the luminance
// while keeping chromaticity.
func DarkToDimSurround(c AP1) AP1 {
	xyY := c.XYZ().XyY()
	xyY.Lum = math32.Pow(math32.Clamp(xyY.Lum, 0, math32.HalfMax), DimSurroundGamma)
	return xyY.XYZ().AP1()
}
