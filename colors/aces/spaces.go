// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aces provides the color spaces, transform matrices, and
// scalar primitives of the Academy Color Encoding System reference
// rendering transform, as used by tone mapping operators.
//
// Each color space has its own type, so that a color in one space
// cannot be passed where another space is expected without an
// explicit conversion. All functions are pure and safe for
// concurrent use.
package aces

import "cogentcore.org/tonemap/math32"

// LinearSRGB is a linear (not gamma encoded) color with Rec.709 / sRGB
// primaries and a D65 white point. This is the space of the HDR color
// produced by the renderer and of the LDR color given to the display.
type LinearSRGB struct {
	R, G, B float32
}

// AP0 is a color in the ACES 2065-1 space, with AP0 primaries
// and the ACES (~D60) white point.
type AP0 struct {
	R, G, B float32
}

// AP1 is a color in the ACEScg rendering space, with AP1 primaries
// and the ACES (~D60) white point.
type AP1 struct {
	R, G, B float32
}

// XYZ is a CIE 1931 XYZ tristimulus value.
type XYZ struct {
	X, Y, Z float32
}

// XyY is a CIE xyY chromaticity with luminance Y.
type XyY struct {
	X, Y, Lum float32
}

// SRGB returns a new [LinearSRGB] color.
func SRGB(r, g, b float32) LinearSRGB { return LinearSRGB{r, g, b} }

// SRGBFromVector returns the [LinearSRGB] color with the components of v.
func SRGBFromVector(v math32.Vector3) LinearSRGB { return LinearSRGB{v.X, v.Y, v.Z} }

// AP0FromVector returns the [AP0] color with the components of v.
func AP0FromVector(v math32.Vector3) AP0 { return AP0{v.X, v.Y, v.Z} }

// AP1FromVector returns the [AP1] color with the components of v.
func AP1FromVector(v math32.Vector3) AP1 { return AP1{v.X, v.Y, v.Z} }

// XYZFromVector returns the [XYZ] value with the components of v.
func XYZFromVector(v math32.Vector3) XYZ { return XYZ{v.X, v.Y, v.Z} }

// V returns the color as a vector.
func (c LinearSRGB) V() math32.Vector3 { return math32.Vec3(c.R, c.G, c.B) }

// V returns the color as a vector.
func (c AP0) V() math32.Vector3 { return math32.Vec3(c.R, c.G, c.B) }

// V returns the color as a vector.
func (c AP1) V() math32.Vector3 { return math32.Vec3(c.R, c.G, c.B) }

// V returns the value as a vector.
func (c XYZ) V() math32.Vector3 { return math32.Vec3(c.X, c.Y, c.Z) }

// V returns the value as a vector of x, y, Y.
func (c XyY) V() math32.Vector3 { return math32.Vec3(c.X, c.Y, c.Lum) }

// AP0 converts the color to the [AP0] space.
func (c LinearSRGB) AP0() AP0 { return AP0FromVector(SRGBToAP0.MulVector3(c.V())) }

// AP1 converts the color to the [AP1] space.
func (c LinearSRGB) AP1() AP1 { return AP1FromVector(SRGBToAP1.MulVector3(c.V())) }

// AP1 converts the color to the [AP1] space.
func (c AP0) AP1() AP1 { return AP1FromVector(AP0ToAP1.MulVector3(c.V())) }

// AP0 converts the color to the [AP0] space.
func (c AP1) AP0() AP0 { return AP0FromVector(AP1ToAP0.MulVector3(c.V())) }

// XYZ converts the color to [XYZ].
func (c AP1) XYZ() XYZ { return XYZFromVector(AP1ToXYZ.MulVector3(c.V())) }

// LinearSRGB converts the color to [LinearSRGB], including the
// chromatic adaptation from the ACES white to D65.
func (c AP1) LinearSRGB() LinearSRGB { return SRGBFromVector(AP1ToSRGB.MulVector3(c.V())) }

// AP1 converts the value to the [AP1] space.
func (c XYZ) AP1() AP1 { return AP1FromVector(XYZToAP1.MulVector3(c.V())) }

// chromaticityFloor bounds the denominators of the xyY conversions
// so that black does not divide by zero.
const chromaticityFloor = 1e-5

// XyY converts the value to chromaticity coordinates plus luminance.
func (c XYZ) XyY() XyY {
	divisor := math32.Max(c.X+c.Y+c.Z, chromaticityFloor)
	return XyY{c.X / divisor, c.Y / divisor, c.Y}
}

// XYZ converts the chromaticity back to tristimulus values.
func (c XyY) XYZ() XYZ {
	m := c.Lum / math32.Max(c.Y, chromaticityFloor)
	return XYZ{c.X * m, c.Lum, (1 - c.X - c.Y) * m}
}
