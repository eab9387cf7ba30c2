// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tonemap provides tone mapping operators, which compress
// linear high dynamic range color into the displayable [0, 1] range.
//
// Every operator is a pure function of one color, evaluated
// independently for each pixel. A [Config] selects a single operator,
// which [Config.Resolve] turns into a [Mapper] once, so that the
// choice is not re-evaluated per pixel.
//
// The weighted Reinhard pair [ReinhardWeighted] and
// [ReinhardWeightedInvert] is independent of the display operator,
// and is used to temporarily compress and later restore color in
// post-processing chains.
package tonemap

import (
	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/math32"
)

// Func is a tone mapping function from linear HDR color to
// linear (or, for operators that bake it in, display encoded) LDR color.
type Func func(x aces.LinearSRGB) aces.LinearSRGB

// Operators are the available tone mapping operators.
type Operators int32

const (
	// Linear does not compress the color at all.
	Linear Operators = iota

	// Reinhard divides by 1 + luminance, which keeps hue.
	Reinhard

	// Unreal is the curve of Unreal Engine 3, a fit of the
	// Filmic ALU curve. It includes the display gamma.
	Unreal

	// FilmicALU is the Hable / Duiker filmic curve used by
	// Uncharted 2. It includes the display gamma.
	FilmicALU

	// ACESSRGB is the Narkowicz fit of the ACES curve,
	// applied directly to sRGB channels.
	ACESSRGB

	// ACES is the ACES reference rendering and output transform
	// pipeline, through the ACES color spaces.
	ACES

	// DisplayRange is a debug operator that shows exposure
	// stops relative to middle gray as a color ramp.
	DisplayRange
)

// BakesGamma reports whether the output of the operator is already
// display encoded, so that no display transfer function
// should be applied to it.
func (op Operators) BakesGamma() bool {
	return op == Unreal || op == FilmicALU
}

// LinearOp returns x unchanged.
func LinearOp(x aces.LinearSRGB) aces.LinearSRGB {
	return x
}

// ReinhardOp returns x / (1 + luminance(x)).
// For non-negative input each channel is in [0, 1) and increases
// monotonically with its input.
func ReinhardOp(x aces.LinearSRGB) aces.LinearSRGB {
	return aces.SRGBFromVector(x.V().DivScalar(1 + x.Luminance()))
}

// UnrealOp returns x / (x + 0.155) * 1.019 per channel.
// The result is display encoded.
func UnrealOp(x aces.LinearSRGB) aces.LinearSRGB {
	return aces.SRGBFromVector(x.V().Map(func(v float32) float32 {
		return v / (v + 0.155) * 1.019
	}))
}

// FilmicALUOp returns the Filmic ALU curve per channel, after
// subtracting a 0.004 black floor. The result is display encoded.
func FilmicALUOp(x aces.LinearSRGB) aces.LinearSRGB {
	return aces.SRGBFromVector(x.V().Map(func(v float32) float32 {
		v = math32.Max(0, v-0.004)
		return (v * (6.2*v + 0.5)) / (v*(6.2*v+1.7) + 0.06)
	}))
}

// ACESSRGBOp returns the Narkowicz 2015 fit of the ACES curve,
// per channel, without any color space conversion. It is cheaper
// and less accurate than [ACESOp].
func ACESSRGBOp(x aces.LinearSRGB) aces.LinearSRGB {
	const (
		a = 2.51
		b = 0.03
		c = 2.43
		d = 0.59
		e = 0.14
	)
	return aces.SRGBFromVector(x.V().Map(func(v float32) float32 {
		return (v * (a*v + b)) / (v*(c*v+d) + e)
	}))
}
