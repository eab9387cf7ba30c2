// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"fmt"
	"testing"

	"cogentcore.org/tonemap/base/tolassert"
	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/math32"
	"github.com/stretchr/testify/assert"
)

func gray(v float32) aces.LinearSRGB { return aces.SRGB(v, v, v) }

func TestZeroMapsToZero(t *testing.T) {
	for _, op := range OperatorsValues() {
		fn, err := FuncFor(op, true)
		assert.NoError(t, err)
		res := fn(gray(0))
		assert.False(t, res.V().HasNaN(), op.String())
		tolassert.EqualVector3Tol(t, math32.Vector3{}, res.V(), 1e-6, op.String())
	}
}

func TestNoNaN(t *testing.T) {
	inputs := []aces.LinearSRGB{
		gray(0), gray(1e-8), gray(0.18), gray(1), gray(100), gray(60000),
		aces.SRGB(1, 0, 0), aces.SRGB(0, 1, 0), aces.SRGB(0, 0, 1),
		aces.SRGB(0.5, 0.2, 0.1), aces.SRGB(10, 0, 0.01),
	}
	for _, op := range OperatorsValues() {
		fn, err := FuncFor(op, true)
		assert.NoError(t, err)
		for _, in := range inputs {
			assert.False(t, fn(in).V().HasNaN(), "%v %v", op, in)
		}
	}
}

func TestLinear(t *testing.T) {
	in := aces.SRGB(3, 0.5, 0)
	assert.Equal(t, in, LinearOp(in))
}

func TestReinhard(t *testing.T) {
	tolassert.EqualTol(t, 0.18/1.18, ReinhardOp(gray(0.18)).R, 1e-6)

	prev := float32(-1)
	for _, v := range []float32{0, 0.01, 0.1, 0.18, 0.5, 1, 2, 10, 100, 1000, 1e6} {
		res := ReinhardOp(gray(v))
		assert.Greater(t, res.R, prev, "monotonic at %g", v)
		assert.GreaterOrEqual(t, res.R, float32(0))
		assert.Less(t, res.R, float32(1))
		prev = res.R
	}

	// hue is kept: the channel ratios do not change
	c := ReinhardOp(aces.SRGB(0.8, 0.4, 0.2))
	tolassert.EqualTol(t, 2, c.R/c.G, 1e-5)
	tolassert.EqualTol(t, 2, c.G/c.B, 1e-5)
}

func TestReinhardChannelMonotonic(t *testing.T) {
	sweep := []float32{0, 0.01, 0.1, 0.18, 0.5, 1, 2, 10, 100, 1000}
	for ch := 0; ch < 3; ch++ {
		prev := float32(-1)
		for _, v := range sweep {
			var in [3]float32
			in[ch] = v
			in[(ch+1)%3] = 0.3
			in[(ch+2)%3] = 0.7
			res := ReinhardOp(aces.SRGB(in[0], in[1], in[2]))
			out := [3]float32{res.R, res.G, res.B}[ch]
			assert.GreaterOrEqual(t, out, prev, "channel %d at %g", ch, v)
			assert.GreaterOrEqual(t, out, float32(0))
			lum := res.Luminance()
			assert.GreaterOrEqual(t, lum, float32(0))
			assert.Less(t, lum, float32(1), "channel %d at %g", ch, v)
			prev = out
		}
	}

	// a lone saturated channel tends to 1 / its luma weight, not 1
	r := ReinhardOp(aces.SRGB(100, 0, 0)).R
	assert.Greater(t, r, float32(1))
	assert.Less(t, r, float32(1/0.2126))
}

func TestSimpleOperators(t *testing.T) {
	tolassert.EqualTol(t, 0.26689893, ACESSRGBOp(gray(0.18)).R, 1e-6)
	tolassert.EqualTol(t, 0.54752237, UnrealOp(gray(0.18)).G, 1e-6)
	tolassert.EqualTol(t, 0.50802833, FilmicALUOp(gray(0.18)).B, 1e-6)

	// the Filmic ALU black floor
	assert.Equal(t, float32(0), FilmicALUOp(gray(0.004)).R)
	assert.Equal(t, float32(0), FilmicALUOp(gray(0.001)).R)

	// per channel operators do not mix channels
	c := UnrealOp(aces.SRGB(0.18, 0, 1))
	tolassert.EqualTol(t, 0.54752237, c.R, 1e-6)
	assert.Equal(t, float32(0), c.G)
}

func TestBakesGamma(t *testing.T) {
	bakes := map[Operators]bool{Unreal: true, FilmicALU: true}
	for _, op := range OperatorsValues() {
		assert.Equal(t, bakes[op], op.BakesGamma(), op.String())
	}
}

func TestACES(t *testing.T) {
	tests := []struct {
		in      aces.LinearSRGB
		matched bool
		want    math32.Vector3
	}{
		{gray(0.18), true, math32.Vec3(0.2179556, 0.2179146, 0.2179038)},
		{gray(0.18), false, math32.Vec3(0.1078123, 0.1077889, 0.1077792)},
		{gray(1), true, math32.Vec3(0.7621578, 0.7621213, 0.7622395)},
		{aces.SRGB(0.5, 0.2, 0.1), true, math32.Vec3(0.5716524, 0.2629363, 0.1182285)},
		{gray(0), true, math32.Vec3(0, 0, 0)},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v/%v", test.in, test.matched), func(t *testing.T) {
			tolassert.EqualVector3Tol(t, test.want, ACESOp(test.in, test.matched).V(), 1e-4)
		})
	}
}

func TestACESDarkSaturated(t *testing.T) {
	// glow brightens this color, which changes its saturation; the
	// red modifier uses the saturation from before glow
	in := aces.SRGB(0.006, 0.0003, 0.0002)
	ap0 := in.AP0()
	saturation := aces.Saturation(ap0.V())
	ap0 = aces.RedModifier(aces.Glow(ap0, saturation), saturation)
	ap1 := aces.AP1FromVector(ap0.AP1().V().ClampScalar(0, math32.HalfMax))
	ap1 = aces.Desaturate(ap1, aces.RRTSaturation)
	ap1 = aces.AP1FromVector(ap1.V().MulScalar(BrightnessMatch))
	ap1 = aces.Desaturate(aces.DarkToDimSurround(aces.RRTODTFit(ap1)), aces.ODTSaturation)

	res := ACESOp(in, true)
	tolassert.EqualVector3Tol(t, ap1.LinearSRGB().V(), res.V(), 1e-7)
	tolassert.EqualTol(t, 0.0025067078, res.R, 1e-6)
}

func TestACESMonotonic(t *testing.T) {
	prev := float32(-1)
	for v := float32(0.001); v < 1000; v *= 1.5 {
		res := ACESOp(gray(v), true)
		assert.Greater(t, res.G, prev, "at %g", v)
		prev = res.G
	}
	// the fit asymptote is a / cc, and the output stays near it
	res := ACESOp(gray(60000), true)
	assert.False(t, res.V().HasNaN())
	assert.Less(t, res.G, float32(1.1))
}

func TestACESBrightnessMatch(t *testing.T) {
	// matching makes mid tones brighter, and not darker anywhere
	for _, v := range []float32{0.01, 0.18, 1, 4} {
		on := ACESOp(gray(v), true)
		off := ACESOp(gray(v), false)
		assert.Greater(t, on.G, off.G, "at %g", v)
	}
}

func TestDisplayRange(t *testing.T) {
	cyan := DebugColors[MiddleGrayStop]
	tolassert.EqualVector3(t, cyan, DisplayRangeOp(gray(MiddleGray)).V())
	tolassert.EqualVector3(t, math32.Vector3{}, DisplayRangeOp(gray(0)).V())
	tolassert.EqualVector3(t, math32.Vec3(1, 1, 1), DisplayRangeOp(gray(MiddleGray*1024)).V())
	tolassert.EqualVector3(t, math32.Vec3(1, 1, 1), DisplayRangeOp(gray(1e9)).V())

	// negative luminance clamps to black
	tolassert.EqualVector3(t, math32.Vector3{}, DisplayRangeOp(gray(-1)).V())

	// half a stop above middle gray is between cyan and dark green
	half := DisplayRangeOp(gray(MiddleGray * math32.Sqrt(2))).V()
	tolassert.EqualVector3(t, cyan.Mix(DebugColors[MiddleGrayStop+1], 0.5), half)

	for stop := 0; stop <= 15; stop++ {
		v := MiddleGray * math32.Pow(2, float32(stop-MiddleGrayStop))
		tolassert.EqualTol(t, float32(stop), DisplayRangeStop(gray(v)), 1e-4, "stop %d", stop)
	}
}

func TestDisplayRangeStopNaN(t *testing.T) {
	nan := math32.Sqrt(-1)
	assert.Equal(t, float32(0), DisplayRangeStop(gray(nan)))
}
