// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"fmt"

	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/math32"
)

// operatorFuncs are the single color operators. [ACES] is not
// here, because it depends on the brightness match option.
var operatorFuncs = [OperatorsN]Func{
	Linear:       LinearOp,
	Reinhard:     ReinhardOp,
	Unreal:       UnrealOp,
	FilmicALU:    FilmicALUOp,
	ACESSRGB:     ACESSRGBOp,
	DisplayRange: DisplayRangeOp,
}

// FuncFor returns the function of the given operator. brightnessMatch
// is passed to [ACESOp], and ignored by the other operators.
// It returns an error if op is not a known operator.
func FuncFor(op Operators, brightnessMatch bool) (Func, error) {
	if op < 0 || op >= OperatorsN {
		return nil, fmt.Errorf("tonemap.FuncFor: invalid operator %v", op)
	}
	if op == ACES {
		if brightnessMatch {
			return acesMatched, nil
		}
		return acesUnmatched, nil
	}
	return operatorFuncs[op], nil
}

func acesMatched(x aces.LinearSRGB) aces.LinearSRGB   { return ACESOp(x, true) }
func acesUnmatched(x aces.LinearSRGB) aces.LinearSRGB { return ACESOp(x, false) }

// Mapper applies one resolved tone mapping operator.
// It is immutable, and safe for concurrent use.
// Use [Config.Resolve] to make a new one.
type Mapper struct {
	op              Operators
	brightnessMatch bool
	fn              Func
}

// Map returns the tone mapped value of x. The result of the operator
// is returned unmodified: it is not clamped or gamma encoded.
func (m *Mapper) Map(x aces.LinearSRGB) aces.LinearSRGB {
	return m.fn(x)
}

// Operator returns the operator that the mapper applies.
func (m *Mapper) Operator() Operators { return m.op }

// BrightnessMatch returns whether the [ACES] brightness match is on.
func (m *Mapper) BrightnessMatch() bool { return m.brightnessMatch }

// BakesGamma reports whether the mapped output is already display encoded.
func (m *Mapper) BakesGamma() bool { return m.op.BakesGamma() }

// MapSlice tone maps pix in place, which holds interleaved
// R, G, B values. It returns an error, without modifying pix,
// if the length of pix is not a multiple of 3.
func (m *Mapper) MapSlice(pix []float32) error {
	if len(pix)%3 != 0 {
		return fmt.Errorf("tonemap.Mapper.MapSlice: length %d is not a multiple of 3", len(pix))
	}
	var v math32.Vector3
	for i := 0; i < len(pix); i += 3 {
		v.FromSlice(pix, i)
		m.fn(aces.SRGBFromVector(v)).V().ToSlice(pix, i)
	}
	return nil
}
