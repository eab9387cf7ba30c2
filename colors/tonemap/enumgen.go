// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"cogentcore.org/tonemap/enums"
)

var _OperatorsValues = []Operators{0, 1, 2, 3, 4, 5, 6}

// OperatorsN is the highest valid value for type Operators, plus one.
const OperatorsN Operators = 7

var _OperatorsValueMap = map[string]Operators{`Linear`: 0, `Reinhard`: 1, `Unreal`: 2, `FilmicALU`: 3, `ACESSRGB`: 4, `ACES`: 5, `DisplayRange`: 6}

var _OperatorsDescMap = map[Operators]string{0: `Linear does not compress the color at all.`, 1: `Reinhard divides by 1 + luminance, which keeps hue.`, 2: `Unreal is the curve of Unreal Engine 3, a fit of the Filmic ALU curve. It includes the display gamma.`, 3: `FilmicALU is the Hable / Duiker filmic curve used by Uncharted 2. It includes the display gamma.`, 4: `ACESSRGB is the Narkowicz fit of the ACES curve, applied directly to sRGB channels.`, 5: `ACES is the ACES reference rendering and output transform pipeline, through the ACES color spaces.`, 6: `DisplayRange is a debug operator that shows exposure stops relative to middle gray as a color ramp.`}

var _OperatorsMap = map[Operators]string{0: `Linear`, 1: `Reinhard`, 2: `Unreal`, 3: `FilmicALU`, 4: `ACESSRGB`, 5: `ACES`, 6: `DisplayRange`}

// String returns the string representation of this Operators value.
func (i Operators) String() string { return enums.String(i, _OperatorsMap) }

// SetString sets the Operators value from its string representation,
// case insensitively, and returns an error if the string is invalid.
func (i *Operators) SetString(s string) error {
	return enums.SetStringLower(i, s, _OperatorsValueMap, "Operators")
}

// Int64 returns the Operators value as an int64.
func (i Operators) Int64() int64 { return int64(i) }

// SetInt64 sets the Operators value from an int64.
func (i *Operators) SetInt64(in int64) { *i = Operators(in) }

// Desc returns the description of the Operators value.
func (i Operators) Desc() string { return enums.Desc(i, _OperatorsDescMap) }

// OperatorsValues returns all possible values for the type Operators.
func OperatorsValues() []Operators { return _OperatorsValues }

// Values returns all possible values for the type Operators.
func (i Operators) Values() []enums.Enum { return enums.Values(_OperatorsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Operators) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Operators) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Operators")
}

var _TiersValues = []Tiers{0, 1}

// TiersN is the highest valid value for type Tiers, plus one.
const TiersN Tiers = 2

var _TiersValueMap = map[string]Tiers{`Desktop`: 0, `Mobile`: 1}

var _TiersDescMap = map[Tiers]string{0: `Desktop is a device with a discrete or capable integrated GPU.`, 1: `Mobile is a phone or tablet class device, with limited shading throughput.`}

var _TiersMap = map[Tiers]string{0: `Desktop`, 1: `Mobile`}

// String returns the string representation of this Tiers value.
func (i Tiers) String() string { return enums.String(i, _TiersMap) }

// SetString sets the Tiers value from its string representation,
// case insensitively, and returns an error if the string is invalid.
func (i *Tiers) SetString(s string) error {
	return enums.SetStringLower(i, s, _TiersValueMap, "Tiers")
}

// Int64 returns the Tiers value as an int64.
func (i Tiers) Int64() int64 { return int64(i) }

// SetInt64 sets the Tiers value from an int64.
func (i *Tiers) SetInt64(in int64) { *i = Tiers(in) }

// Desc returns the description of the Tiers value.
func (i Tiers) Desc() string { return enums.Desc(i, _TiersDescMap) }

// TiersValues returns all possible values for the type Tiers.
func TiersValues() []Tiers { return _TiersValues }

// Values returns all possible values for the type Tiers.
func (i Tiers) Values() []enums.Enum { return enums.Values(_TiersValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Tiers) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Tiers) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Tiers")
}
