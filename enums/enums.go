// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the helper functions that back the
// methods of generated enum types: string conversion, descriptions,
// value lists, and text marshaling.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// Enumer is the constraint for the concrete value types of enums.
type Enumer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// String returns the name of the given enum value from the given map.
// If the value has no name, the decimal integer form is returned.
func String[T Enumer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum pointer to the value named s in valueMap.
// It returns an error naming typeName if s is not a valid name, in which
// case the value is left unchanged.
func SetString[T Enumer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString], but matches s against the
// lower-cased names in valueMap, so that names are case insensitive.
func SetStringLower[T Enumer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	ls := strings.ToLower(s)
	for k, val := range valueMap {
		if strings.ToLower(k) == ls {
			*i = val
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value from the given map.
// If there is no description, the name of the value is returned.
func Desc[T interface {
	Enumer
	fmt.Stringer
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values converts the given slice of enum values into a slice of [Enum].
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// UnmarshalText sets the given enum from its text representation,
// trimming surrounding whitespace. Unlike [SetString] the error is
// wrapped with the offending text for configuration diagnostics.
func UnmarshalText(i EnumSetter, text []byte, typeName string) error {
	s := strings.TrimSpace(string(text))
	if err := i.SetString(s); err != nil {
		return fmt.Errorf("enums.UnmarshalText: %s: %w", typeName, err)
	}
	return nil
}
