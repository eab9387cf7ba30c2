// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"fmt"

	"cogentcore.org/tonemap/base/errors"
)

// Tiers are the device capability tiers that select
// the default tone mapping operator.
type Tiers int32

const (
	// Desktop is a device with a discrete or capable integrated GPU.
	Desktop Tiers = iota

	// Mobile is a phone or tablet class device, with limited shading throughput.
	Mobile
)

// DefaultOperator returns the operator used on the tier when
// no operator is chosen explicitly: [Unreal] on [Mobile],
// and [ACES] everywhere else.
func (t Tiers) DefaultOperator() Operators {
	if t == Mobile {
		return Unreal
	}
	return ACES
}

// Config is the tone mapping configuration, which is resolved once
// into a [Mapper] by [Config.Resolve].
type Config struct {

	// Tier is the device tier, which determines the operator
	// unless Override is set.
	Tier Tiers `toml:"tier" yaml:"tier"`

	// Operator is the operator to use when Override is set.
	Operator Operators `toml:"operator" yaml:"operator"`

	// Override uses Operator instead of the tier default.
	Override bool `toml:"override" yaml:"override"`

	// BrightnessMatch multiplies the color by 1/0.6 in the
	// [ACES] pipeline before the RRT + ODT fit, so that its
	// output level matches [ACESSRGB]. It only affects [ACES].
	BrightnessMatch bool `toml:"brightness_match" yaml:"brightness_match"`
}

// NewConfig returns a new [Config] with default values.
func NewConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values: the desktop tier with
// no override, and brightness matching on.
func (c *Config) Defaults() {
	c.Tier = Desktop
	c.Operator = ACES
	c.Override = false
	c.BrightnessMatch = true
}

// SelectedOperator returns the operator that the configuration selects:
// Operator if Override is set, and otherwise the default for Tier.
func (c *Config) SelectedOperator() Operators {
	if c.Override {
		return c.Operator
	}
	return c.Tier.DefaultOperator()
}

// Resolve returns a [Mapper] for the selected operator.
// It returns an error if the tier or the operator is not a known value.
func (c *Config) Resolve() (*Mapper, error) {
	if c.Tier < 0 || c.Tier >= TiersN {
		return nil, errors.Log(fmt.Errorf("tonemap.Config.Resolve: invalid tier %v", c.Tier))
	}
	op := c.SelectedOperator()
	fn, err := FuncFor(op, c.BrightnessMatch)
	if err != nil {
		return nil, errors.Log(err)
	}
	return &Mapper{op: op, brightnessMatch: c.BrightnessMatch, fn: fn}, nil
}
