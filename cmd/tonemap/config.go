// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tonemap/colors/tonemap"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the tonemap command, which can be
// loaded from a TOML or YAML file with the -config flag.
type Config struct {

	// Tonemap is the tone mapping operator configuration.
	Tonemap tonemap.Config `toml:"tonemap" yaml:"tonemap"`

	// Exposure is the exposure adjustment in stops, applied
	// before tone mapping by the image command.
	Exposure float32 `toml:"exposure" yaml:"exposure"`
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.Tonemap.Defaults()
	c.Exposure = 0
}

// OpenConfig loads the config file at path into c, decoding it as
// YAML for a .yaml or .yml extension and as TOML otherwise.
// Fields that the file does not set keep their values.
func OpenConfig(c *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		err = toml.Unmarshal(b, c)
	}
	if err != nil {
		return fmt.Errorf("tonemap: config file %q: %w", path, err)
	}
	return nil
}
