// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"
	"os"

	"github.com/mediaforge/spatial/lod"
	"github.com/pelletier/go-toml/v2"
)

// Config is the engine configuration a host can load from a TOML file:
// detail thresholds and environment defaults. Thresholds are
// configuration, never hardcoded per object type.
type Config struct {

	// LOD are the distance thresholds for detail classification.
	LOD lod.Thresholds `toml:"lod"`

	// FloorSize is the default environment floor side length.
	FloorSize float32 `toml:"floor_size"`
}

// Defaults sets the standard configuration.
func (cf *Config) Defaults() {
	cf.LOD.Defaults()
	cf.FloorSize = 100
}

// OpenConfig loads configuration from the given TOML file, applying
// defaults for anything the file does not set.
func OpenConfig(filename string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, cf); err != nil {
		return nil, fmt.Errorf("space.OpenConfig: %s: %w", filename, err)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

// Validate rejects configurations that would break classification.
func (cf *Config) Validate() error {
	th := cf.LOD
	if th.Full <= 0 || th.High <= th.Full || th.Medium <= th.High || th.Far <= th.Medium {
		return fmt.Errorf("space.Config: lod thresholds must be ordered 0 < full < high < medium < far, got %+v", th)
	}
	if cf.FloorSize <= 0 {
		return fmt.Errorf("space.Config: floor_size must be positive, got %g", cf.FloorSize)
	}
	return nil
}
