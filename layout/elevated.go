// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"github.com/mediaforge/spatial/space"
)

// ElevatedConfig stacks items onto horizontal tiers. When there are
// more items than ElevationLevels * ItemsPerLevel, overflow spills
// onto additional tiers above the configured count; no item is ever
// dropped.
type ElevatedConfig struct {

	// ElevationLevels is the configured tier count.
	ElevationLevels int

	// ItemsPerLevel is the capacity of each tier.
	ItemsPerLevel int

	// LevelHeight is the vertical distance between tiers.
	LevelHeight float32
}

func (cf *ElevatedConfig) Strategy() Strategy { return Elevated }

func (cf *ElevatedConfig) Validate() error {
	if cf.ElevationLevels <= 0 {
		return fmt.Errorf("%w: elevationLevels must be positive, got %d", ErrInvalidConfig, cf.ElevationLevels)
	}
	if cf.ItemsPerLevel <= 0 {
		return fmt.Errorf("%w: itemsPerLevel must be positive, got %d", ErrInvalidConfig, cf.ItemsPerLevel)
	}
	if cf.LevelHeight <= 0 {
		return fmt.Errorf("%w: levelHeight must be positive, got %g", ErrInvalidConfig, cf.LevelHeight)
	}
	return nil
}

func (cf *ElevatedConfig) apply(items []*space.Item) {
	for i, it := range items {
		level := i / cf.ItemsPerLevel // overflow naturally spills upward
		it.Position.Y = float32(level) * cf.LevelHeight
	}
}
