// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"github.com/mediaforge/spatial/space"
)

// GridConfig arranges items into a regular grid on the floor plane.
type GridConfig struct {

	// Columns is the column count; rows follow from the item count.
	Columns int

	// Spacing is the uniform distance between grid cells.
	Spacing float32

	// Center translates the grid so its centroid lands on the origin.
	Center bool
}

func (cf *GridConfig) Strategy() Strategy { return Grid }

func (cf *GridConfig) Validate() error {
	if cf.Columns <= 0 {
		return fmt.Errorf("%w: gridColumns must be positive, got %d", ErrInvalidConfig, cf.Columns)
	}
	if cf.Spacing <= 0 {
		return fmt.Errorf("%w: gridSpacing must be positive, got %g", ErrInvalidConfig, cf.Spacing)
	}
	return nil
}

func (cf *GridConfig) apply(items []*space.Item) {
	for i, it := range items {
		it.Position.X = cf.Spacing * float32(i%cf.Columns)
		it.Position.Z = cf.Spacing * float32(i/cf.Columns)
	}
	if !cf.Center || len(items) == 0 {
		return
	}
	var cx, cz float32
	for _, it := range items {
		cx += it.Position.X
		cz += it.Position.Z
	}
	cx /= float32(len(items))
	cz /= float32(len(items))
	for _, it := range items {
		it.Position.X -= cx
		it.Position.Z -= cz
	}
}
