// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"sort"
	"time"

	"github.com/mediaforge/spatial/space"
)

// TimeField selects the timestamp a [TimelineConfig] sorts by.
type TimeField string

const (
	// ByImported sorts by the asset import time (the default).
	ByImported TimeField = "imported"

	// ByCreated sorts by the item placement time.
	ByCreated TimeField = "created"
)

// Axis is a horizontal layout axis.
type Axis string

const (
	AxisX Axis = "x"
	AxisZ Axis = "z"
)

// TimelineConfig lays items chronologically along one axis at uniform
// spacing, leaving the other axes unchanged. Items without a usable
// timestamp sort as earliest, deterministically.
type TimelineConfig struct {

	// SortBy selects the timestamp field; empty means [ByImported].
	SortBy TimeField

	// Axis is the layout axis; empty means [AxisX].
	Axis Axis

	// Spacing is the uniform distance between consecutive items.
	Spacing float32
}

func (cf *TimelineConfig) Strategy() Strategy { return Timeline }

func (cf *TimelineConfig) Validate() error {
	switch cf.SortBy {
	case "", ByImported, ByCreated:
	default:
		return fmt.Errorf("%w: timeline sortBy must be %q or %q, got %q",
			ErrInvalidConfig, ByImported, ByCreated, cf.SortBy)
	}
	switch cf.Axis {
	case "", AxisX, AxisZ:
	default:
		return fmt.Errorf("%w: timeline axis must be %q or %q, got %q", ErrInvalidConfig, AxisX, AxisZ, cf.Axis)
	}
	if cf.Spacing <= 0 {
		return fmt.Errorf("%w: timelineSpacing must be positive, got %g", ErrInvalidConfig, cf.Spacing)
	}
	return nil
}

func (cf *TimelineConfig) apply(items []*space.Item) {
	// stable sort keeps placement order among equal (or missing)
	// timestamps deterministic; the zero time sorts earliest
	sort.SliceStable(items, func(i, j int) bool {
		return cf.timestamp(items[i]).Before(cf.timestamp(items[j]))
	})
	x0 := -0.5 * cf.Spacing * float32(len(items)-1)
	for i, it := range items {
		at := x0 + cf.Spacing*float32(i)
		if cf.Axis == AxisZ {
			it.Position.Z = at
		} else {
			it.Position.X = at
		}
	}
}

func (cf *TimelineConfig) timestamp(it *space.Item) time.Time {
	if cf.SortBy == ByCreated {
		return it.CreatedAt
	}
	return it.ImportedAt
}
