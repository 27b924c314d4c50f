// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout arranges an unordered set of placed items into one of
// five spatial layouts: flat floor scatter, content-type clusters,
// elevated tiers, chronological timelines, and regular grids.
//
// Every strategy is a pure function from items to repositioned items:
// the input slice is never mutated, item count is conserved, and every
// field other than position passes through unchanged. Malformed
// configuration is rejected at the boundary with a descriptive error
// rather than silently clamped.
package layout

import (
	"errors"

	baseerrors "cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
	"github.com/mediaforge/spatial/space"
)

// Strategy names a placement strategy.
type Strategy string

const (
	Flat      Strategy = "flat"
	Clustered Strategy = "clustered"
	Elevated  Strategy = "elevated"
	Timeline  Strategy = "timeline"
	Grid      Strategy = "grid"
)

// ErrInvalidConfig is wrapped by every config validation failure.
var ErrInvalidConfig = errors.New("layout: invalid config")

// Config is the per-strategy parameter set. The concrete types are
// [FlatConfig], [ClusteredConfig], [ElevatedConfig], [TimelineConfig]
// and [GridConfig]; each carries only what its strategy needs and is
// constructed per invocation, not stored.
type Config interface {

	// Strategy returns the strategy this config selects.
	Strategy() Strategy

	// Validate rejects malformed parameters with a descriptive error.
	Validate() error

	// apply repositions items in place. Items are already cloned by
	// [Apply], and config validity is already checked.
	apply(items []*space.Item)
}

// Apply arranges the given items with the given strategy config and
// returns the repositioned clones. The input slice and its items are
// never mutated. Empty input returns empty output; a single item is
// repositioned, never an error.
func Apply(items []*space.Item, cfg Config) ([]*space.Item, error) {
	if cfg == nil {
		return nil, errors.New("layout: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := cloneItems(items)
	cfg.apply(out)
	return out, nil
}

// cloneItems deep-copies the item slice so strategies can write
// positions freely while every other field passes through unchanged.
func cloneItems(items []*space.Item) []*space.Item {
	out := make([]*space.Item, len(items))
	for i, it := range items {
		ni := &space.Item{}
		baseerrors.Log(copier.CopyWithOption(ni, it, copier.Option{DeepCopy: true}))
		out[i] = ni
	}
	return out
}
