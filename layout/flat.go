// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/space"
)

// FlatConfig scatters items on the floor near their original X/Z
// positions, optionally enforcing a minimum pairwise planar distance
// and clamping into a rectangular bound. Elevation is untouched.
type FlatConfig struct {

	// Spacing is the minimum pairwise planar distance enforced when
	// AvoidCollisions is set.
	Spacing float32

	// AvoidCollisions nudges items apart until every pair satisfies
	// Spacing.
	AvoidCollisions bool

	// RespectBounds clamps final positions into
	// [-Width/2, Width/2] x [-Depth/2, Depth/2] on the floor plane.
	RespectBounds bool

	// Width and Depth are the bound extents; required when
	// RespectBounds is set.
	Width float32
	Depth float32
}

func (cf *FlatConfig) Strategy() Strategy { return Flat }

func (cf *FlatConfig) Validate() error {
	if cf.Spacing < 0 {
		return fmt.Errorf("%w: flat spacing must not be negative, got %g", ErrInvalidConfig, cf.Spacing)
	}
	if cf.RespectBounds && (cf.Width <= 0 || cf.Depth <= 0) {
		return fmt.Errorf("%w: flat bounds must be positive, got %g x %g", ErrInvalidConfig, cf.Width, cf.Depth)
	}
	return nil
}

// nudgeIterations bounds the pairwise resolution loop per item so
// degenerate input (all items at one point) cannot loop forever; the
// spiral escape below guarantees a valid position afterwards.
const nudgeIterations = 64

func (cf *FlatConfig) apply(items []*space.Item) {
	if cf.AvoidCollisions && cf.Spacing > 0 {
		for i := 1; i < len(items); i++ {
			cf.resolve(items, i)
		}
	}
	if cf.RespectBounds {
		for _, it := range items {
			it.Position.X = math32.Clamp(it.Position.X, -cf.Width/2, cf.Width/2)
			it.Position.Z = math32.Clamp(it.Position.Z, -cf.Depth/2, cf.Depth/2)
		}
	}
}

// resolve moves item i until it keeps Spacing from every earlier item.
// Earlier items are already settled, so the pass is O(n²) overall.
func (cf *FlatConfig) resolve(items []*space.Item, i int) {
	it := items[i]
	for iter := 0; iter < nudgeIterations; iter++ {
		j := cf.violating(items, i)
		if j < 0 {
			return
		}
		// push i away from j to exactly the required distance
		other := items[j].Position
		dir := math32.Vec3(it.Position.X-other.X, 0, it.Position.Z-other.Z)
		if dir.Length() == 0 {
			// identical positions: pick a deterministic direction per index
			ang := float32(i) * 2.399963 // golden angle keeps directions spread
			dir = math32.Vec3(math32.Cos(ang), 0, math32.Sin(ang))
		}
		dir = dir.Normal().MulScalar(cf.Spacing * 1.001)
		it.Position.X = other.X + dir.X
		it.Position.Z = other.Z + dir.Z
	}
	// bounded nudging failed: probe an outward spiral around the
	// original position, which always finds free floor
	orig := it.Position
	for r := cf.Spacing; ; r += cf.Spacing / 2 {
		for _, ang := range spiralAngles {
			it.Position.X = orig.X + r*math32.Cos(ang)
			it.Position.Z = orig.Z + r*math32.Sin(ang)
			if cf.violating(items, i) < 0 {
				return
			}
		}
	}
}

var spiralAngles = func() []float32 {
	const n = 16
	angs := make([]float32, n)
	for i := range angs {
		angs[i] = 2 * math32.Pi * float32(i) / n
	}
	return angs
}()

// violating returns the index of an earlier item closer than Spacing
// to item i in the floor plane, or -1 when the constraint holds.
func (cf *FlatConfig) violating(items []*space.Item, i int) int {
	for j := 0; j < i; j++ {
		if geom.PlanarDistance(items[i].Position, items[j].Position) < cf.Spacing {
			return j
		}
	}
	return -1
}
