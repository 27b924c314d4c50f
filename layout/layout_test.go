// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"testing"
	"time"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(n int) []*space.Item {
	items := make([]*space.Item, n)
	for i := range items {
		it := space.NewItem(fmt.Sprintf("asset-%d", i), space.Image)
		it.ID = fmt.Sprintf("item-%d", i)
		it.Position = math32.Vec3(float32(i)*0.1, 0, float32(i)*0.1)
		items[i] = it
	}
	return items
}

// every strategy must conserve item count and pass all non-position
// fields through unchanged
func TestPropertyPreservation(t *testing.T) {
	configs := []Config{
		&FlatConfig{Spacing: 2, AvoidCollisions: true},
		&ClusteredConfig{GroupBy: ByContentType, ClusterSpacing: 5, ItemSpacing: 1},
		&ElevatedConfig{ElevationLevels: 3, ItemsPerLevel: 3, LevelHeight: 2},
		&TimelineConfig{Spacing: 1.5},
		&GridConfig{Columns: 3, Spacing: 2},
	}
	for _, cfg := range configs {
		items := testItems(7)
		items[2].HoverEffect = true
		items[4].Visible = false
		orig := make([]space.Item, len(items))
		for i, it := range items {
			orig[i] = *it
		}

		out, err := Apply(items, cfg)
		require.NoError(t, err, "strategy %s", cfg.Strategy())
		assert.Len(t, out, len(items), "strategy %s", cfg.Strategy())

		// input not mutated in place
		for i, it := range items {
			assert.Equal(t, orig[i], *it, "strategy %s mutated input %d", cfg.Strategy(), i)
		}
		// identity and flags preserved on output
		byID := map[string]*space.Item{}
		for _, it := range out {
			byID[it.ID] = it
		}
		for _, o := range orig {
			got := byID[o.ID]
			require.NotNil(t, got, "strategy %s lost item %s", cfg.Strategy(), o.ID)
			assert.Equal(t, o.AssetID, got.AssetID)
			assert.Equal(t, o.AssetType, got.AssetType)
			assert.Equal(t, o.Visible, got.Visible)
			assert.Equal(t, o.Clickable, got.Clickable)
			assert.Equal(t, o.HoverEffect, got.HoverEffect)
			assert.Equal(t, o.Rotation, got.Rotation)
			assert.Equal(t, o.Scale, got.Scale)
		}
	}
}

func TestApplyEmptyAndSingle(t *testing.T) {
	configs := []Config{
		&FlatConfig{Spacing: 2, AvoidCollisions: true, RespectBounds: true, Width: 10, Depth: 10},
		&ClusteredConfig{GroupBy: BySize, ClusterSpacing: 5, ItemSpacing: 1},
		&ElevatedConfig{ElevationLevels: 3, ItemsPerLevel: 3, LevelHeight: 2},
		&TimelineConfig{Spacing: 1.5, Axis: AxisZ},
		&GridConfig{Columns: 3, Spacing: 2, Center: true},
	}
	for _, cfg := range configs {
		out, err := Apply(nil, cfg)
		require.NoError(t, err, "strategy %s", cfg.Strategy())
		assert.Empty(t, out)

		out, err = Apply(testItems(1), cfg)
		require.NoError(t, err, "strategy %s", cfg.Strategy())
		assert.Len(t, out, 1)
	}
}

func TestInvalidConfigs(t *testing.T) {
	bad := []Config{
		&FlatConfig{Spacing: -1},
		&FlatConfig{Spacing: 1, RespectBounds: true, Width: 0, Depth: 5},
		&ClusteredConfig{GroupBy: "color", ClusterSpacing: 5, ItemSpacing: 1},
		&ClusteredConfig{GroupBy: ByContentType, ClusterSpacing: 0, ItemSpacing: 1},
		&ElevatedConfig{ElevationLevels: 0, ItemsPerLevel: 3, LevelHeight: 2},
		&ElevatedConfig{ElevationLevels: 3, ItemsPerLevel: 3, LevelHeight: -2},
		&TimelineConfig{Spacing: 0},
		&TimelineConfig{Spacing: 1, Axis: "y"},
		&GridConfig{Columns: 0, Spacing: 2},
		&GridConfig{Columns: 3, Spacing: -2},
	}
	for _, cfg := range bad {
		_, err := Apply(testItems(3), cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig, "%T %+v", cfg, cfg)
	}
	_, err := Apply(testItems(3), nil)
	assert.Error(t, err)
}

func TestFlatSpacing(t *testing.T) {
	const spacing = float32(2)
	items := testItems(12) // originals bunched well under spacing
	out, err := Apply(items, &FlatConfig{Spacing: spacing, AvoidCollisions: true})
	require.NoError(t, err)

	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			d := geom.PlanarDistance(out[i].Position, out[j].Position)
			assert.GreaterOrEqual(t, d, spacing, "items %d and %d too close", i, j)
		}
		// elevation untouched
		assert.Equal(t, items[i].Position.Y, out[i].Position.Y)
	}
}

func TestFlatDegenerateIdenticalPositions(t *testing.T) {
	items := testItems(10)
	for _, it := range items {
		it.Position = math32.Vec3(3, 0, 3) // all stacked on one point
	}
	out, err := Apply(items, &FlatConfig{Spacing: 1, AvoidCollisions: true})
	require.NoError(t, err) // must terminate
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			assert.GreaterOrEqual(t, geom.PlanarDistance(out[i].Position, out[j].Position), float32(1))
		}
	}
}

func TestFlatRespectBounds(t *testing.T) {
	items := testItems(5)
	items[0].Position = math32.Vec3(100, 0, -100)
	out, err := Apply(items, &FlatConfig{Spacing: 0, RespectBounds: true, Width: 20, Depth: 20})
	require.NoError(t, err)
	for _, it := range out {
		assert.LessOrEqual(t, math32.Abs(it.Position.X), float32(10))
		assert.LessOrEqual(t, math32.Abs(it.Position.Z), float32(10))
	}
}

func TestClusteredTwoContentTypes(t *testing.T) {
	const clusterSpacing = float32(5)
	var items []*space.Item
	for i := 0; i < 4; i++ {
		items = append(items, space.NewItem(fmt.Sprintf("img-%d", i), space.Image))
	}
	for i := 0; i < 4; i++ {
		items = append(items, space.NewItem(fmt.Sprintf("vid-%d", i), space.Video))
	}
	out, err := Apply(items, &ClusteredConfig{
		GroupBy:        ByContentType,
		ClusterSpacing: clusterSpacing,
		ItemSpacing:    1,
	})
	require.NoError(t, err)

	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			d := geom.PlanarDistance(out[i].Position, out[j].Position)
			if out[i].AssetType == out[j].AssetType {
				assert.Less(t, d, clusterSpacing, "same-type items %d,%d spread too far", i, j)
			} else {
				assert.GreaterOrEqual(t, d, clusterSpacing, "cross-type items %d,%d too close", i, j)
			}
		}
	}
}

func TestClusteredBySize(t *testing.T) {
	items := testItems(6)
	for i, it := range items {
		if i < 3 {
			it.Scale = math32.Vec3(0.5, 0.5, 0.5)
		} else {
			it.Scale = math32.Vec3(2, 2, 2)
		}
	}
	out, err := Apply(items, &ClusteredConfig{GroupBy: BySize, ClusterSpacing: 6, ItemSpacing: 1})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			assert.GreaterOrEqual(t, geom.PlanarDistance(out[i].Position, out[j].Position), float32(6))
		}
	}
}

func TestElevatedTiers(t *testing.T) {
	const levelHeight = float32(3)
	out, err := Apply(testItems(9), &ElevatedConfig{
		ElevationLevels: 3, ItemsPerLevel: 3, LevelHeight: levelHeight,
	})
	require.NoError(t, err)

	counts := map[float32]int{}
	for _, it := range out {
		counts[it.Position.Y]++
	}
	require.Len(t, counts, 3, "expected exactly 3 distinct Y levels")
	for y, n := range counts {
		assert.Equal(t, 3, n, "level y=%g", y)
	}
	assert.Contains(t, counts, float32(0))
	assert.Contains(t, counts, levelHeight)
	assert.Contains(t, counts, 2*levelHeight)
}

func TestElevatedOverflowConserved(t *testing.T) {
	out, err := Apply(testItems(11), &ElevatedConfig{
		ElevationLevels: 2, ItemsPerLevel: 3, LevelHeight: 2,
	})
	require.NoError(t, err)
	assert.Len(t, out, 11)
	levels := map[float32]int{}
	for _, it := range out {
		levels[it.Position.Y]++
	}
	// 11 items at 3 per level spill onto a 4th tier beyond the 2 configured
	assert.Len(t, levels, 4)
	assert.Equal(t, 2, levels[3*2])
}

func TestTimelineOrdering(t *testing.T) {
	const spacing = float32(2)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	items := testItems(5)
	items[0].ImportedAt = base.AddDate(0, 2, 0)
	items[1].ImportedAt = base
	items[2].ImportedAt = base.AddDate(0, 1, 0)
	items[3].ImportedAt = time.Time{} // missing: sorts earliest
	items[4].ImportedAt = base.AddDate(0, 3, 0)

	out, err := Apply(items, &TimelineConfig{Spacing: spacing})
	require.NoError(t, err)

	// non-decreasing timestamps along X, uniform spacing
	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].ImportedAt.Before(out[i-1].ImportedAt))
		tolassert.Equal(t, spacing, out[i].Position.X-out[i-1].Position.X)
	}
	assert.Equal(t, "item-3", out[0].ID, "missing timestamp places first")

	// Z untouched on the X axis layout
	for _, it := range out {
		orig := items[0]
		for _, o := range items {
			if o.ID == it.ID {
				orig = o
			}
		}
		assert.Equal(t, orig.Position.Z, it.Position.Z)
	}
}

func TestTimelineZAxis(t *testing.T) {
	out, err := Apply(testItems(4), &TimelineConfig{Spacing: 1, Axis: AxisZ, SortBy: ByCreated})
	require.NoError(t, err)
	for i := 1; i < len(out); i++ {
		tolassert.Equal(t, 1, out[i].Position.Z-out[i-1].Position.Z)
	}
}

func TestGridLayout(t *testing.T) {
	const spacing = float32(2)
	out, err := Apply(testItems(9), &GridConfig{Columns: 3, Spacing: spacing})
	require.NoError(t, err)

	xs := map[float32]bool{}
	zs := map[float32]bool{}
	for _, it := range out {
		xs[it.Position.X] = true
		zs[it.Position.Z] = true
	}
	assert.Len(t, xs, 3)
	assert.Len(t, zs, 3)
}

func TestGridCentered(t *testing.T) {
	out, err := Apply(testItems(9), &GridConfig{Columns: 3, Spacing: 2, Center: true})
	require.NoError(t, err)
	var cx, cz float32
	for _, it := range out {
		cx += it.Position.X
		cz += it.Position.Z
	}
	tolassert.Equal(t, 0, cx/9)
	tolassert.Equal(t, 0, cz/9)
}
