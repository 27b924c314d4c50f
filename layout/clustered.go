// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/space"
)

// GroupKey selects how [ClusteredConfig] buckets items.
type GroupKey string

const (
	// ByContentType groups items by their asset type.
	ByContentType GroupKey = "contentType"

	// BySize groups items into small / medium / large buckets derived
	// from their scale.
	BySize GroupKey = "size"
)

// ClusteredConfig gathers items of a kind around shared cluster
// centers: members stay within their cluster while distinct clusters
// keep at least ClusterSpacing apart.
type ClusteredConfig struct {

	// GroupBy selects the bucketing key.
	GroupBy GroupKey

	// ClusterSpacing is the minimum distance between items of
	// different clusters.
	ClusterSpacing float32

	// ItemSpacing is the spacing between members within a cluster.
	ItemSpacing float32
}

func (cf *ClusteredConfig) Strategy() Strategy { return Clustered }

func (cf *ClusteredConfig) Validate() error {
	if cf.GroupBy != ByContentType && cf.GroupBy != BySize {
		return fmt.Errorf("%w: clustered groupBy must be %q or %q, got %q",
			ErrInvalidConfig, ByContentType, BySize, cf.GroupBy)
	}
	if cf.ClusterSpacing <= 0 {
		return fmt.Errorf("%w: clusterSpacing must be positive, got %g", ErrInvalidConfig, cf.ClusterSpacing)
	}
	if cf.ItemSpacing <= 0 {
		return fmt.Errorf("%w: itemSpacing must be positive, got %g", ErrInvalidConfig, cf.ItemSpacing)
	}
	return nil
}

func (cf *ClusteredConfig) apply(items []*space.Item) {
	groups := map[string][]*space.Item{}
	for _, it := range items {
		k := cf.key(it)
		groups[k] = append(groups[k], it)
	}
	keys := make([]string, 0, len(groups))
	var maxRadius float32
	for k, g := range groups {
		keys = append(keys, k)
		if r := cf.intraRadius(len(g)); r > maxRadius {
			maxRadius = r
		}
	}
	sort.Strings(keys) // deterministic cluster ordering

	// intra-cluster offsets form a grid spaced by ItemSpacing, shrunk
	// if needed so the cluster diameter stays under ClusterSpacing;
	// centers are then spaced far enough apart that cross-cluster
	// pairs keep at least ClusterSpacing between them
	gap := cf.ClusterSpacing + 2*maxRadius
	cols := int(math32.Ceil(math32.Sqrt(float32(len(keys)))))
	x0 := -0.5 * gap * float32(cols-1)
	rows := (len(keys) + cols - 1) / cols
	z0 := -0.5 * gap * float32(rows-1)

	for ci, k := range keys {
		center := math32.Vec3(
			x0+gap*float32(ci%cols),
			0,
			z0+gap*float32(ci/cols),
		)
		cf.placeCluster(groups[k], center)
	}
}

// intraRadius is the maximum planar distance from a cluster center to
// any member, for a cluster of the given size.
func (cf *ClusteredConfig) intraRadius(n int) float32 {
	if n <= 1 {
		return 0
	}
	cols := int(math32.Ceil(math32.Sqrt(float32(n))))
	rows := (n + cols - 1) / cols
	sp := cf.memberSpacing(n)
	hw := 0.5 * sp * float32(cols-1)
	hd := 0.5 * sp * float32(rows-1)
	return math32.Sqrt(hw*hw + hd*hd)
}

// memberSpacing shrinks ItemSpacing when the member grid would
// otherwise span more than ClusterSpacing, keeping same-cluster
// pairwise distances under the cluster spacing.
func (cf *ClusteredConfig) memberSpacing(n int) float32 {
	sp := cf.ItemSpacing
	cols := int(math32.Ceil(math32.Sqrt(float32(n))))
	rows := (n + cols - 1) / cols
	w := float32(cols - 1)
	d := float32(rows - 1)
	diag := math32.Sqrt(w*w + d*d)
	if diag == 0 {
		return sp
	}
	if max := 0.9 * cf.ClusterSpacing; sp*diag > max {
		sp = max / diag
	}
	return sp
}

func (cf *ClusteredConfig) placeCluster(members []*space.Item, center math32.Vector3) {
	sp := cf.memberSpacing(len(members))
	cols := int(math32.Ceil(math32.Sqrt(float32(len(members)))))
	rows := (len(members) + cols - 1) / cols
	x0 := center.X - 0.5*sp*float32(cols-1)
	z0 := center.Z - 0.5*sp*float32(rows-1)
	for i, it := range members {
		it.Position.X = x0 + sp*float32(i%cols)
		it.Position.Z = z0 + sp*float32(i/cols)
		// elevation stays at the item's own floor level
	}
}

func (cf *ClusteredConfig) key(it *space.Item) string {
	if cf.GroupBy == ByContentType {
		return string(it.AssetType)
	}
	return sizeBucket(it.Scale)
}

// sizeBucket derives a coarse size class from an item's largest scale
// component.
func sizeBucket(scale math32.Vector3) string {
	mx := math32.Max(scale.X, math32.Max(scale.Y, scale.Z))
	switch {
	case mx < 0.75:
		return "small"
	case mx < 1.5:
		return "medium"
	default:
		return "large"
	}
}
