// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"sort"

	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/asset"
)

// Hit is one picked item and the point where the pick ray entered its
// bounding box.
type Hit struct {
	Item  *Item
	Point math32.Vector3
}

// Pick returns the clickable, visible items whose world bounding box
// intersects the given ray, sorted closest-first. Media items use a
// unit plane box scaled by the item transform; object and collection
// items use their aggregated catalog bounds.
func (sc *Scene) Pick(ct *asset.Catalog, ray math32.Ray) []Hit {
	var hits []Hit
	for _, it := range sc.Items {
		if !it.Visible || !it.Clickable {
			continue
		}
		bb := sc.itemBounds(ct, it)
		if bb.IsEmpty() {
			continue
		}
		pt, has := ray.IntersectBox(bb)
		if !has {
			continue
		}
		hits = append(hits, Hit{Item: it, Point: pt})
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Point.DistanceTo(ray.Origin) < hits[j].Point.DistanceTo(ray.Origin)
	})
	return hits
}

// itemBounds returns an item's world-space bounding box.
func (sc *Scene) itemBounds(ct *asset.Catalog, it *Item) math32.Box3 {
	tr := it.Transform()
	switch it.AssetType {
	case Object:
		return tr.ApplyToBox(ct.ObjectBounds(it.AssetID))
	case ObjectCollection:
		return tr.ApplyToBox(ct.CollectionBounds(it.AssetID))
	}
	// media and text render as unit planes centered on the item
	return tr.ApplyToBox(math32.B3(-0.5, -0.5, -0.05, 0.5, 0.5, 0.05))
}
