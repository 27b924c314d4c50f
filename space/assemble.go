// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"github.com/mediaforge/spatial/asset"
	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/lod"
)

// Draw is one entry of the assembled draw list: what the rendering
// host should draw for one visible element, where, and at which tier.
type Draw struct {

	// Item is the scene item this draw belongs to.
	Item *Item

	// Transform is the world placement of this element.
	Transform geom.Transform

	// Level is the classified detail tier. Never [lod.Hidden]: hidden
	// elements are not emitted.
	Level lod.Level

	// Rep is the representation request, opaque to this engine.
	Rep asset.Representation
}

// Assemble classifies every visible item against the current camera
// and returns the draw list for this frame. It is called once per
// render-loop pass; classification is pure, so there is no per-item
// state to invalidate between calls. Item transforms are never
// mutated: the advisory LODLevel on object properties is the only
// field written.
func (sc *Scene) Assemble(ct *asset.Catalog, th *lod.Thresholds) []Draw {
	var draws []Draw
	for _, it := range sc.Items {
		if !it.Visible {
			continue
		}
		draws = append(draws, sc.assembleItem(ct, th, it)...)
	}
	return draws
}

func (sc *Scene) assembleItem(ct *asset.Catalog, th *lod.Thresholds, it *Item) []Draw {
	tr := it.Transform()
	switch it.AssetType {
	case Image, Video, Audio:
		res := lod.Classify(it.Position, &sc.Camera, th)
		sc.noteLevel(it, res.Level)
		if !res.ShouldRender {
			return nil
		}
		return []Draw{{Item: it, Transform: tr, Level: res.Level, Rep: asset.Representation{
			Kind:    asset.RepMedia,
			AssetID: it.AssetID,
			Quality: lod.MediaQuality(res.Level),
		}}}
	case Text:
		res := lod.Classify(it.Position, &sc.Camera, th)
		sc.noteLevel(it, res.Level)
		if !res.ShouldRender {
			return nil
		}
		return []Draw{{Item: it, Transform: tr, Level: res.Level, Rep: asset.Representation{
			Kind:    asset.RepText,
			AssetID: it.AssetID,
		}}}
	case Object:
		wb := tr.ApplyToBox(ct.ObjectBounds(it.AssetID))
		res := lod.ClassifyBox(wb, &sc.Camera, th)
		if wb.IsEmpty() {
			// broken reference: keep the placeholder visible by position
			res = lod.Classify(it.Position, &sc.Camera, th)
		}
		sc.noteLevel(it, res.Level)
		if !res.ShouldRender {
			return nil
		}
		pl := ct.Plan(it.AssetID, &asset.PlanOptions{
			ShowComponents: it.ObjectProperties == nil || it.ObjectProperties.ShowComponents,
			Level:          res.Level,
		})
		return planDraws(it, tr, res.Level, pl)
	case ObjectCollection:
		var draws []Draw
		for _, p := range ct.ExpandCollection(it.AssetID) {
			ptr := tr.Compose(p.Transform)
			res := lod.Classify(ptr.Pos, &sc.Camera, th)
			if !res.ShouldRender {
				continue
			}
			pl := ct.Plan(p.ObjectID, &asset.PlanOptions{
				ShowComponents: it.ObjectProperties == nil || it.ObjectProperties.ShowComponents,
				Level:          res.Level,
			})
			draws = append(draws, planDraws(it, ptr, res.Level, pl)...)
		}
		if it.ObjectProperties != nil && len(draws) > 0 {
			it.ObjectProperties.LODLevel = draws[0].Level
		}
		return draws
	}
	// unknown asset type: draw the failed placeholder so the item is
	// visibly broken rather than absent
	res := lod.Classify(it.Position, &sc.Camera, th)
	if !res.ShouldRender {
		return nil
	}
	return []Draw{{Item: it, Transform: tr, Level: res.Level, Rep: asset.Representation{
		Kind:  asset.RepFailed,
		Color: asset.FailedColor(),
	}}}
}

func (sc *Scene) noteLevel(it *Item, lv lod.Level) {
	if it.ObjectProperties != nil {
		it.ObjectProperties.LODLevel = lv
	}
}

func planDraws(it *Item, root geom.Transform, lv lod.Level, pl *asset.Plan) []Draw {
	draws := make([]Draw, 0, len(pl.Parts))
	for _, part := range pl.Parts {
		draws = append(draws, Draw{
			Item:      it,
			Transform: root.Compose(part.Transform),
			Level:     lv,
			Rep:       part.Rep,
		})
	}
	return draws
}
