// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lod classifies placed items into level-of-detail tiers from
// the current camera pose: frustum culling first, then ordered
// distance thresholds. Classification is a pure function of camera
// state, recomputed every frame, so tiers can never drift.
package lod

import "cogentcore.org/core/math32"

// Level is a level-of-detail tier. Higher values are more detailed.
type Level int32

const (
	// Hidden items are culled: beyond the far cutoff or outside the
	// view frustum.
	Hidden Level = iota

	// Low is the minimum rendered detail.
	Low

	// Medium is reduced detail.
	Medium

	// High is near-full detail.
	High

	// Full is maximum detail, for the closest items.
	Full
)

var levelNames = []string{"hidden", "low", "medium", "high", "full"}

func (l Level) String() string {
	if l < Hidden || l > Full {
		return "hidden"
	}
	return levelNames[l]
}

// LevelFromString returns the level named by s, defaulting to Full
// for unknown names so that items missing a stored level render fully.
func LevelFromString(s string) Level {
	for i, nm := range levelNames {
		if nm == s {
			return Level(i)
		}
	}
	return Full
}

func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Level) UnmarshalText(text []byte) error {
	*l = LevelFromString(string(text))
	return nil
}

// Result is the ephemeral per-frame classification of one item.
// It is never persisted.
type Result struct {
	Level        Level
	ShouldRender bool
}

// Thresholds are the distance cutoffs partitioning camera distance
// into the five tiers. Distances at or below Full give full detail;
// beyond Far the item is hidden. They are configuration, shared by
// every item type.
type Thresholds struct {

	// Full is the distance at or under which items render at full detail.
	Full float32 `toml:"full" json:"full"`

	// High is the distance cutoff for high detail.
	High float32 `toml:"high" json:"high"`

	// Medium is the distance cutoff for medium detail.
	Medium float32 `toml:"medium" json:"medium"`

	// Far is the far cutoff: items beyond it are hidden.
	// Between Medium and Far items render at low detail.
	Far float32 `toml:"far" json:"far"`
}

// Defaults sets the standard threshold distances.
func (th *Thresholds) Defaults() {
	th.Full = 10
	th.High = 25
	th.Medium = 60
	th.Far = 150
}

// Classify returns the tier for an item at the given world position.
// An item outside the camera frustum is hidden regardless of distance.
// When the camera has no frustum yet, pure distance thresholding is
// used as the degraded fallback.
func Classify(pos math32.Vector3, cam *Camera, th *Thresholds) Result {
	if cam.Frustum != nil && !cam.Frustum.ContainsPoint(pos) {
		return Result{Level: Hidden}
	}
	return classifyDist(cam.Pose.Pos.DistanceTo(pos), th)
}

// ClassifyBox is like [Classify] for an item with a world-space
// bounding box: the item stays visible while any part of the box
// intersects the frustum. Distance is measured to the box center.
func ClassifyBox(box math32.Box3, cam *Camera, th *Thresholds) Result {
	if box.IsEmpty() {
		return Result{Level: Hidden}
	}
	if cam.Frustum != nil && !cam.Frustum.IntersectsBox(box) {
		return Result{Level: Hidden}
	}
	return classifyDist(cam.Pose.Pos.DistanceTo(box.Center()), th)
}

func classifyDist(dist float32, th *Thresholds) Result {
	var lv Level
	switch {
	case dist > th.Far:
		lv = Hidden
	case dist > th.Medium:
		lv = Low
	case dist > th.High:
		lv = Medium
	case dist > th.Full:
		lv = High
	default:
		lv = Full
	}
	return Result{Level: lv, ShouldRender: lv != Hidden}
}

// Quality is the media resolution variant requested for a tier, so
// that bandwidth scales with proximity instead of a binary show/hide.
type Quality string

const (
	QualitySmall   Quality = "small"
	QualityMedium  Quality = "medium"
	QualityLarge   Quality = "large"
	QualityLargest Quality = "largest"
)

// MediaQuality maps a tier to the media resolution variant to request.
// Hidden maps to the smallest variant; callers should not request
// media for hidden items at all.
func MediaQuality(l Level) Quality {
	switch l {
	case Full:
		return QualityLargest
	case High:
		return QualityLarge
	case Medium:
		return QualityMedium
	default:
		return QualitySmall
	}
}
