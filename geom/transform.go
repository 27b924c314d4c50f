// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "cogentcore.org/core/math32"

// Transform is the placement of an element relative to its parent:
// position, euler-angle rotation in degrees, and per-axis scale.
//
// Nesting composes per axis (positions add, rotations add, scales
// multiply), mirroring scene-graph nesting rather than full matrix
// composition. This is an engine-wide invariant: bounding boxes and
// instance offsets rely on it.
type Transform struct {

	// Pos is the translation relative to the parent.
	Pos math32.Vector3 `json:"position"`

	// Rot is the euler-angle rotation in degrees, per axis.
	Rot math32.Vector3 `json:"rotation"`

	// Scale is the per-axis scale factor. The identity is (1,1,1).
	Scale math32.Vector3 `json:"scale"`
}

// Identity returns the identity transform: zero position and rotation,
// unit scale.
func Identity() Transform {
	return Transform{Scale: math32.Vec3(1, 1, 1)}
}

// Defaults sets zero values to their identity equivalents.
// A zero-valued Scale is treated as unit scale so that transforms
// deserialized from older scene documents remain usable.
func (t *Transform) Defaults() {
	if t.Scale.X == 0 && t.Scale.Y == 0 && t.Scale.Z == 0 {
		t.Scale = math32.Vec3(1, 1, 1)
	}
}

// Compose returns the transform of child nested under t:
// positions add, rotations add, scales multiply.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Pos:   t.Pos.Add(child.Pos),
		Rot:   t.Rot.Add(child.Rot),
		Scale: t.Scale.Mul(child.Scale),
	}
}

// ApplyToPoint transforms a point from the local space of t into its
// parent space, applying scale then translation.
func (t Transform) ApplyToPoint(p math32.Vector3) math32.Vector3 {
	return p.Mul(t.Scale).Add(t.Pos)
}

// ApplyToBox transforms an axis-aligned box from the local space of t
// into its parent space. Rotation is not applied: under the per-axis
// composition model boxes stay axis-aligned. An empty box stays empty.
func (t Transform) ApplyToBox(b math32.Box3) math32.Box3 {
	if b.IsEmpty() {
		return b
	}
	nb := math32.B3Empty()
	nb.ExpandByPoint(t.ApplyToPoint(b.Min))
	nb.ExpandByPoint(t.ApplyToPoint(b.Max))
	return nb
}
