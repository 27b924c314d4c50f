// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the small amount of 3D geometry shared by the
// spatial composition engine, on top of [math32] vectors and boxes.
package geom

import "cogentcore.org/core/math32"

// Distance returns the euclidean distance between two points.
func Distance(a, b math32.Vector3) float32 {
	return a.DistanceTo(b)
}

// PlanarDistance returns the distance between two points projected
// onto the XZ (floor) plane, ignoring elevation.
func PlanarDistance(a, b math32.Vector3) float32 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math32.Sqrt(dx*dx + dz*dz)
}

// EmptyBox returns an empty bounding box (min = +Inf, max = -Inf),
// which is the identity element for [Union].
func EmptyBox() math32.Box3 {
	return math32.B3Empty()
}

// Union returns the smallest box containing both a and b.
// Union with an empty box is the identity operation.
func Union(a, b math32.Box3) math32.Box3 {
	a.ExpandByBox(b)
	return a
}

// BoxFromPoints returns the axis-aligned box enclosing all points.
// An empty point list yields an empty box.
func BoxFromPoints(points []math32.Vector3) math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoints(points)
	return b
}
