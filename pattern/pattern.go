// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern generates repeated-placement offsets for instanced
// collection members: one offset transform per instance, relative to
// the member's own transform.
package pattern

import (
	"math/rand"

	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/geom"
)

// Pattern names a placement pattern for instanced collection members.
type Pattern string

const (
	// Grid arranges instances row-major in the smallest square-ish
	// grid, centered on the origin.
	Grid Pattern = "grid"

	// Circle arranges instances evenly around a circle whose radius
	// grows with the instance count, so instances do not crowd.
	Circle Pattern = "circle"

	// Line arranges instances along the X axis, centered on the origin.
	Line Pattern = "line"

	// Random scatters instances uniformly within a square sized to
	// keep density comparable to [Grid] at the same spacing.
	// It is the one non-deterministic pattern.
	Random Pattern = "random"

	// Manual bypasses generation: the caller supplies explicit
	// per-instance transforms.
	Manual Pattern = "manual"
)

// Generate returns one offset transform per instance for the given
// pattern. Offsets add to the member's base position and multiply into
// its base scale. Results are deterministic for every pattern except
// [Random]. A quantity of one or less yields a single identity offset
// regardless of pattern, as does [Manual].
func Generate(p Pattern, quantity int, spacing float32) []geom.Transform {
	if quantity <= 1 {
		return []geom.Transform{geom.Identity()}
	}
	switch p {
	case Grid:
		return gridOffsets(quantity, spacing)
	case Circle:
		return circleOffsets(quantity, spacing)
	case Line:
		return lineOffsets(quantity, spacing)
	case Random:
		return randomOffsets(quantity, spacing)
	default: // Manual and unknown patterns generate nothing
		return []geom.Transform{geom.Identity()}
	}
}

func gridOffsets(quantity int, spacing float32) []geom.Transform {
	cols := int(math32.Ceil(math32.Sqrt(float32(quantity))))
	rows := (quantity + cols - 1) / cols
	// center the grid on the origin
	x0 := -0.5 * spacing * float32(cols-1)
	z0 := -0.5 * spacing * float32(rows-1)
	offs := make([]geom.Transform, quantity)
	for i := range offs {
		offs[i] = geom.Identity()
		offs[i].Pos = math32.Vec3(
			x0+spacing*float32(i%cols),
			0,
			z0+spacing*float32(i/cols),
		)
	}
	return offs
}

func circleOffsets(quantity int, spacing float32) []geom.Transform {
	// circumference = spacing * quantity, so arc spacing stays near
	// spacing as the count grows
	radius := spacing * float32(quantity) / (2 * math32.Pi)
	step := 2 * math32.Pi / float32(quantity)
	offs := make([]geom.Transform, quantity)
	for i := range offs {
		ang := step * float32(i)
		offs[i] = geom.Identity()
		offs[i].Pos = math32.Vec3(radius*math32.Cos(ang), 0, radius*math32.Sin(ang))
	}
	return offs
}

func lineOffsets(quantity int, spacing float32) []geom.Transform {
	x0 := -0.5 * spacing * float32(quantity-1)
	offs := make([]geom.Transform, quantity)
	for i := range offs {
		offs[i] = geom.Identity()
		offs[i].Pos = math32.Vec3(x0+spacing*float32(i), 0, 0)
	}
	return offs
}

func randomOffsets(quantity int, spacing float32) []geom.Transform {
	// square with the same footprint as the equivalent grid
	side := spacing * math32.Ceil(math32.Sqrt(float32(quantity)))
	offs := make([]geom.Transform, quantity)
	for i := range offs {
		offs[i] = geom.Identity()
		offs[i].Pos = math32.Vec3(
			side*(rand.Float32()-0.5),
			0,
			side*(rand.Float32()-0.5),
		)
	}
	return offs
}
