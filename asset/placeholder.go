// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// categoryColors maps known asset categories to [colors.Spaced]
// indexes, giving each category a stable, visually distinct
// placeholder color.
var categoryColors = map[string]int{
	"furniture":    0,
	"architecture": 1,
	"nature":       2,
	"vehicle":      3,
	"decor":        4,
	"electronics":  5,
	"character":    6,
	"tool":         7,
}

// defaultColorIndex is used for unknown or empty categories.
const defaultColorIndex = 8

// CategoryColor returns the deterministic placeholder color for the
// given category. Unknown categories get a stable default rather than
// an error.
func CategoryColor(category string) color.RGBA {
	if idx, ok := categoryColors[category]; ok {
		return colors.Spaced(idx)
	}
	return colors.Spaced(defaultColorIndex)
}

// FailedColor is the color of the distinct failed-resolution
// placeholder, visually separate from every category color.
func FailedColor() color.RGBA {
	return color.RGBA{R: 0xb0, G: 0x20, B: 0x20, A: 0xff}
}
