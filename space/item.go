// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space holds the flat scene of placed media items and
// assembles the per-frame draw list the rendering host consumes:
// one (transform, representation, detail tier) tuple per visible item.
package space

import (
	"time"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/lod"
)

// AssetType is the closed set of placeable content types.
type AssetType string

const (
	Image            AssetType = "image"
	Video            AssetType = "video"
	Audio            AssetType = "audio"
	Object           AssetType = "object"
	ObjectCollection AssetType = "object_collection"
	Text             AssetType = "text"
)

// InteractionLevel selects what a click on an object item addresses.
type InteractionLevel string

const (
	InteractObject     InteractionLevel = "object"
	InteractComponent  InteractionLevel = "component"
	InteractCollection InteractionLevel = "collection"
)

// ObjectProperties are the object-specific settings of a placed item.
type ObjectProperties struct {

	// ShowComponents renders composite component parts.
	ShowComponents bool `json:"showComponents"`

	// InteractionLevel selects the click-addressing granularity.
	InteractionLevel InteractionLevel `json:"interactionLevel,omitempty"`

	// LODLevel is the advisory tier from the last classification,
	// kept for inspection; classification never reads it back.
	LODLevel lod.Level `json:"lodLevel"`
}

// Item is a flat placed entity in the space: one piece of media, text,
// object or collection, with its own transform and interaction flags.
type Item struct {

	// ID uniquely identifies the item within its scene.
	ID string `json:"id"`

	// AssetID references the underlying asset (media, object, or
	// collection id).
	AssetID string `json:"assetId"`

	// AssetType is the content type of the referenced asset.
	AssetType AssetType `json:"assetType"`

	// Position, Rotation (euler degrees) and Scale place the item in
	// the space. The grouping strategies write Position only.
	Position math32.Vector3 `json:"position"`
	Rotation math32.Vector3 `json:"rotation"`
	Scale    math32.Vector3 `json:"scale"`

	// Visible excludes the item from assembly when false.
	Visible bool `json:"visible"`

	// Clickable includes the item in picking.
	Clickable bool `json:"clickable"`

	// HoverEffect enables the host's hover highlight.
	HoverEffect bool `json:"hoverEffect"`

	// ImportedAt is when the underlying asset was imported; the
	// timeline strategy sorts by it by default.
	ImportedAt time.Time `json:"importedAt,omitempty"`

	// CreatedAt is when the item was placed.
	CreatedAt time.Time `json:"createdAt,omitempty"`

	// ObjectProperties are set for object and collection items.
	ObjectProperties *ObjectProperties `json:"objectProperties,omitempty"`
}

// NewItem returns a visible, clickable item for the given asset with a
// generated id, unit scale, and object properties when the type needs
// them.
func NewItem(assetID string, typ AssetType) *Item {
	it := &Item{
		ID:        uuid.NewString(),
		AssetID:   assetID,
		AssetType: typ,
		Scale:     math32.Vec3(1, 1, 1),
		Visible:   true,
		Clickable: true,
		CreatedAt: time.Now(),
	}
	if typ == Object || typ == ObjectCollection {
		it.ObjectProperties = &ObjectProperties{
			ShowComponents:   true,
			InteractionLevel: InteractObject,
			LODLevel:         lod.Full,
		}
	}
	return it
}

// Defaults fixes zero values that have identity equivalents, for items
// deserialized from older documents.
func (it *Item) Defaults() {
	if it.Scale == (math32.Vector3{}) {
		it.Scale = math32.Vec3(1, 1, 1)
	}
}

// Transform returns the item's placement as a transform.
func (it *Item) Transform() geom.Transform {
	tr := geom.Transform{Pos: it.Position, Rot: it.Rotation, Scale: it.Scale}
	tr.Defaults()
	return tr
}
