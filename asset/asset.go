// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset implements the hierarchical object model of the
// spatial composition engine: atomic and composite object assets,
// collections with instanced members and nested sub-collections, an
// id-keyed catalog arena with recursive bounding-box aggregation, and
// render-plan building that degrades to placeholders instead of
// failing when references cannot be resolved.
package asset

import (
	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/pattern"
)

// ObjectType distinguishes atomic objects from composites.
type ObjectType string

const (
	// Atomic objects have no components and render a single
	// representation.
	Atomic ObjectType = "atomic"

	// Composite objects are built from positioned components, each a
	// reference to another object asset by id.
	Composite ObjectType = "composite"
)

// Component is one named, positioned part of a composite object.
// It references another object asset by id; references are resolved
// lazily, so the structure is a DAG of ids rather than a nested tree.
type Component struct {

	// ID identifies the component within its owning object.
	ID string `json:"id"`

	// ObjectID references the object asset this component renders.
	ObjectID string `json:"objectId"`

	// Transform places the component relative to its parent.
	Transform geom.Transform `json:"transform"`

	// Role describes the component's function within the object.
	Role string `json:"role,omitempty"`

	// Required marks components that must render at every detail
	// level. Optional components may be dropped from low-detail
	// render plans.
	Required bool `json:"required"`

	// ParentID optionally references another component of the same
	// object for hierarchical display grouping. The chain must never
	// form a cycle; cycles are detected and degraded to flat.
	ParentID string `json:"parentId,omitempty"`
}

// Object is a 3D object asset: either atomic or a composite of
// component references.
type Object struct {

	// ID is the unique catalog key of this asset.
	ID string `json:"id"`

	// Type is atomic or composite.
	Type ObjectType `json:"object_type"`

	// ModelRef references an external model asset for this object's
	// own body. When empty, the object renders a category-colored
	// placeholder.
	ModelRef string `json:"modelRef,omitempty"`

	// Bounds is the object's own axis-aligned bounding box, not
	// including components. Use [Catalog.ObjectBounds] for the
	// aggregated box.
	Bounds math32.Box3 `json:"boundingBox"`

	// Components are the named parts of a composite object.
	// Always empty for atomic objects.
	Components []Component `json:"components,omitempty"`

	// Category selects the placeholder color and drives clustering.
	Category string `json:"category,omitempty"`

	Tags []string `json:"tags,omitempty"`
}

// CollectionObject is one member of a collection: a placed object
// reference, optionally repeated via an instancing pattern.
type CollectionObject struct {

	// ObjectID references the placed object asset.
	ObjectID string `json:"objectId"`

	// Transform places the member (the base transform of every
	// instance) relative to the collection.
	Transform geom.Transform `json:"transform"`

	// Quantity is the instance count. Values of one or less place a
	// single instance.
	Quantity int `json:"quantity,omitempty"`

	// Pattern positions the instances when Quantity is greater than
	// one. [pattern.Manual] bypasses generation: provide one
	// CollectionObject per instance instead.
	Pattern pattern.Pattern `json:"pattern,omitempty"`

	// Spacing is the pattern spacing between instances.
	Spacing float32 `json:"spacing,omitempty"`
}

// Collection is a set of placed object references with optional nested
// sub-collections, referenced by id.
type Collection struct {

	// ID is the unique catalog key of this collection.
	ID string `json:"id"`

	// Objects are the placed members.
	Objects []CollectionObject `json:"objects"`

	// SubCollections reference other collections by id. A chain that
	// reaches back to this collection is a cycle: detected and
	// truncated, never recursed.
	SubCollections []string `json:"subCollections,omitempty"`

	// Bounds is the cached aggregate box; recomputable on demand via
	// [Catalog.CollectionBounds].
	Bounds math32.Box3 `json:"boundingBox"`

	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}
