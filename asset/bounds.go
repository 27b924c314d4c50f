// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/pattern"
)

// placeholderBounds is the unit box rendered for an unresolvable
// object reference, so missing links still occupy visible space.
func placeholderBounds() math32.Box3 {
	return math32.B3(-0.5, 0, -0.5, 0.5, 1, 0.5)
}

// ObjectBounds returns the aggregate bounding box of the object with
// the given id: the union of its own box and every component's
// aggregate box transformed into parent space. It is re-derived from
// scratch on every call, so cached boxes can never drift.
// A missing id yields an empty box after a one-time report.
func (ct *Catalog) ObjectBounds(id string) math32.Box3 {
	return ct.objectBounds(id, map[string]bool{})
}

func (ct *Catalog) objectBounds(id string, visited map[string]bool) math32.Box3 {
	if visited[id] {
		ct.reportOnce("cycle:"+id, fmt.Errorf("%w: object %q references itself", ErrCycle, id))
		return geom.EmptyBox()
	}
	visited[id] = true
	defer delete(visited, id)

	ob, err := ct.ObjectByID(id)
	if err != nil {
		ct.reportOnce("ref:"+id, err)
		return geom.EmptyBox()
	}
	bb := ob.Bounds
	for i := range ob.Components {
		co := &ob.Components[i]
		cb := ct.componentBounds(co, visited)
		tr := co.Transform
		tr.Defaults()
		bb = geom.Union(bb, tr.ApplyToBox(cb))
	}
	return bb
}

func (ct *Catalog) componentBounds(co *Component, visited map[string]bool) math32.Box3 {
	if _, err := ct.ObjectByID(co.ObjectID); err != nil {
		// unresolvable reference: the placeholder box stands in
		ct.reportOnce("ref:"+co.ObjectID, err)
		return placeholderBounds()
	}
	return ct.objectBounds(co.ObjectID, visited)
}

// UpdateCollectionBounds recomputes the aggregate box of the given
// collection and stores it in the collection's Bounds cache.
// The derivation never reads the cache, so removal of a member cannot
// leave stale extent behind.
func (ct *Catalog) UpdateCollectionBounds(id string) math32.Box3 {
	bb := ct.CollectionBounds(id)
	if cl, err := ct.CollectionByID(id); err == nil {
		cl.Bounds = bb
	}
	return bb
}

// CollectionBounds returns the aggregate bounding box of the
// collection with the given id: the union over all placed members
// (including every generated instance) and nested sub-collections.
// Cycles through sub-collection references are truncated after a
// one-time report rather than recursed.
func (ct *Catalog) CollectionBounds(id string) math32.Box3 {
	return ct.collectionBounds(id, map[string]bool{})
}

func (ct *Catalog) collectionBounds(id string, visited map[string]bool) math32.Box3 {
	if visited[id] {
		ct.reportOnce("cycle:"+id, fmt.Errorf("%w: collection %q references itself", ErrCycle, id))
		return geom.EmptyBox()
	}
	visited[id] = true
	defer delete(visited, id)

	cl, err := ct.CollectionByID(id)
	if err != nil {
		ct.reportOnce("ref:"+id, err)
		return geom.EmptyBox()
	}
	bb := geom.EmptyBox()
	for i := range cl.Objects {
		mb := ct.objectBounds(cl.Objects[i].ObjectID, map[string]bool{})
		if mb.IsEmpty() {
			mb = placeholderBounds()
		}
		for _, tr := range memberTransforms(&cl.Objects[i]) {
			bb = geom.Union(bb, tr.ApplyToBox(mb))
		}
	}
	for _, sub := range cl.SubCollections {
		bb = geom.Union(bb, ct.collectionBounds(sub, visited))
	}
	return bb
}

// memberTransforms expands a collection member into the transform of
// each of its instances: the pattern offsets combined with the
// member's base transform.
func memberTransforms(co *CollectionObject) []geom.Transform {
	base := co.Transform
	base.Defaults()
	if co.Quantity <= 1 || co.Pattern == pattern.Manual {
		return []geom.Transform{base}
	}
	offs := pattern.Generate(co.Pattern, co.Quantity, co.Spacing)
	trs := make([]geom.Transform, len(offs))
	for i, off := range offs {
		trs[i] = base.Compose(off)
	}
	return trs
}
