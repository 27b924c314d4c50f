// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"fmt"

	"github.com/mediaforge/spatial/geom"
)

// Placed is one expanded object instance from a collection: the
// referenced object and its transform relative to the collection root.
type Placed struct {
	ObjectID  string
	Transform geom.Transform
}

// ExpandCollection flattens the collection with the given id into its
// placed object instances: instanced members become one Placed per
// generated instance, and nested sub-collections are expanded in
// place. A sub-collection chain reaching back to an already-expanding
// collection is a cycle: it is truncated after a one-time report, so a
// literal self-reference cannot recurse. A missing collection id
// yields an empty expansion after a one-time report.
func (ct *Catalog) ExpandCollection(id string) []Placed {
	return ct.expandCollection(id, map[string]bool{})
}

func (ct *Catalog) expandCollection(id string, visited map[string]bool) []Placed {
	if visited[id] {
		ct.reportOnce("cycle:"+id, fmt.Errorf("%w: collection %q references itself", ErrCycle, id))
		return nil
	}
	visited[id] = true
	defer delete(visited, id)

	cl, err := ct.CollectionByID(id)
	if err != nil {
		ct.reportOnce("ref:"+id, err)
		return nil
	}
	var placed []Placed
	for i := range cl.Objects {
		co := &cl.Objects[i]
		for _, tr := range memberTransforms(co) {
			placed = append(placed, Placed{ObjectID: co.ObjectID, Transform: tr})
		}
	}
	for _, sub := range cl.SubCollections {
		placed = append(placed, ct.expandCollection(sub, visited)...)
	}
	return placed
}
