// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"errors"
	"fmt"

	baseerrors "cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
)

// ErrNotFound reports an object or collection id with no catalog entry.
var ErrNotFound = errors.New("asset: not found")

// ErrCycle reports a structural cycle: a component parent chain or a
// collection reaching itself through sub-collection references.
var ErrCycle = errors.New("asset: structural cycle")

// Catalog is the arena of object and collection assets, keyed by id.
// Child links between assets are ids resolved through the catalog, so
// missing references degrade to placeholders instead of failing.
type Catalog struct {

	// Objects holds all object assets in insertion order.
	Objects ordmap.Map[string, *Object]

	// Collections holds all collections in insertion order.
	Collections ordmap.Map[string, *Collection]

	// reported tracks degradations already logged, so that a broken
	// reference or cycle is reported once per detection, not per frame.
	reported map[string]bool
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	ct := &Catalog{reported: make(map[string]bool)}
	ct.Objects.Init()
	ct.Collections.Init()
	return ct
}

// AddObject adds or replaces an object asset, keyed by its id.
func (ct *Catalog) AddObject(ob *Object) {
	ct.Objects.Add(ob.ID, ob)
}

// AddCollection adds or replaces a collection, keyed by its id.
func (ct *Catalog) AddCollection(cl *Collection) {
	ct.Collections.Add(cl.ID, cl)
}

// ObjectByID returns the object asset with the given id, or an error
// wrapping [ErrNotFound].
func (ct *Catalog) ObjectByID(id string) (*Object, error) {
	ob, ok := ct.Objects.ValueByKeyTry(id)
	if !ok {
		return nil, fmt.Errorf("%w: object %q", ErrNotFound, id)
	}
	return ob, nil
}

// CollectionByID returns the collection with the given id, or an error
// wrapping [ErrNotFound].
func (ct *Catalog) CollectionByID(id string) (*Collection, error) {
	cl, ok := ct.Collections.ValueByKeyTry(id)
	if !ok {
		return nil, fmt.Errorf("%w: collection %q", ErrNotFound, id)
	}
	return cl, nil
}

// reportOnce logs a degradation (broken reference, cycle) the first
// time the given key is seen, and records it for [Catalog.Reported].
func (ct *Catalog) reportOnce(key string, err error) {
	if ct.reported == nil {
		ct.reported = make(map[string]bool)
	}
	if ct.reported[key] {
		return
	}
	ct.reported[key] = true
	baseerrors.Log(err)
}

// Reported returns whether a degradation with the given key has been
// reported. Keys are "ref:<id>" for broken references and
// "cycle:<id>" for structural cycles.
func (ct *Catalog) Reported(key string) bool {
	return ct.reported[key]
}
