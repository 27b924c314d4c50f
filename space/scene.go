// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"github.com/mediaforge/spatial/asset"
	"github.com/mediaforge/spatial/lod"
)

// Environment holds the scene-level surroundings settings.
type Environment struct {

	// Background is the clear color behind all content.
	Background color.RGBA `json:"background"`

	// FloorSize is the side length of the square floor plane.
	FloorSize float32 `json:"floorSize"`

	// FloorColor is the floor plane color.
	FloorColor color.RGBA `json:"floorColor"`
}

// Defaults sets the standard environment.
func (ev *Environment) Defaults() {
	ev.Background = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf4, A: 0xff}
	ev.FloorSize = 100
	ev.FloorColor = color.RGBA{R: 0xd8, G: 0xd8, B: 0xd0, A: 0xff}
}

// Scene owns the flat list of placed items, the environment, and the
// camera. It is mutated by one operation at a time (a placement run, a
// transform edit, or an assembly pass); it has no internal locking.
type Scene struct {

	// Items are the placed entities, in placement order.
	Items []*Item `json:"items"`

	// Environment is the scene surroundings.
	Environment Environment `json:"environment"`

	// Camera is the viewpoint used for assembly and navigation.
	Camera lod.Camera `json:"-"`

	// SavedCams are camera poses saved by name for later restore.
	SavedCams map[string]lod.Camera `json:"-"`
}

// NewScene returns an empty scene with default environment and camera.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Environment.Defaults()
	sc.Camera.Defaults()
	return sc
}

// AddItem appends an item to the scene and returns it.
func (sc *Scene) AddItem(it *Item) *Item {
	it.Defaults()
	sc.Items = append(sc.Items, it)
	return it
}

// ItemByID returns the live item with the given id, or nil. Callers
// applying asynchronously resolved asset data must re-look items up
// here on arrival: a nil result means the item was removed while the
// resolution was in flight and the result must be discarded.
func (sc *Scene) ItemByID(id string) *Item {
	for _, it := range sc.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// RemoveItem removes the item with the given id, reporting whether it
// was present.
func (sc *Scene) RemoveItem(id string) bool {
	for i, it := range sc.Items {
		if it.ID == id {
			sc.Items = append(sc.Items[:i], sc.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every item.
func (sc *Scene) Clear() {
	sc.Items = nil
}

// SaveCamera saves the current camera under the given name.
func (sc *Scene) SaveCamera(name string) {
	if sc.SavedCams == nil {
		sc.SavedCams = make(map[string]lod.Camera)
	}
	sc.SavedCams[name] = sc.Camera
}

// SetCamera restores the saved camera with the given name.
func (sc *Scene) SetCamera(name string) error {
	cam, ok := sc.SavedCams[name]
	if !ok {
		return fmt.Errorf("space.Scene: saved camera %q not found", name)
	}
	sc.Camera = cam
	sc.Camera.UpdateMatrix()
	return nil
}

// Validate checks every item's asset reference against the catalog,
// logging each problem found, and returns a single summary error when
// at least one item is broken. Broken items still render (as
// placeholders); validation exists so authors can locate them.
func (sc *Scene) Validate(ct *asset.Catalog) error {
	hasError := false
	for _, it := range sc.Items {
		switch it.AssetType {
		case Object:
			ob, err := ct.ObjectByID(it.AssetID)
			if err != nil {
				errors.Log(fmt.Errorf("item %s: %w", it.ID, err))
				hasError = true
				continue
			}
			if err := ct.ValidateComponents(ob); err != nil {
				errors.Log(fmt.Errorf("item %s: %w", it.ID, err))
				hasError = true
			}
		case ObjectCollection:
			if _, err := ct.CollectionByID(it.AssetID); err != nil {
				errors.Log(fmt.Errorf("item %s: %w", it.ID, err))
				hasError = true
			}
		}
	}
	if hasError {
		return fmt.Errorf("space.Scene: Validate found at least one error (see log)")
	}
	return nil
}
