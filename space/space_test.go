// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/mediaforge/spatial/asset"
	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/lod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedAt(x, y, z float32) geom.Transform {
	tr := geom.Identity()
	tr.Pos = math32.Vec3(x, y, z)
	return tr
}

func testCatalog() *asset.Catalog {
	ct := asset.NewCatalog()
	ct.AddObject(&asset.Object{
		ID:       "crate",
		Type:     asset.Atomic,
		ModelRef: "models/crate.glb",
		Bounds:   math32.B3(-0.5, 0, -0.5, 0.5, 1, 0.5),
		Category: "furniture",
	})
	ct.AddObject(&asset.Object{
		ID:       "lamp",
		Type:     asset.Atomic,
		Bounds:   math32.B3(-0.2, 0, -0.2, 0.2, 1.5, 0.2),
		Category: "decor",
	})
	ct.AddObject(&asset.Object{
		ID:     "desk",
		Type:   asset.Composite,
		Bounds: math32.B3(-1, 0, -0.5, 1, 0.75, 0.5),
		Components: []asset.Component{
			{ID: "body", ObjectID: "crate", Transform: geom.Identity(), Required: true},
			{ID: "light", ObjectID: "lamp", Transform: placedAt(0.5, 0.75, 0), Role: "lighting"},
		},
	})
	ct.AddCollection(&asset.Collection{
		ID: "pair",
		Objects: []asset.CollectionObject{
			{ObjectID: "crate", Transform: placedAt(-1, 0, 0)},
			{ObjectID: "crate", Transform: placedAt(1, 0, 0)},
		},
	})
	return ct
}

func defaultThresholds() *lod.Thresholds {
	th := &lod.Thresholds{}
	th.Defaults()
	return th
}

func TestNewItem(t *testing.T) {
	it := NewItem("photo-1", Image)
	assert.NotEmpty(t, it.ID)
	assert.True(t, it.Visible)
	assert.True(t, it.Clickable)
	assert.Equal(t, math32.Vec3(1, 1, 1), it.Scale)
	assert.Nil(t, it.ObjectProperties)

	ob := NewItem("desk", Object)
	require.NotNil(t, ob.ObjectProperties)
	assert.True(t, ob.ObjectProperties.ShowComponents)
	assert.Equal(t, InteractObject, ob.ObjectProperties.InteractionLevel)
}

func TestItemDefaults(t *testing.T) {
	it := &Item{ID: "a"}
	it.Defaults()
	assert.Equal(t, math32.Vec3(1, 1, 1), it.Scale)
	tr := it.Transform()
	assert.Equal(t, math32.Vec3(1, 1, 1), tr.Scale)
}

func TestSceneItems(t *testing.T) {
	sc := NewScene()
	a := sc.AddItem(NewItem("photo-1", Image))
	b := sc.AddItem(NewItem("clip-1", Video))
	assert.Len(t, sc.Items, 2)

	assert.Same(t, a, sc.ItemByID(a.ID))
	assert.Nil(t, sc.ItemByID("nope"))

	assert.True(t, sc.RemoveItem(a.ID))
	assert.False(t, sc.RemoveItem(a.ID))
	assert.Nil(t, sc.ItemByID(a.ID), "removed item must not resolve")
	assert.Same(t, b, sc.ItemByID(b.ID))

	sc.Clear()
	assert.Empty(t, sc.Items)
}

func TestSavedCameras(t *testing.T) {
	sc := NewScene()
	sc.Camera.Pose.Pos.Set(5, 2, 5)
	sc.Camera.LookAtOrigin()
	sc.SaveCamera("overview")

	sc.Camera.DefaultPose()
	require.NoError(t, sc.SetCamera("overview"))
	assert.Equal(t, math32.Vec3(5, 2, 5), sc.Camera.Pose.Pos)
	assert.NotNil(t, sc.Camera.Frustum, "restore must rebuild matrices")

	assert.Error(t, sc.SetCamera("missing"))
}

func TestSceneJSONRoundTrip(t *testing.T) {
	sc := NewScene()
	it := NewItem("photo-1", Image)
	it.Position = math32.Vec3(1, 2, 3)
	it.Rotation = math32.Vec3(0, 45, 0)
	it.Scale = math32.Vec3(2, 2, 2)
	it.HoverEffect = true
	it.ImportedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	it.CreatedAt = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	sc.AddItem(it)

	ob := NewItem("desk", Object)
	ob.CreatedAt = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	ob.ObjectProperties.InteractionLevel = InteractComponent
	sc.AddItem(ob)

	sc.Camera.Pose.Pos.Set(0, 3, 12)
	sc.Camera.LookAtOrigin()

	var buf bytes.Buffer
	require.NoError(t, sc.WriteJSON(&buf))

	got := NewScene()
	require.NoError(t, got.ReadJSON(&buf))

	require.Len(t, got.Items, 2)
	assert.Equal(t, sc.Items[0], got.Items[0])
	assert.Equal(t, sc.Items[1], got.Items[1])
	assert.Equal(t, sc.Environment, got.Environment)
	assert.Equal(t, math32.Vec3(0, 3, 12), got.Camera.Pose.Pos)
	assert.Equal(t, sc.Camera.FOV, got.Camera.FOV)
	assert.NotNil(t, got.Camera.Frustum)
}

func TestSceneSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scene.json")
	sc := NewScene()
	it := sc.AddItem(NewItem("photo-1", Image))
	it.CreatedAt = time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, sc.Save(fn))

	got := NewScene()
	require.NoError(t, got.Open(fn))
	assert.Equal(t, sc.Items, got.Items)
}

func TestValidate(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	sc.AddItem(NewItem("desk", Object))
	sc.AddItem(NewItem("pair", ObjectCollection))
	sc.AddItem(NewItem("photo-1", Image)) // media is not catalog-checked
	assert.NoError(t, sc.Validate(ct))

	sc.AddItem(NewItem("ghost", Object))
	assert.Error(t, sc.Validate(ct))

	sc.Clear()
	sc.AddItem(NewItem("no-such-collection", ObjectCollection))
	assert.Error(t, sc.Validate(ct))
}

func TestAssembleMedia(t *testing.T) {
	ct := testCatalog()
	sc := NewScene() // camera at (0,0,10), no frustum yet
	it := sc.AddItem(NewItem("photo-1", Image))

	draws := sc.Assemble(ct, defaultThresholds())
	require.Len(t, draws, 1)
	d := draws[0]
	assert.Same(t, it, d.Item)
	assert.Equal(t, asset.RepMedia, d.Rep.Kind)
	assert.Equal(t, "photo-1", d.Rep.AssetID)
	assert.Equal(t, lod.Full, d.Level)
	assert.Equal(t, lod.QualityLargest, d.Rep.Quality)
}

func TestAssembleMediaQualityByDistance(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	far := sc.AddItem(NewItem("photo-far", Image))
	far.Position = math32.Vec3(0, 0, -40) // 50 from the camera

	draws := sc.Assemble(ct, defaultThresholds())
	require.Len(t, draws, 1)
	assert.Equal(t, lod.Medium, draws[0].Level)
	assert.Equal(t, lod.QualityMedium, draws[0].Rep.Quality)
}

func TestAssembleCulling(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	hidden := sc.AddItem(NewItem("photo-1", Image))
	hidden.Position = math32.Vec3(0, 0, -300) // beyond the far cutoff
	invisible := sc.AddItem(NewItem("photo-2", Image))
	invisible.Visible = false

	assert.Empty(t, sc.Assemble(ct, defaultThresholds()))
}

func TestAssembleObject(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	it := sc.AddItem(NewItem("desk", Object))

	draws := sc.Assemble(ct, defaultThresholds())
	// body plus both components at near-full detail
	require.Len(t, draws, 3)
	for _, d := range draws {
		assert.Same(t, it, d.Item)
		assert.NotEqual(t, lod.Hidden, d.Level)
	}
	assert.Equal(t, asset.RepPlaceholder, draws[0].Rep.Kind, "desk has no model of its own")
	assert.Equal(t, asset.RepModel, draws[1].Rep.Kind)
	assert.Equal(t, "models/crate.glb", draws[1].Rep.ModelRef)

	// the advisory tier is written back for inspection
	require.NotNil(t, it.ObjectProperties)
	assert.Equal(t, draws[0].Level, it.ObjectProperties.LODLevel)
}

func TestAssembleObjectDropsOptionalFar(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	it := sc.AddItem(NewItem("desk", Object))
	it.Position = math32.Vec3(0, 0, -40) // medium tier

	draws := sc.Assemble(ct, defaultThresholds())
	// the optional lamp component is dropped below high detail,
	// leaving only the body and the required crate
	require.Len(t, draws, 2)
	assert.Equal(t, asset.RepPlaceholder, draws[0].Rep.Kind)
	assert.Equal(t, "models/crate.glb", draws[1].Rep.ModelRef)
}

func TestAssembleObjectHideComponents(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	it := sc.AddItem(NewItem("desk", Object))
	it.ObjectProperties.ShowComponents = false

	draws := sc.Assemble(ct, defaultThresholds())
	require.Len(t, draws, 1)
	assert.Equal(t, asset.RepPlaceholder, draws[0].Rep.Kind)
}

func TestAssembleObjectMissing(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	sc.AddItem(NewItem("ghost", Object))

	draws := sc.Assemble(ct, defaultThresholds())
	// broken references degrade to a visible placeholder
	require.Len(t, draws, 1)
	assert.Equal(t, asset.RepPlaceholder, draws[0].Rep.Kind)
}

func TestAssembleCollection(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	it := sc.AddItem(NewItem("pair", ObjectCollection))
	it.Position = math32.Vec3(0, 0, 2)

	draws := sc.Assemble(ct, defaultThresholds())
	require.Len(t, draws, 2)
	// member offsets compose with the item placement
	assert.Equal(t, math32.Vec3(-1, 0, 2), draws[0].Transform.Pos)
	assert.Equal(t, math32.Vec3(1, 0, 2), draws[1].Transform.Pos)
	for _, d := range draws {
		assert.Equal(t, asset.RepModel, d.Rep.Kind)
	}
}

func TestAssembleUnknownType(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	sc.AddItem(NewItem("mystery", AssetType("hologram")))

	draws := sc.Assemble(ct, defaultThresholds())
	require.Len(t, draws, 1)
	assert.Equal(t, asset.RepFailed, draws[0].Rep.Kind)
	assert.Equal(t, asset.FailedColor(), draws[0].Rep.Color)
}

func TestPick(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	near := sc.AddItem(NewItem("photo-near", Image))
	near.Position = math32.Vec3(0, 0, 2)
	farther := sc.AddItem(NewItem("photo-far", Image))
	farther.Position = math32.Vec3(0, 0, -2)
	off := sc.AddItem(NewItem("photo-off", Image))
	off.Position = math32.Vec3(50, 0, 0)
	locked := sc.AddItem(NewItem("photo-locked", Image))
	locked.Position = math32.Vec3(0, 0, 0)
	locked.Clickable = false

	ray := math32.Ray{Origin: math32.Vec3(0, 0, 10), Dir: math32.Vec3(0, 0, -1)}
	hits := sc.Pick(ct, ray)
	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Item, "closest hit first")
	assert.Same(t, farther, hits[1].Item)
}

func TestPickObjectBounds(t *testing.T) {
	ct := testCatalog()
	sc := NewScene()
	it := sc.AddItem(NewItem("desk", Object))
	it.Position = math32.Vec3(0, 0, 0)

	ray := math32.Ray{Origin: math32.Vec3(0, 0.5, 10), Dir: math32.Vec3(0, 0, -1)}
	hits := sc.Pick(ct, ray)
	require.Len(t, hits, 1)
	assert.Same(t, it, hits[0].Item)
}

func TestConfig(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	assert.NoError(t, cf.Validate())

	cf.LOD.High = cf.LOD.Medium + 1 // out of order
	assert.Error(t, cf.Validate())

	cf.Defaults()
	cf.FloorSize = 0
	assert.Error(t, cf.Validate())
}

func TestOpenConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "spatial.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
floor_size = 40.0

[lod]
full = 5.0
high = 15.0
medium = 40.0
far = 120.0
`), 0o644))

	cf, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(40), cf.FloorSize)
	assert.Equal(t, float32(5), cf.LOD.Full)
	assert.Equal(t, float32(120), cf.LOD.Far)

	// partial files keep defaults for unset fields
	fn2 := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(fn2, []byte("floor_size = 25.0\n"), 0o644))
	cf, err = OpenConfig(fn2)
	require.NoError(t, err)
	assert.Equal(t, float32(25), cf.FloorSize)
	assert.Equal(t, float32(10), cf.LOD.Full)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[lod]\nfull = -1.0\n"), 0o644))
	_, err = OpenConfig(bad)
	assert.Error(t, err)

	_, err = OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
