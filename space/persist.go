// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"encoding/json"
	"io"
	"os"

	"cogentcore.org/core/math32"
)

// cameraDoc is the persisted subset of the camera: pose parameters
// only, with matrices re-derived on load.
type cameraDoc struct {
	Position math32.Vector3 `json:"position"`
	Target   math32.Vector3 `json:"target"`
	UpDir    math32.Vector3 `json:"upDir"`
	FOV      float32        `json:"fov"`
	Near     float32        `json:"near"`
	Far      float32        `json:"far"`
	Ortho    bool           `json:"ortho,omitempty"`
}

// sceneDoc is the scene serialization format. Round-tripping through
// it reproduces every item field exactly; this is the one format
// compatibility surface of the engine.
type sceneDoc struct {
	Items       []*Item     `json:"items"`
	Environment Environment `json:"environment"`
	Camera      cameraDoc   `json:"camera"`
}

// WriteJSON writes the scene document to w.
func (sc *Scene) WriteJSON(w io.Writer) error {
	doc := sceneDoc{
		Items:       sc.Items,
		Environment: sc.Environment,
		Camera: cameraDoc{
			Position: sc.Camera.Pose.Pos,
			Target:   sc.Camera.Target,
			UpDir:    sc.Camera.UpDir,
			FOV:      sc.Camera.FOV,
			Near:     sc.Camera.Near,
			Far:      sc.Camera.Far,
			Ortho:    sc.Camera.Ortho,
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(doc)
}

// ReadJSON replaces the scene contents with the document read from r.
func (sc *Scene) ReadJSON(r io.Reader) error {
	var doc sceneDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return err
	}
	sc.Items = doc.Items
	for _, it := range sc.Items {
		it.Defaults()
	}
	sc.Environment = doc.Environment
	sc.Camera.Defaults()
	sc.Camera.FOV = doc.Camera.FOV
	sc.Camera.Near = doc.Camera.Near
	sc.Camera.Far = doc.Camera.Far
	sc.Camera.Ortho = doc.Camera.Ortho
	sc.Camera.Pose.Pos = doc.Camera.Position
	sc.Camera.LookAt(doc.Camera.Target, doc.Camera.UpDir)
	return nil
}

// Save writes the scene document to the given file.
func (sc *Scene) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return sc.WriteJSON(f)
}

// Open replaces the scene contents from the given file.
func (sc *Scene) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return sc.ReadJSON(f)
}
