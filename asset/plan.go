// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/mediaforge/spatial/geom"
	"github.com/mediaforge/spatial/lod"
)

// RepKind is the kind of representation requested from the rendering
// host for one plan part.
type RepKind string

const (
	// RepModel draws the referenced model asset.
	RepModel RepKind = "model"

	// RepPlaceholder draws a colored placeholder box, either because
	// the object has no model or because a reference was broken.
	RepPlaceholder RepKind = "placeholder"

	// RepFailed draws the distinct failed-resolution placeholder, for
	// assets whose data could not be fetched or decoded.
	RepFailed RepKind = "failed"

	// RepMedia draws a textured plane for an image, video or audio
	// asset at the resolution variant named by Quality.
	RepMedia RepKind = "media"

	// RepText draws a text panel.
	RepText RepKind = "text"
)

// Representation is an opaque request to the rendering host: what to
// draw for one part. The host fetches media and creates GPU resources.
type Representation struct {

	// Kind selects the drawing path.
	Kind RepKind

	// ModelRef is the model asset to draw for [RepModel].
	ModelRef string

	// AssetID is the media or text asset to draw for [RepMedia] and
	// [RepText].
	AssetID string

	// Quality is the resolution variant to fetch for [RepMedia].
	Quality lod.Quality

	// Color is the placeholder color for [RepPlaceholder] and
	// [RepFailed].
	Color color.RGBA
}

// Part is one drawable element of a render plan, positioned relative
// to the plan root.
type Part struct {

	// ObjectID is the object asset this part draws.
	ObjectID string

	// ComponentID is set for composite component parts; empty for the
	// object's own body.
	ComponentID string

	// Role is the component role, for host-side grouping.
	Role string

	// Transform places the part relative to the plan root.
	Transform geom.Transform

	// Rep is the representation to request.
	Rep Representation
}

// Plan is the resolved render plan for one object asset.
type Plan struct {

	// ObjectID is the plan root.
	ObjectID string

	// Parts are the drawable elements. Always at least one: broken
	// roots degrade to a single placeholder part.
	Parts []Part
}

// PlanOptions control render-plan building.
type PlanOptions struct {

	// ShowComponents includes composite component parts.
	ShowComponents bool

	// Level drops optional (Required=false) components from plans
	// below [lod.High]. Leave at the default [lod.Full] to keep all.
	Level lod.Level
}

// DefaultPlanOptions shows components at full detail.
func DefaultPlanOptions() *PlanOptions {
	return &PlanOptions{ShowComponents: true, Level: lod.Full}
}

// Plan builds the render plan for the object with the given id.
// It never fails: an unresolvable root or component degrades to a
// placeholder part after a one-time report, so authors can see the
// missing link instead of silently losing it.
func (ct *Catalog) Plan(id string, opts *PlanOptions) *Plan {
	if opts == nil {
		opts = DefaultPlanOptions()
	}
	pl := &Plan{ObjectID: id}
	ob, err := ct.ObjectByID(id)
	if err != nil {
		ct.reportOnce("ref:"+id, err)
		pl.Parts = append(pl.Parts, Part{
			ObjectID:  id,
			Transform: geom.Identity(),
			Rep:       Representation{Kind: RepPlaceholder, Color: CategoryColor("")},
		})
		return pl
	}
	pl.Parts = append(pl.Parts, Part{
		ObjectID:  id,
		Transform: geom.Identity(),
		Rep:       ct.bodyRep(ob),
	})
	if ob.Type != Composite || !opts.ShowComponents {
		return pl
	}
	for i := range ob.Components {
		co := &ob.Components[i]
		if !co.Required && opts.Level < lod.High {
			continue
		}
		pl.Parts = append(pl.Parts, ct.componentPart(ob, co))
	}
	return pl
}

// bodyRep selects the representation for an object's own body: its
// model when one is referenced, a category-colored placeholder
// otherwise.
func (ct *Catalog) bodyRep(ob *Object) Representation {
	if ob.ModelRef != "" {
		return Representation{Kind: RepModel, ModelRef: ob.ModelRef}
	}
	return Representation{Kind: RepPlaceholder, Color: CategoryColor(ob.Category)}
}

func (ct *Catalog) componentPart(ob *Object, co *Component) Part {
	pt := Part{
		ObjectID:    co.ObjectID,
		ComponentID: co.ID,
		Role:        co.Role,
		Transform:   ct.componentTransform(ob, co),
	}
	ref, err := ct.ObjectByID(co.ObjectID)
	if err != nil {
		// render placeholder geometry rather than omitting silently
		ct.reportOnce("ref:"+co.ObjectID, err)
		pt.Rep = Representation{Kind: RepPlaceholder, Color: CategoryColor(ob.Category)}
		return pt
	}
	pt.Rep = ct.bodyRep(ref)
	return pt
}

// componentTransform composes a component's transform through its
// ParentID chain. A cycle in the chain degrades that component to
// flat (unparented) placement after a one-time report.
func (ct *Catalog) componentTransform(ob *Object, co *Component) geom.Transform {
	tr := co.Transform
	tr.Defaults()
	if co.ParentID == "" {
		return tr
	}
	byID := make(map[string]*Component, len(ob.Components))
	for i := range ob.Components {
		byID[ob.Components[i].ID] = &ob.Components[i]
	}
	visited := map[string]bool{co.ID: true}
	for pid := co.ParentID; pid != ""; {
		if visited[pid] {
			ct.reportOnce("cycle:"+ob.ID+"/"+co.ID,
				fmt.Errorf("%w: component %q of object %q has a cyclic parent chain", ErrCycle, co.ID, ob.ID))
			flat := co.Transform
			flat.Defaults()
			return flat
		}
		visited[pid] = true
		par, ok := byID[pid]
		if !ok {
			break // dangling parent reference: treat as unparented
		}
		ptr := par.Transform
		ptr.Defaults()
		tr = ptr.Compose(tr)
		pid = par.ParentID
	}
	return tr
}

// ValidateComponents checks every component parent chain of the given
// object for cycles and dangling references, returning a joined error
// describing each problem found. A nil return means the structure is
// sound.
func (ct *Catalog) ValidateComponents(ob *Object) error {
	byID := make(map[string]*Component, len(ob.Components))
	for i := range ob.Components {
		byID[ob.Components[i].ID] = &ob.Components[i]
	}
	var errs []error
	for i := range ob.Components {
		co := &ob.Components[i]
		visited := map[string]bool{co.ID: true}
		for pid := co.ParentID; pid != ""; {
			if visited[pid] {
				errs = append(errs, fmt.Errorf("%w: component %q of object %q", ErrCycle, co.ID, ob.ID))
				break
			}
			visited[pid] = true
			par, ok := byID[pid]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: component %q parent %q of object %q", ErrNotFound, co.ID, pid, ob.ID))
				break
			}
			pid = par.ParentID
		}
		if _, err := ct.ObjectByID(co.ObjectID); err != nil {
			errs = append(errs, fmt.Errorf("component %q of object %q: %w", co.ID, ob.ID, err))
		}
	}
	return errors.Join(errs...)
}
