// Copyright (c) 2025, The Mediaforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lod

import "cogentcore.org/core/math32"

// Pose is the position, rotation and scale of the camera,
// relative to pointing at negative Z with positive Y up.
type Pose struct {
	Pos    math32.Vector3
	Scale  math32.Vector3
	Quat   math32.Quat
	Matrix math32.Matrix4
}

// Defaults ensures scale and rotation have usable (identity) values.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat == (math32.Quat{}) {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local matrix from position, rotation, scale.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// LookAt rotates the pose to point at the given target location using
// the given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

// Camera defines the viewpoint used for level-of-detail classification
// and frustum culling, and the standard orbit / pan / zoom navigation
// over the space.
type Camera struct {

	// Pose is the overall position and orientation of the camera.
	Pose Pose

	// Target is where the camera is pointing; moves with panning and
	// is reset by LookAt.
	Target math32.Vector3

	// UpDir is the camera up direction; reset by LookAt.
	UpDir math32.Vector3

	// Ortho switches from the default perspective projection to an
	// orthographic one covering the Near - Far volume.
	Ortho bool

	// FOV is the field of view in degrees.
	FOV float32

	// Aspect is the width / height ratio.
	Aspect float32

	// Near and Far are the clip plane distances.
	Near float32
	Far  float32

	// ViewMatrix is the inverse of the pose matrix.
	ViewMatrix math32.Matrix4

	// ProjectionMatrix is the perspective or orthographic projection.
	ProjectionMatrix math32.Matrix4

	// Frustum is the viewable volume, updated by UpdateMatrix.
	// It is nil until the first update; classification falls back to
	// pure distance thresholding while it is nil.
	Frustum *math32.Frustum
}

// Defaults sets standard camera parameters and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = 0.01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose places the camera at (0,0,10) looking at the origin with
// positive Y up.
func (cm *Camera) DefaultPose() {
	cm.Pose = Pose{}
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matrices and the frustum.
// Classification reads the frustum, so this must be called after any
// change to the camera pose. It is cheap enough to call per frame.
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	cm.ViewMatrix.SetInverse(&cm.Pose.Matrix)
	if cm.Ortho {
		height := 2 * cm.Far * math32.Tan(math32.DegToRad(cm.FOV*0.5))
		width := cm.Aspect * height
		cm.ProjectionMatrix.SetOrthographic(width, height, cm.Near, cm.Far)
	} else {
		cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	}
	var proj math32.Matrix4
	proj.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
	cm.Frustum = math32.NewFrustumFromMatrix(&proj)
}

// LookAt points the camera at the given target location using the
// given up direction, and saves both for future navigation.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at the origin with Y up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at the current target.
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector from the target to the camera position.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// Orbit rotates the camera about the target by the given angles in
// degrees (delX = left / right, delY = up / down), keeping the same
// distance from the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	up := cm.UpDir
	right := cm.UpDir.Cross(ctdir.Normal()).Normal()

	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq)
	cm.LookAtTarget()
}

// Pan moves the camera and target in the plane of the current view.
func (cm *Camera) Pan(delX, delY float32) {
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	td := dx.Add(dy)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.UpdateMatrix()
}

// PanAxis moves the camera and target along the world X and Y axes.
func (cm *Camera) PanAxis(delX, delY float32) {
	td := math32.Vec3(-delX, -delY, 0)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.UpdateMatrix()
}

// PanTarget moves the target along world axes and re-points the camera
// at the new target location.
func (cm *Camera) PanTarget(delX, delY, delZ float32) {
	td := math32.Vec3(-delX, -delY, delZ)
	cm.Target.SetAdd(td)
	cm.LookAtTarget()
}

// Zoom moves the camera along the view axis by the given fraction of
// the current distance to the target: positive moves away, negative
// moves closer. The target is pushed back when closer than one unit.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
	cm.UpdateMatrix()
}
