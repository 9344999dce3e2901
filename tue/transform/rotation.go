// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package transform converts between rotation representations and builds
// the usual affine transform matrices.
//
// Three rotation forms are supported:
//
//   - rotation vector: a Vec3 whose direction is the axis and whose length
//     is the angle in radians;
//   - axis-angle: a unit axis plus an angle, packed as a Vec4 (x, y, z, angle);
//   - rotation quaternion: a unit tue.Quat.
//
// Conversions from a rotation vector go through axis-angle. A zero rotation
// vector has no axis; it maps to the axis-angle (0, 0, 1, 0) and to the
// identity quaternion. Every function is total and never returns an error.
package transform

import (
	"github.com/ajroetker/go-tue/tue"
	"github.com/ajroetker/go-tue/tue/math"
	"github.com/ajroetker/go-tue/tue/scalar"
)

// AxisAngle converts a rotation vector to an axis-angle vector.
// If v has zero length it returns (0, 0, 1, 0).
func AxisAngle[T tue.Floats](v tue.Vec3[T]) tue.Vec4[T] {
	angle := math.Length(v)
	axis := scalar.Select(angle != 0, v.DivScalar(angle), tue.ZAxis[tue.D3, T]())
	return tue.Extend4(axis, angle)
}

// AxisAngleXYZ is AxisAngle of the rotation vector (x, y, z).
func AxisAngleXYZ[T tue.Floats](x, y, z T) tue.Vec4[T] {
	return AxisAngle(tue.V3(x, y, z))
}

// RotationVec converts an axis and an angle to a rotation vector.
func RotationVec[T tue.Scalar](axis tue.Vec3[T], angle T) tue.Vec3[T] {
	return axis.MulScalar(angle)
}

// RotationVecXYZ converts the axis (x, y, z) and an angle to a rotation
// vector.
func RotationVecXYZ[T tue.Scalar](x, y, z, angle T) tue.Vec3[T] {
	return tue.V3(x*angle, y*angle, z*angle)
}

// RotationVecFromAxisAngle converts an axis-angle vector to a rotation
// vector.
func RotationVecFromAxisAngle[T tue.Scalar](v tue.Vec4[T]) tue.Vec3[T] {
	return RotationVec(v.XYZ(), v.W())
}

// RotationQuat converts an axis and an angle to a rotation quaternion.
// The axis is expected to have unit length.
func RotationQuat[T tue.Floats](axis tue.Vec3[T], angle T) tue.Quat[T] {
	s, c := scalar.SinCos(angle / 2)
	return tue.NewQuat(axis.MulScalar(s), c)
}

// RotationQuatXYZ converts the axis (x, y, z) and an angle to a rotation
// quaternion.
func RotationQuatXYZ[T tue.Floats](x, y, z, angle T) tue.Quat[T] {
	s, c := scalar.SinCos(angle / 2)
	return tue.QuatXYZW(x*s, y*s, z*s, c)
}

// RotationQuatFromAxisAngle converts an axis-angle vector to a rotation
// quaternion.
func RotationQuatFromAxisAngle[T tue.Floats](v tue.Vec4[T]) tue.Quat[T] {
	return RotationQuat(v.XYZ(), v.W())
}

// RotationQuatFromVec converts a rotation vector to a rotation quaternion.
// If v has zero length it returns the identity quaternion (0, 0, 0, 1).
func RotationQuatFromVec[T tue.Floats](v tue.Vec3[T]) tue.Quat[T] {
	return RotationQuatFromAxisAngle(AxisAngle(v))
}

// RotationQuatFromVecXYZ is RotationQuatFromVec of (x, y, z).
func RotationQuatFromVecXYZ[T tue.Floats](x, y, z T) tue.Quat[T] {
	return RotationQuatFromVec(tue.V3(x, y, z))
}
