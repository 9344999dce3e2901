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

package transform

import (
	"github.com/ajroetker/go-tue/tue"
	"github.com/ajroetker/go-tue/tue/math"
)

// Rotate applies the unit quaternion q to v, computing q * (v, 0) * q⁻¹
// without forming the intermediate quaternions.
func Rotate[T tue.Floats](q tue.Quat[T], v tue.Vec3[T]) tue.Vec3[T] {
	t := math.Cross(q.V(), v).MulScalar(2)
	return v.Add(t.MulScalar(q.S())).Add(math.Cross(q.V(), t))
}

// RotationMat3 returns the 3x3 matrix of the unit quaternion q.
func RotationMat3[T tue.Floats](q tue.Quat[T]) tue.Mat3[T] {
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W()
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return tue.Cols3(
		tue.V3(1-2*(yy+zz), 2*(xy+wz), 2*(xz-wy)),
		tue.V3(2*(xy-wz), 1-2*(xx+zz), 2*(yz+wx)),
		tue.V3(2*(xz+wy), 2*(yz-wx), 1-2*(xx+yy)),
	)
}

// RotationMat4 returns the homogeneous 4x4 matrix of the unit quaternion q.
func RotationMat4[T tue.Floats](q tue.Quat[T]) tue.Mat4[T] {
	return tue.ResizeMat[tue.D4, tue.D4](RotationMat3(q))
}

// TranslationMat4 returns the homogeneous matrix translating by v.
func TranslationMat4[T tue.Scalar](v tue.Vec3[T]) tue.Mat4[T] {
	m := tue.Identity[T, tue.D4, tue.D4]()
	m.SetColumn(3, tue.Extend4(v, 1))
	return m
}

// ScaleMat3 returns the matrix scaling each axis by the matching
// component of v.
func ScaleMat3[T tue.Scalar](v tue.Vec3[T]) tue.Mat3[T] {
	var m tue.Mat3[T]
	for i := range 3 {
		m.Set(i, i, v.At(i))
	}
	return m
}

// ScaleMat4 returns the homogeneous form of ScaleMat3.
func ScaleMat4[T tue.Scalar](v tue.Vec3[T]) tue.Mat4[T] {
	return tue.ResizeMat[tue.D4, tue.D4](ScaleMat3(v))
}
