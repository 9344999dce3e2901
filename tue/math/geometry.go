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

package math

import (
	"github.com/ajroetker/go-tue/tue"
	"github.com/ajroetker/go-tue/tue/scalar"
)

// Dot returns the dot product of a and b.
func Dot[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) T {
	return a.Mul(b).Sum()
}

// Cross returns the right-handed cross product a × b.
func Cross[T tue.Scalar](a, b tue.Vec3[T]) tue.Vec3[T] {
	return tue.V3(
		a.Y()*b.Z()-a.Z()*b.Y(),
		a.Z()*b.X()-a.X()*b.Z(),
		a.X()*b.Y()-a.Y()*b.X(),
	)
}

// Length2 returns the squared length of v, Dot(v, v).
func Length2[T tue.Scalar, N tue.Dim](v tue.Vec[T, N]) T {
	return Dot(v, v)
}

// Length returns the Euclidean length of v.
func Length[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) T {
	return scalar.Sqrt(Length2(v))
}

// Normalize returns v divided by its length. The zero vector has no
// direction; its result is all NaN.
func Normalize[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.DivScalar(Length(v))
}

// QuatDot returns the four-component dot product of a and b.
func QuatDot[T tue.Scalar](a, b tue.Quat[T]) T {
	return Dot(a.V(), b.V()) + a.S()*b.S()
}

// QuatLength2 returns the squared magnitude of q.
func QuatLength2[T tue.Scalar](q tue.Quat[T]) T {
	return QuatDot(q, q)
}

// QuatLength returns the magnitude of q.
func QuatLength[T tue.Floats](q tue.Quat[T]) T {
	return scalar.Sqrt(QuatLength2(q))
}

// QuatNormalize returns q scaled to unit magnitude. Like Normalize, the
// zero quaternion yields NaN.
func QuatNormalize[T tue.Floats](q tue.Quat[T]) tue.Quat[T] {
	return q.DivScalar(QuatLength(q))
}
