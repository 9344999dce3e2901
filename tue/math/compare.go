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

func compare[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N], f func(x, y T) bool) tue.Mask[N] {
	var m tue.Mask[N]
	for i := range a.Len() {
		m.Set(i, f(a.At(i), b.At(i)))
	}
	return m
}

// Less returns the mask of components where a < b.
func Less[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Mask[N] {
	return compare(a, b, scalar.Less[T])
}

// LessEqual returns the mask of components where a <= b.
func LessEqual[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Mask[N] {
	return compare(a, b, scalar.LessEqual[T])
}

// Greater returns the mask of components where a > b.
func Greater[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Mask[N] {
	return compare(a, b, scalar.Greater[T])
}

// Equal returns the mask of components where a == b.
func Equal[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Mask[N] {
	return compare(a, b, scalar.Equal[T])
}

// NotEqual returns the mask of components where a != b.
func NotEqual[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Mask[N] {
	return compare(a, b, scalar.NotEqual[T])
}

// Select returns the vector whose component i is a[i] where mask[i] is set
// and b[i] otherwise. Both a and b are evaluated by the caller.
//
// To choose between whole values on a single condition use scalar.Select.
func Select[T tue.Scalar, N tue.Dim](mask tue.Mask[N], a, b tue.Vec[T, N]) tue.Vec[T, N] {
	for i := range a.Len() {
		a.Set(i, scalar.Select(mask.At(i), a.At(i), b.At(i)))
	}
	return a
}
