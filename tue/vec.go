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

package tue

import (
	"fmt"
	"strings"
)

// Vec is a vector of N components of type T.
//
// Components live in a four-slot array whatever N is, which keeps every
// vector the size of one 128-bit register for float32. Slots at or past N
// are always zero, so two vectors of the same type compare equal with ==
// exactly when their components do.
//
// The zero value is the zero vector.
type Vec[T Scalar, N Dim] struct {
	c [4]T
}

// Vec2 is a two-component vector.
type Vec2[T Scalar] = Vec[T, D2]

// Vec3 is a three-component vector.
type Vec3[T Scalar] = Vec[T, D3]

// Vec4 is a four-component vector.
type Vec4[T Scalar] = Vec[T, D4]

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vec[T, D2] {
	return Vec[T, D2]{c: [4]T{x, y}}
}

// V3 returns the vector (x, y, z).
func V3[T Scalar](x, y, z T) Vec[T, D3] {
	return Vec[T, D3]{c: [4]T{x, y, z}}
}

// V4 returns the vector (x, y, z, w).
func V4[T Scalar](x, y, z, w T) Vec[T, D4] {
	return Vec[T, D4]{c: [4]T{x, y, z, w}}
}

// Splat returns a vector with every component set to s.
//
//	v := tue.Splat[tue.D3](float32(1)) // (1, 1, 1)
func Splat[N Dim, T Scalar](s T) Vec[T, N] {
	var v Vec[T, N]
	for i := range dimLen[N]() {
		v.c[i] = s
	}
	return v
}

// Zero returns the zero vector.
func Zero[T Scalar, N Dim]() Vec[T, N] {
	return Vec[T, N]{}
}

// FromSlice loads the first N elements of s. Missing elements are zero.
func FromSlice[N Dim, T Scalar](s []T) Vec[T, N] {
	var v Vec[T, N]
	copy(v.c[:dimLen[N]()], s)
	return v
}

// Axis returns the unit vector along component i. For i >= N there is no
// such axis and the result is the zero vector.
func Axis[N Dim, T Scalar](i int) Vec[T, N] {
	var v Vec[T, N]
	v.Set(i, 1)
	return v
}

// XAxis returns (1, 0, ...).
func XAxis[N Dim, T Scalar]() Vec[T, N] { return Axis[N, T](0) }

// YAxis returns (0, 1, ...).
func YAxis[N Dim, T Scalar]() Vec[T, N] { return Axis[N, T](1) }

// ZAxis returns (0, 0, 1, ...). For two-component vectors it is zero.
func ZAxis[N Dim, T Scalar]() Vec[T, N] { return Axis[N, T](2) }

// WAxis returns (0, 0, 0, 1).
func WAxis[T Scalar]() Vec[T, D4] { return Axis[D4, T](3) }

// Extend3 returns (v.x, v.y, z).
func Extend3[T Scalar](v Vec[T, D2], z T) Vec[T, D3] {
	c := v.c
	c[2] = z
	return Vec[T, D3]{c: c}
}

// Extend4 returns (v.x, v.y, v.z, w).
func Extend4[T Scalar](v Vec[T, D3], w T) Vec[T, D4] {
	c := v.c
	c[3] = w
	return Vec[T, D4]{c: c}
}

// Extend4From2 returns (v.x, v.y, z, w).
func Extend4From2[T Scalar](v Vec[T, D2], z, w T) Vec[T, D4] {
	c := v.c
	c[2], c[3] = z, w
	return Vec[T, D4]{c: c}
}

// Resize converts v to M components, dropping trailing components or
// filling new ones with zero.
//
//	xy := tue.Resize[tue.D2](v4)
func Resize[M Dim, T Scalar, N Dim](v Vec[T, N]) Vec[T, M] {
	var r Vec[T, M]
	n := min(dimLen[M](), dimLen[N]())
	copy(r.c[:n], v.c[:n])
	return r
}

// Convert returns v with every component converted to U using Go's
// numeric conversion rules. It is the only way to mix component types.
func Convert[U Scalar, T Scalar, N Dim](v Vec[T, N]) Vec[U, N] {
	var r Vec[U, N]
	for i := range dimLen[N]() {
		r.c[i] = U(v.c[i])
	}
	return r
}

// Len returns the number of components, N.
func (v Vec[T, N]) Len() int {
	return dimLen[N]()
}

// At returns component i. Indices in [N, 4) read as zero.
func (v Vec[T, N]) At(i int) T {
	return v.c[i]
}

// Set assigns component i. Writes to i in [N, 4) are dropped so the
// padding stays zero; larger indices panic.
func (v *Vec[T, N]) Set(i int, x T) {
	if i < dimLen[N]() {
		v.c[i] = x
	}
}

// Slice returns a copy of the components.
func (v Vec[T, N]) Slice() []T {
	out := make([]T, dimLen[N]())
	copy(out, v.c[:])
	return out
}

// Sum returns the sum of all components.
func (v Vec[T, N]) Sum() T {
	s := v.c[0]
	for i := 1; i < dimLen[N](); i++ {
		s += v.c[i]
	}
	return s
}

// Map returns the vector whose component i is f(v[i]).
func (v Vec[T, N]) Map(f func(T) T) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] = f(v.c[i])
	}
	return v
}

// Zip returns the vector whose component i is f(v[i], o[i]).
func (v Vec[T, N]) Zip(o Vec[T, N], f func(a, b T) T) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] = f(v.c[i], o.c[i])
	}
	return v
}

// Equal reports whether all components are equal. There is no tolerance:
// build approximate comparisons from math.Abs and math.Less.
func (v Vec[T, N]) Equal(o Vec[T, N]) bool {
	for i := range dimLen[N]() {
		if v.c[i] != o.c[i] {
			return false
		}
	}
	return true
}

// NotEqual reports whether any component differs.
func (v Vec[T, N]) NotEqual(o Vec[T, N]) bool {
	return !v.Equal(o)
}

// String formats the vector as (x, y, ...).
func (v Vec[T, N]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range dimLen[N]() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v.c[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
