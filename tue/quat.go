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

import "fmt"

// Quat is a quaternion with vector (imaginary) part V and scalar (real)
// part S. Used as a rotation it is expected to have unit length; the type
// does not enforce that, see math.QuatNormalize.
//
// The zero value is the zero quaternion, not the identity.
type Quat[T Scalar] struct {
	v Vec[T, D3]
	s T
}

// NewQuat returns the quaternion with vector part v and scalar part s.
func NewQuat[T Scalar](v Vec[T, D3], s T) Quat[T] {
	return Quat[T]{v: v, s: s}
}

// QuatXYZW returns the quaternion ((x, y, z), w).
func QuatXYZW[T Scalar](x, y, z, w T) Quat[T] {
	return Quat[T]{v: V3(x, y, z), s: w}
}

// QuatFromVec4 reinterprets (x, y, z, w) as a quaternion.
func QuatFromVec4[T Scalar](v Vec[T, D4]) Quat[T] {
	return Quat[T]{v: Resize[D3](v), s: v.c[3]}
}

// IdentityQuat returns (0, 0, 0, 1), the rotation by zero.
func IdentityQuat[T Scalar]() Quat[T] {
	return Quat[T]{s: 1}
}

// ConvertQuat returns q with every component converted to U.
func ConvertQuat[U Scalar, T Scalar](q Quat[T]) Quat[U] {
	return Quat[U]{v: Convert[U](q.v), s: U(q.s)}
}

// V returns the vector part.
func (q Quat[T]) V() Vec[T, D3] { return q.v }

// S returns the scalar part.
func (q Quat[T]) S() T { return q.s }

// SetV replaces the vector part.
func (q *Quat[T]) SetV(v Vec[T, D3]) { q.v = v }

// SetS replaces the scalar part.
func (q *Quat[T]) SetS(s T) { q.s = s }

func (q Quat[T]) X() T { return q.v.c[0] }
func (q Quat[T]) Y() T { return q.v.c[1] }
func (q Quat[T]) Z() T { return q.v.c[2] }
func (q Quat[T]) W() T { return q.s }

// Vec4 returns (x, y, z, w).
func (q Quat[T]) Vec4() Vec[T, D4] {
	return Extend4(q.v, q.s)
}

// Mul returns the Hamilton product q * o, the rotation o followed by q.
// It is not commutative.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	v := o.v.MulScalar(q.s).Add(q.v.MulScalar(o.s)).Add(cross(q.v, o.v))
	return Quat[T]{v: v, s: q.s*o.s - dot(q.v, o.v)}
}

// MulAssign sets q to q * o.
func (q *Quat[T]) MulAssign(o Quat[T]) { *q = q.Mul(o) }

// Conjugate returns q with its vector part negated. For a unit quaternion
// it is the inverse rotation.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{v: q.v.Neg(), s: q.s}
}

// Neg returns -q, which represents the same rotation as q.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{v: q.v.Neg(), s: -q.s}
}

// Add returns the componentwise sum q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{v: q.v.Add(o.v), s: q.s + o.s}
}

// Sub returns the componentwise difference q - o.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{v: q.v.Sub(o.v), s: q.s - o.s}
}

// MulScalar scales all four components by s.
func (q Quat[T]) MulScalar(s T) Quat[T] {
	return Quat[T]{v: q.v.MulScalar(s), s: q.s * s}
}

// DivScalar divides all four components by s.
func (q Quat[T]) DivScalar(s T) Quat[T] {
	return Quat[T]{v: q.v.DivScalar(s), s: q.s / s}
}

// Equal reports whether all four components are equal.
func (q Quat[T]) Equal(o Quat[T]) bool {
	return q.v.Equal(o.v) && q.s == o.s
}

// String formats q as ((x, y, z), w).
func (q Quat[T]) String() string {
	return fmt.Sprintf("(%v, %v)", q.v, q.s)
}
