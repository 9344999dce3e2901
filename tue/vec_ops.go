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

// Componentwise operators. Every operation loops over the first N slots
// only, so the zero padding of smaller vectors is never touched.

// Add returns v + o.
func (v Vec[T, N]) Add(o Vec[T, N]) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] += o.c[i]
	}
	return v
}

// Sub returns v - o.
func (v Vec[T, N]) Sub(o Vec[T, N]) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] -= o.c[i]
	}
	return v
}

// Mul returns the componentwise product of v and o.
func (v Vec[T, N]) Mul(o Vec[T, N]) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] *= o.c[i]
	}
	return v
}

// Div returns the componentwise quotient of v and o. Dividing by a zero
// component yields ±Inf or NaN for floats and panics for integers, as the
// scalar division would.
func (v Vec[T, N]) Div(o Vec[T, N]) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] /= o.c[i]
	}
	return v
}

// AddScalar returns v + (s, s, ...).
func (v Vec[T, N]) AddScalar(s T) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] += s
	}
	return v
}

// SubScalar returns v - (s, s, ...).
func (v Vec[T, N]) SubScalar(s T) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] -= s
	}
	return v
}

// MulScalar returns v scaled by s.
func (v Vec[T, N]) MulScalar(s T) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] *= s
	}
	return v
}

// DivScalar returns v with every component divided by s.
func (v Vec[T, N]) DivScalar(s T) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] /= s
	}
	return v
}

// Neg returns -v.
func (v Vec[T, N]) Neg() Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] = -v.c[i]
	}
	return v
}

// ScalarSub returns (s, s, ...) - v.
func ScalarSub[T Scalar, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] = s - v.c[i]
	}
	return v
}

// ScalarDiv returns (s, s, ...) divided componentwise by v.
func ScalarDiv[T Scalar, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	for i := range dimLen[N]() {
		v.c[i] = s / v.c[i]
	}
	return v
}

// Compound assignment forms.

// AddAssign sets v to v + o.
func (v *Vec[T, N]) AddAssign(o Vec[T, N]) { *v = v.Add(o) }

// SubAssign sets v to v - o.
func (v *Vec[T, N]) SubAssign(o Vec[T, N]) { *v = v.Sub(o) }

// MulAssign sets v to the componentwise product v * o.
func (v *Vec[T, N]) MulAssign(o Vec[T, N]) { *v = v.Mul(o) }

// DivAssign sets v to the componentwise quotient v / o.
func (v *Vec[T, N]) DivAssign(o Vec[T, N]) { *v = v.Div(o) }

// AddScalarAssign adds s to every component of v.
func (v *Vec[T, N]) AddScalarAssign(s T) { *v = v.AddScalar(s) }

// SubScalarAssign subtracts s from every component of v.
func (v *Vec[T, N]) SubScalarAssign(s T) { *v = v.SubScalar(s) }

// MulScalarAssign scales v by s.
func (v *Vec[T, N]) MulScalarAssign(s T) { *v = v.MulScalar(s) }

// DivScalarAssign divides every component of v by s.
func (v *Vec[T, N]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// Inc adds one to every component. For the postfix form keep a copy first:
//
//	old := v
//	v.Inc()
func (v *Vec[T, N]) Inc() { *v = v.AddScalar(1) }

// Dec subtracts one from every component.
func (v *Vec[T, N]) Dec() { *v = v.SubScalar(1) }

// Integer-only operators. They are free functions because a method cannot
// narrow the receiver's constraint; using them on a float vector is a
// compile error.

// Mod returns the componentwise remainder a % b.
func Mod[T Integers, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return a.Zip(b, func(x, y T) T { return x % y })
}

// ModScalar returns v % (s, s, ...).
func ModScalar[T Integers, N Dim](v Vec[T, N], s T) Vec[T, N] {
	return v.Map(func(x T) T { return x % s })
}

// And returns the componentwise a & b.
func And[T Integers, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return a.Zip(b, func(x, y T) T { return x & y })
}

// AndScalar returns v & (s, s, ...).
func AndScalar[T Integers, N Dim](v Vec[T, N], s T) Vec[T, N] {
	return v.Map(func(x T) T { return x & s })
}

// Or returns the componentwise a | b.
func Or[T Integers, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return a.Zip(b, func(x, y T) T { return x | y })
}

// OrScalar returns v | (s, s, ...).
func OrScalar[T Integers, N Dim](v Vec[T, N], s T) Vec[T, N] {
	return v.Map(func(x T) T { return x | s })
}

// Xor returns the componentwise a ^ b.
func Xor[T Integers, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return a.Zip(b, func(x, y T) T { return x ^ y })
}

// XorScalar returns v ^ (s, s, ...).
func XorScalar[T Integers, N Dim](v Vec[T, N], s T) Vec[T, N] {
	return v.Map(func(x T) T { return x ^ s })
}

// Not returns the componentwise bitwise complement of v.
func Not[T Integers, N Dim](v Vec[T, N]) Vec[T, N] {
	return v.Map(func(x T) T { return ^x })
}

// Shl shifts each component of a left by the matching component of b.
func Shl[T Integers, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return a.Zip(b, func(x, y T) T { return x << y })
}

// ShlScalar shifts every component of v left by s bits.
func ShlScalar[T Integers, N Dim](v Vec[T, N], s uint) Vec[T, N] {
	return v.Map(func(x T) T { return x << s })
}

// Shr shifts each component of a right by the matching component of b.
// Signed components shift arithmetically.
func Shr[T Integers, N Dim](a, b Vec[T, N]) Vec[T, N] {
	return a.Zip(b, func(x, y T) T { return x >> y })
}

// ShrScalar shifts every component of v right by s bits.
func ShrScalar[T Integers, N Dim](v Vec[T, N], s uint) Vec[T, N] {
	return v.Map(func(x T) T { return x >> s })
}

// Scalar-on-left integer operators: component i of the result is s op v[i].

// ScalarMod returns (s % v[0], s % v[1], ...).
func ScalarMod[T Integers, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.Map(func(x T) T { return s % x })
}

// ScalarAnd returns (s & v[0], s & v[1], ...).
func ScalarAnd[T Integers, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.Map(func(x T) T { return s & x })
}

// ScalarOr returns (s | v[0], s | v[1], ...).
func ScalarOr[T Integers, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.Map(func(x T) T { return s | x })
}

// ScalarXor returns (s ^ v[0], s ^ v[1], ...).
func ScalarXor[T Integers, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.Map(func(x T) T { return s ^ x })
}

// ScalarShl shifts s left by each component of v.
func ScalarShl[T Integers, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.Map(func(x T) T { return s << x })
}

// ScalarShr shifts s right by each component of v.
func ScalarShr[T Integers, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.Map(func(x T) T { return s >> x })
}

// dot returns the sum of the componentwise product of a and b.
func dot[T Scalar, N Dim](a, b Vec[T, N]) T {
	return a.Mul(b).Sum()
}

// cross returns the right-handed cross product a × b.
func cross[T Scalar](a, b Vec[T, D3]) Vec[T, D3] {
	return V3(
		a.c[1]*b.c[2]-a.c[2]*b.c[1],
		a.c[2]*b.c[0]-a.c[0]*b.c[2],
		a.c[0]*b.c[1]-a.c[1]*b.c[0],
	)
}
