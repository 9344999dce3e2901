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

// Sin returns the componentwise sine of v.
func Sin[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.Sin[T])
}

// Cos returns the componentwise cosine of v.
func Cos[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.Cos[T])
}

// SinCos returns the componentwise sine and cosine of v.
func SinCos[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) (sin, cos tue.Vec[T, N]) {
	for i := range v.Len() {
		s, c := scalar.SinCos(v.At(i))
		sin.Set(i, s)
		cos.Set(i, c)
	}
	return sin, cos
}

// Exp returns the componentwise e**v.
func Exp[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.Exp[T])
}

// Log returns the componentwise natural logarithm of v.
func Log[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.Log[T])
}

// Pow returns base**exponent componentwise.
func Pow[T tue.Floats, N tue.Dim](base, exponent tue.Vec[T, N]) tue.Vec[T, N] {
	return base.Zip(exponent, scalar.Pow[T])
}

// PowScalar raises every component of base to exponent.
func PowScalar[T tue.Floats, N tue.Dim](base tue.Vec[T, N], exponent T) tue.Vec[T, N] {
	return base.Map(func(x T) T { return scalar.Pow(x, exponent) })
}

// Recip returns the componentwise reciprocal 1/v.
func Recip[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.Recip[T])
}

// Sqrt returns the componentwise square root of v.
func Sqrt[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.Sqrt[T])
}

// RSqrt returns the componentwise reciprocal square root of v.
func RSqrt[T tue.Floats, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.RSqrt[T])
}

// Min returns the componentwise minimum of a and b.
func Min[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Vec[T, N] {
	return a.Zip(b, scalar.Min[T])
}

// Max returns the componentwise maximum of a and b.
func Max[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Vec[T, N] {
	return a.Zip(b, scalar.Max[T])
}

// Abs returns the componentwise absolute value of v. Unsigned vectors are
// returned unchanged.
func Abs[T tue.Scalar, N tue.Dim](v tue.Vec[T, N]) tue.Vec[T, N] {
	return v.Map(scalar.Abs[T])
}
