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

// Package scalar provides the per-component primitives the vector, matrix
// and quaternion functions are built from.
//
// float32 arguments are evaluated in float32 with github.com/chewxy/math32;
// float64 and any other floating type go through the standard math package.
// None of the functions report errors: out-of-domain inputs produce the
// IEEE special values of the underlying implementation.
package scalar

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-tue/tue"
)

// Abs returns the absolute value of x. Unsigned values are returned as is.
func Abs[T tue.Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Abs(v))
	case float64:
		return T(math.Abs(v))
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return x
	}
	if x < 0 {
		return -x
	}
	return x
}

// Sin returns the sine of x.
func Sin[T tue.Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x.
func Cos[T tue.Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

// SinCos returns the sine and cosine of x from a single argument
// reduction, so the pair stays consistent.
func SinCos[T tue.Floats](x T) (sin, cos T) {
	if v, ok := any(x).(float32); ok {
		s, c := math32.Sincos(v)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Exp returns e**x.
func Exp[T tue.Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Exp(v))
	}
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T tue.Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log(v))
	}
	return T(math.Log(float64(x)))
}

// Pow returns base**exponent.
func Pow[T tue.Floats](base, exponent T) T {
	if v, ok := any(base).(float32); ok {
		return T(math32.Pow(v, any(exponent).(float32)))
	}
	return T(math.Pow(float64(base), float64(exponent)))
}

// Recip returns 1/x.
func Recip[T tue.Floats](x T) T {
	return 1 / x
}

// Sqrt returns the square root of x.
func Sqrt[T tue.Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// RSqrt returns 1/sqrt(x), computed exactly rather than estimated.
func RSqrt[T tue.Floats](x T) T {
	return 1 / Sqrt(x)
}

// Min returns the smaller of a and b. If a and b are equal it returns a.
// Like b < a ? b : a, Min(NaN, x) is NaN and Min(x, NaN) is x.
func Min[T tue.Scalar](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b. If a and b are equal it returns a.
func Max[T tue.Scalar](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Select returns a if cond is true and b otherwise. It accepts any type,
// so a scalar condition can choose between whole vectors or matrices.
func Select[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// Less reports whether a < b.
func Less[T tue.Scalar](a, b T) bool { return a < b }

// LessEqual reports whether a <= b.
func LessEqual[T tue.Scalar](a, b T) bool { return a <= b }

// Greater reports whether a > b.
func Greater[T tue.Scalar](a, b T) bool { return a > b }

// Equal reports whether a == b.
func Equal[T tue.Scalar](a, b T) bool { return a == b }

// NotEqual reports whether a != b.
func NotEqual[T tue.Scalar](a, b T) bool { return a != b }
