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

// SinMat returns the componentwise sine of m.
func SinMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.Sin[T])
}

// CosMat returns the componentwise cosine of m.
func CosMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.Cos[T])
}

// SinCosMat returns the componentwise sine and cosine of m.
func SinCosMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) (sin, cos tue.Mat[T, C, R]) {
	for i := range m.ColumnCount() {
		s, c := SinCos(m.Column(i))
		sin.SetColumn(i, s)
		cos.SetColumn(i, c)
	}
	return sin, cos
}

// ExpMat returns the componentwise e**m. It is not the matrix exponential.
func ExpMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.Exp[T])
}

// LogMat returns the componentwise natural logarithm of m.
func LogMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.Log[T])
}

// PowMat returns base**exponent componentwise.
func PowMat[T tue.Floats, C, R tue.Dim](base, exponent tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return base.Zip(exponent, scalar.Pow[T])
}

// PowMatScalar raises every component of base to exponent.
func PowMatScalar[T tue.Floats, C, R tue.Dim](base tue.Mat[T, C, R], exponent T) tue.Mat[T, C, R] {
	return base.Map(func(x T) T { return scalar.Pow(x, exponent) })
}

// RecipMat returns the componentwise reciprocal of m, not its inverse.
func RecipMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.Recip[T])
}

// SqrtMat returns the componentwise square root of m.
func SqrtMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.Sqrt[T])
}

// RSqrtMat returns the componentwise reciprocal square root of m.
func RSqrtMat[T tue.Floats, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.RSqrt[T])
}

// MinMat returns the componentwise minimum of a and b.
func MinMat[T tue.Scalar, C, R tue.Dim](a, b tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return a.Zip(b, scalar.Min[T])
}

// MaxMat returns the componentwise maximum of a and b.
func MaxMat[T tue.Scalar, C, R tue.Dim](a, b tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return a.Zip(b, scalar.Max[T])
}

// AbsMat returns the componentwise absolute value of m.
func AbsMat[T tue.Scalar, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return m.Map(scalar.Abs[T])
}

// CompMult returns the componentwise (Hadamard) product of a and b. Use
// tue.MulMat for the matrix product.
func CompMult[T tue.Scalar, C, R tue.Dim](a, b tue.Mat[T, C, R]) tue.Mat[T, C, R] {
	return a.ZipColumns(b, tue.Vec[T, R].Mul)
}

// CompMultVec returns the componentwise product of a and b, the vector
// counterpart of CompMult.
func CompMultVec[T tue.Scalar, N tue.Dim](a, b tue.Vec[T, N]) tue.Vec[T, N] {
	return a.Mul(b)
}

// Transpose returns m with rows and columns exchanged. Column i of the
// result is row i of m.
func Transpose[T tue.Scalar, C, R tue.Dim](m tue.Mat[T, C, R]) tue.Mat[T, R, C] {
	var out tue.Mat[T, R, C]
	for i := range m.RowCount() {
		out.SetColumn(i, m.Row(i))
	}
	return out
}
