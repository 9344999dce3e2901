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

// Mat is a column-major matrix with C columns of R rows each. m.Column(i)
// is stored directly; m.Row(j) is gathered from every column.
//
// Columns at or past C are always zero, like the padding slots of Vec.
// The zero value is the zero matrix.
type Mat[T Scalar, C, R Dim] struct {
	cols [4]Vec[T, R]
}

// Square and rectangular shapes, named columns-by-rows.
type (
	Mat2[T Scalar]   = Mat[T, D2, D2]
	Mat3[T Scalar]   = Mat[T, D3, D3]
	Mat4[T Scalar]   = Mat[T, D4, D4]
	Mat2x2[T Scalar] = Mat[T, D2, D2]
	Mat2x3[T Scalar] = Mat[T, D2, D3]
	Mat2x4[T Scalar] = Mat[T, D2, D4]
	Mat3x2[T Scalar] = Mat[T, D3, D2]
	Mat3x3[T Scalar] = Mat[T, D3, D3]
	Mat3x4[T Scalar] = Mat[T, D3, D4]
	Mat4x2[T Scalar] = Mat[T, D4, D2]
	Mat4x3[T Scalar] = Mat[T, D4, D3]
	Mat4x4[T Scalar] = Mat[T, D4, D4]
)

// Cols2 returns the two-column matrix with the given columns.
func Cols2[T Scalar, R Dim](c0, c1 Vec[T, R]) Mat[T, D2, R] {
	return Mat[T, D2, R]{cols: [4]Vec[T, R]{c0, c1}}
}

// Cols3 returns the three-column matrix with the given columns.
func Cols3[T Scalar, R Dim](c0, c1, c2 Vec[T, R]) Mat[T, D3, R] {
	return Mat[T, D3, R]{cols: [4]Vec[T, R]{c0, c1, c2}}
}

// Cols4 returns the four-column matrix with the given columns.
func Cols4[T Scalar, R Dim](c0, c1, c2, c3 Vec[T, R]) Mat[T, D4, R] {
	return Mat[T, D4, R]{cols: [4]Vec[T, R]{c0, c1, c2, c3}}
}

// Diagonal returns the matrix with s on the main diagonal and zero
// elsewhere. For non-square shapes the diagonal stops at min(C, R).
//
//	m := tue.Diagonal[tue.D3, tue.D3](float32(2))
func Diagonal[C, R Dim, T Scalar](s T) Mat[T, C, R] {
	var m Mat[T, C, R]
	for i := range min(dimLen[C](), dimLen[R]()) {
		m.cols[i].c[i] = s
	}
	return m
}

// Identity returns the matrix with ones on the main diagonal.
func Identity[T Scalar, C, R Dim]() Mat[T, C, R] {
	return Diagonal[C, R](T(1))
}

// ZeroMat returns the zero matrix.
func ZeroMat[T Scalar, C, R Dim]() Mat[T, C, R] {
	return Mat[T, C, R]{}
}

// ResizeMat converts m to C2 columns of R2 rows. Cells present in both
// shapes are copied; new cells follow the identity pattern, one on the
// diagonal and zero elsewhere.
//
//	m4 := tue.ResizeMat[tue.D4, tue.D4](m3)
func ResizeMat[C2, R2 Dim, T Scalar, C, R Dim](m Mat[T, C, R]) Mat[T, C2, R2] {
	out := Identity[T, C2, R2]()
	rows := min(dimLen[R](), dimLen[R2]())
	for i := range min(dimLen[C](), dimLen[C2]()) {
		copy(out.cols[i].c[:rows], m.cols[i].c[:rows])
	}
	return out
}

// ConvertMat returns m with every component converted to U.
func ConvertMat[U Scalar, T Scalar, C, R Dim](m Mat[T, C, R]) Mat[U, C, R] {
	var out Mat[U, C, R]
	for i := range dimLen[C]() {
		out.cols[i] = Convert[U](m.cols[i])
	}
	return out
}

// ColumnCount returns C.
func (m Mat[T, C, R]) ColumnCount() int { return dimLen[C]() }

// RowCount returns R.
func (m Mat[T, C, R]) RowCount() int { return dimLen[R]() }

// Column returns column i.
func (m Mat[T, C, R]) Column(i int) Vec[T, R] {
	return m.cols[i]
}

// SetColumn replaces column i. Indices at or past C are ignored.
func (m *Mat[T, C, R]) SetColumn(i int, v Vec[T, R]) {
	if i < dimLen[C]() {
		m.cols[i] = v
	}
}

// Row gathers component j of every column.
func (m Mat[T, C, R]) Row(j int) Vec[T, C] {
	var row Vec[T, C]
	for i := range dimLen[C]() {
		row.c[i] = m.cols[i].c[j]
	}
	return row
}

// SetRow scatters v across component j of every column. Indices at or
// past R are ignored.
func (m *Mat[T, C, R]) SetRow(j int, v Vec[T, C]) {
	for i := range dimLen[C]() {
		m.cols[i].Set(j, v.c[i])
	}
}

// At returns the component in column i, row j.
func (m Mat[T, C, R]) At(i, j int) T {
	return m.cols[i].c[j]
}

// Set assigns the component in column i, row j. Cells outside C×R are
// ignored.
func (m *Mat[T, C, R]) Set(i, j int, x T) {
	if i < dimLen[C]() {
		m.cols[i].Set(j, x)
	}
}

// Columns returns a copy of the columns.
func (m Mat[T, C, R]) Columns() []Vec[T, R] {
	out := make([]Vec[T, R], dimLen[C]())
	copy(out, m.cols[:])
	return out
}

// Map returns the matrix whose every component is f of the matching
// component of m.
func (m Mat[T, C, R]) Map(f func(T) T) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = m.cols[i].Map(f)
	}
	return m
}

// Zip returns the matrix whose every component is f of the matching
// components of m and o.
func (m Mat[T, C, R]) Zip(o Mat[T, C, R], f func(a, b T) T) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = m.cols[i].Zip(o.cols[i], f)
	}
	return m
}

// MapColumns returns the matrix whose column i is f(m.Column(i)).
func (m Mat[T, C, R]) MapColumns(f func(Vec[T, R]) Vec[T, R]) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = f(m.cols[i])
	}
	return m
}

// ZipColumns returns the matrix whose column i is f(m.Column(i), o.Column(i)).
func (m Mat[T, C, R]) ZipColumns(o Mat[T, C, R], f func(a, b Vec[T, R]) Vec[T, R]) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = f(m.cols[i], o.cols[i])
	}
	return m
}

// Equal reports whether all components are equal.
func (m Mat[T, C, R]) Equal(o Mat[T, C, R]) bool {
	for i := range dimLen[C]() {
		if !m.cols[i].Equal(o.cols[i]) {
			return false
		}
	}
	return true
}

// NotEqual reports whether any component differs.
func (m Mat[T, C, R]) NotEqual(o Mat[T, C, R]) bool {
	return !m.Equal(o)
}

// String formats the matrix as its list of columns.
func (m Mat[T, C, R]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range dimLen[C]() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, m.cols[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
