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

// Elementwise operators, applied column by column.

// Add returns m + o.
func (m Mat[T, C, R]) Add(o Mat[T, C, R]) Mat[T, C, R] {
	return m.ZipColumns(o, Vec[T, R].Add)
}

// Sub returns m - o.
func (m Mat[T, C, R]) Sub(o Mat[T, C, R]) Mat[T, C, R] {
	return m.ZipColumns(o, Vec[T, R].Sub)
}

// Div returns the componentwise quotient of m and o.
func (m Mat[T, C, R]) Div(o Mat[T, C, R]) Mat[T, C, R] {
	return m.ZipColumns(o, Vec[T, R].Div)
}

// AddScalar adds s to every component.
func (m Mat[T, C, R]) AddScalar(s T) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = m.cols[i].AddScalar(s)
	}
	return m
}

// SubScalar subtracts s from every component.
func (m Mat[T, C, R]) SubScalar(s T) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = m.cols[i].SubScalar(s)
	}
	return m
}

// MulScalar scales every component by s.
func (m Mat[T, C, R]) MulScalar(s T) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = m.cols[i].MulScalar(s)
	}
	return m
}

// DivScalar divides every component by s.
func (m Mat[T, C, R]) DivScalar(s T) Mat[T, C, R] {
	for i := range dimLen[C]() {
		m.cols[i] = m.cols[i].DivScalar(s)
	}
	return m
}

// Neg returns -m.
func (m Mat[T, C, R]) Neg() Mat[T, C, R] {
	return m.MapColumns(Vec[T, R].Neg)
}

// ScalarSubMat returns the matrix whose every component is s minus the
// matching component of m.
func ScalarSubMat[T Scalar, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s - x })
}

// ScalarDivMat returns the matrix whose every component is s divided by
// the matching component of m.
func ScalarDivMat[T Scalar, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s / x })
}

// AddAssign sets m to m + o.
func (m *Mat[T, C, R]) AddAssign(o Mat[T, C, R]) { *m = m.Add(o) }

// SubAssign sets m to m - o.
func (m *Mat[T, C, R]) SubAssign(o Mat[T, C, R]) { *m = m.Sub(o) }

// DivAssign sets m to the componentwise quotient m / o.
func (m *Mat[T, C, R]) DivAssign(o Mat[T, C, R]) { *m = m.Div(o) }

// MulAssign sets m to the matrix product m * o. The operand is C×C, so the
// product keeps m's shape; any other shape does not compile.
func (m *Mat[T, C, R]) MulAssign(o Mat[T, C, C]) { *m = MulMat(*m, o) }

// AddScalarAssign adds s to every component of m.
func (m *Mat[T, C, R]) AddScalarAssign(s T) { *m = m.AddScalar(s) }

// SubScalarAssign subtracts s from every component of m.
func (m *Mat[T, C, R]) SubScalarAssign(s T) { *m = m.SubScalar(s) }

// MulScalarAssign scales m by s.
func (m *Mat[T, C, R]) MulScalarAssign(s T) { *m = m.MulScalar(s) }

// DivScalarAssign divides every component of m by s.
func (m *Mat[T, C, R]) DivScalarAssign(s T) { *m = m.DivScalar(s) }

// Inc adds one to every component.
func (m *Mat[T, C, R]) Inc() { *m = m.AddScalar(1) }

// Dec subtracts one from every component.
func (m *Mat[T, C, R]) Dec() { *m = m.SubScalar(1) }

// MulMat returns the matrix product a * b. Column j of the result is the
// combination of a's columns weighted by column j of b:
//
//	result[j] = a[0]*b[j][0] + a[1]*b[j][1] + ... + a[C-1]*b[j][C-1]
//
// b must have as many rows as a has columns; the type parameters enforce
// it at compile time.
func MulMat[T Scalar, C, R, K Dim](a Mat[T, C, R], b Mat[T, K, C]) Mat[T, K, R] {
	var out Mat[T, K, R]
	for j := range dimLen[K]() {
		out.cols[j] = MulVec(a, b.cols[j])
	}
	return out
}

// MulVec returns the product of m and the column vector v.
func MulVec[T Scalar, C, R Dim](m Mat[T, C, R], v Vec[T, C]) Vec[T, R] {
	col := m.cols[0].MulScalar(v.c[0])
	for k := 1; k < dimLen[C](); k++ {
		col = col.Add(m.cols[k].MulScalar(v.c[k]))
	}
	return col
}

// VecMul returns the product of the row vector v and m.
func VecMul[T Scalar, C, R Dim](v Vec[T, R], m Mat[T, C, R]) Vec[T, C] {
	var out Vec[T, C]
	for i := range dimLen[C]() {
		out.c[i] = dot(v, m.cols[i])
	}
	return out
}

// Integer-only matrix operators.

// MatMod returns the componentwise remainder a % b.
func MatMod[T Integers, C, R Dim](a, b Mat[T, C, R]) Mat[T, C, R] {
	return a.ZipColumns(b, Mod[T, R])
}

// MatModScalar returns m % s componentwise.
func MatModScalar[T Integers, C, R Dim](m Mat[T, C, R], s T) Mat[T, C, R] {
	return m.Map(func(x T) T { return x % s })
}

// MatAnd returns the componentwise a & b.
func MatAnd[T Integers, C, R Dim](a, b Mat[T, C, R]) Mat[T, C, R] {
	return a.ZipColumns(b, And[T, R])
}

// MatAndScalar returns m & s componentwise.
func MatAndScalar[T Integers, C, R Dim](m Mat[T, C, R], s T) Mat[T, C, R] {
	return m.Map(func(x T) T { return x & s })
}

// MatOr returns the componentwise a | b.
func MatOr[T Integers, C, R Dim](a, b Mat[T, C, R]) Mat[T, C, R] {
	return a.ZipColumns(b, Or[T, R])
}

// MatOrScalar returns m | s componentwise.
func MatOrScalar[T Integers, C, R Dim](m Mat[T, C, R], s T) Mat[T, C, R] {
	return m.Map(func(x T) T { return x | s })
}

// MatXor returns the componentwise a ^ b.
func MatXor[T Integers, C, R Dim](a, b Mat[T, C, R]) Mat[T, C, R] {
	return a.ZipColumns(b, Xor[T, R])
}

// MatXorScalar returns m ^ s componentwise.
func MatXorScalar[T Integers, C, R Dim](m Mat[T, C, R], s T) Mat[T, C, R] {
	return m.Map(func(x T) T { return x ^ s })
}

// MatNot returns the componentwise complement of m.
func MatNot[T Integers, C, R Dim](m Mat[T, C, R]) Mat[T, C, R] {
	return m.MapColumns(Not[T, R])
}

// MatShl shifts each component of a left by the matching component of b.
func MatShl[T Integers, C, R Dim](a, b Mat[T, C, R]) Mat[T, C, R] {
	return a.ZipColumns(b, Shl[T, R])
}

// MatShlScalar shifts every component of m left by s bits.
func MatShlScalar[T Integers, C, R Dim](m Mat[T, C, R], s uint) Mat[T, C, R] {
	return m.Map(func(x T) T { return x << s })
}

// MatShr shifts each component of a right by the matching component of b.
func MatShr[T Integers, C, R Dim](a, b Mat[T, C, R]) Mat[T, C, R] {
	return a.ZipColumns(b, Shr[T, R])
}

// MatShrScalar shifts every component of m right by s bits.
func MatShrScalar[T Integers, C, R Dim](m Mat[T, C, R], s uint) Mat[T, C, R] {
	return m.Map(func(x T) T { return x >> s })
}

// ScalarModMat returns s % m componentwise.
func ScalarModMat[T Integers, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s % x })
}

// ScalarAndMat returns s & m componentwise.
func ScalarAndMat[T Integers, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s & x })
}

// ScalarOrMat returns s | m componentwise.
func ScalarOrMat[T Integers, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s | x })
}

// ScalarXorMat returns s ^ m componentwise.
func ScalarXorMat[T Integers, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s ^ x })
}

// ScalarShlMat shifts s left by each component of m.
func ScalarShlMat[T Integers, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s << x })
}

// ScalarShrMat shifts s right by each component of m.
func ScalarShrMat[T Integers, C, R Dim](s T, m Mat[T, C, R]) Mat[T, C, R] {
	return m.Map(func(x T) T { return s >> x })
}
