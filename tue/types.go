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

// Package tue provides fixed-size generic vectors, matrices and quaternions.
//
// Every size is part of the type: a Vec[float32, D3] and a Vec[float32, D4]
// are different types, and a matrix product whose inner dimensions disagree
// does not compile. Values are plain structs with no shared state, so they
// can be copied freely and used from any goroutine that owns them.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-tue/tue"
//
//	v := tue.V3[float32](1, 2, 3)
//	m := tue.Identity[float32, tue.D3, tue.D3]()
//	r := tue.MulVec(m, v.Add(tue.Splat[tue.D3](float32(1))))
//
// Elementwise and geometric functions live in tue/math, rotation
// conversions in tue/transform.
package tue

//go:generate go run ../cmd/tuegen -output swizzle_gen.go

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point component types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer component types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer component types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer component types. Only integer
// vectors and matrices support the bitwise, shift and modulo operations.
type Integers interface {
	constraints.Integer
}

// Scalar is a constraint for every type usable as a component.
type Scalar interface {
	Floats | Integers
}

// Dim is the compile-time size of a vector or of one matrix axis.
// It is sealed: only D2, D3 and D4 satisfy it.
type Dim interface {
	D2 | D3 | D4
	Len() int
}

// D2 selects two components.
type D2 struct{}

// D3 selects three components.
type D3 struct{}

// D4 selects four components.
type D4 struct{}

func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

// dimLen returns the component count selected by N.
func dimLen[N Dim]() int {
	var n N
	return n.Len()
}
