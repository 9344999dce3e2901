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

// Mask is the result of a componentwise comparison of two N-component
// values. It selects between two vectors in math.Select.
//
// The zero value has every component false.
type Mask[N Dim] struct {
	bits [4]bool
}

// MaskOf returns a mask with component i set to bits[i]. Extra elements are
// ignored and missing ones are false.
func MaskOf[N Dim](bits ...bool) Mask[N] {
	var m Mask[N]
	copy(m.bits[:dimLen[N]()], bits)
	return m
}

// SplatMask returns a mask with every component set to b.
func SplatMask[N Dim](b bool) Mask[N] {
	var m Mask[N]
	for i := range dimLen[N]() {
		m.bits[i] = b
	}
	return m
}

// Len returns the number of components, N.
func (m Mask[N]) Len() int {
	return dimLen[N]()
}

// At reports whether component i is set.
func (m Mask[N]) At(i int) bool {
	return m.bits[i]
}

// Set assigns component i. Indices at or past N are ignored.
func (m *Mask[N]) Set(i int, b bool) {
	if i < dimLen[N]() {
		m.bits[i] = b
	}
}

// AllTrue returns true if every component is set.
func (m Mask[N]) AllTrue() bool {
	for i := range dimLen[N]() {
		if !m.bits[i] {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one component is set.
func (m Mask[N]) AnyTrue() bool {
	for i := range dimLen[N]() {
		if m.bits[i] {
			return true
		}
	}
	return false
}

// CountTrue returns the number of set components.
func (m Mask[N]) CountTrue() int {
	count := 0
	for i := range dimLen[N]() {
		if m.bits[i] {
			count++
		}
	}
	return count
}
