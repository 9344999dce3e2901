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
	"os"
	"strconv"
	"unsafe"
)

// registerWidth is the widest vector register in bytes, set by init() in
// register_*.go. The value types never depend on it; bulk helpers use it
// to size the batches they hand to workers.
var registerWidth = 16

// RegisterWidth returns the widest SIMD register on this CPU in bytes:
// 16 without wide registers (or with TUE_NO_SIMD set), 32 for AVX2 and
// SVE, 64 for AVX-512.
func RegisterWidth() int {
	return registerWidth
}

// VecsPerRegister returns how many padded four-slot vectors of T fit in
// one register, at least one.
func VecsPerRegister[T Scalar]() int {
	var zero T
	return max(1, registerWidth/(4*int(unsafe.Sizeof(zero))))
}

// wideRegistersDisabled reports whether TUE_NO_SIMD asks for the 16-byte
// baseline. Any value other than a false boolean counts as set.
func wideRegistersDisabled() bool {
	val := os.Getenv("TUE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
