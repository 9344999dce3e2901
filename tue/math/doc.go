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

// Package math provides elementwise and geometric functions over tue
// vectors, matrices and quaternions.
//
// Each elementwise function applies the matching tue/scalar primitive to
// every component independently and returns a value of the same shape:
//
//	s := math.Sin(tue.V3[float32](0, 1, 2))
//	m := math.SqrtMat(tue.Diagonal[tue.D4, tue.D4](float64(9)))
//
// Vector functions take the plain name, matrix functions the Mat suffix.
// Both are built on the Map/Zip methods each geometric type implements once.
//
// Transcendental functions require a floating component type. Convert
// integer values first with tue.Convert.
//
// Nothing here guards against degenerate input: Normalize of a zero vector,
// Sqrt or Log of negative components and division by zero all produce
// IEEE infinities and NaNs.
package math
