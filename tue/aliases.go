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

// Concrete shorthands for the common component types.

type FVec2 = Vec2[float32]
type FVec3 = Vec3[float32]
type FVec4 = Vec4[float32]

type DVec2 = Vec2[float64]
type DVec3 = Vec3[float64]
type DVec4 = Vec4[float64]

type IVec2 = Vec2[int32]
type IVec3 = Vec3[int32]
type IVec4 = Vec4[int32]

type UVec2 = Vec2[uint32]
type UVec3 = Vec3[uint32]
type UVec4 = Vec4[uint32]

type FMat2 = Mat2[float32]
type FMat3 = Mat3[float32]
type FMat4 = Mat4[float32]
type FMat4x3 = Mat4x3[float32]

type DMat2 = Mat2[float64]
type DMat3 = Mat3[float64]
type DMat4 = Mat4[float64]
type DMat4x3 = Mat4x3[float64]

type FQuat = Quat[float32]
type DQuat = Quat[float64]
