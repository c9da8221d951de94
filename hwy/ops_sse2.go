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

package hwy

// SSE2 models the x86-64 baseline 128-bit unit: four float32 slots per lane,
// 16-byte aligned storage, MULPS followed by ADDPS for multiply-add and
// SQRTPS for square root.
type SSE2 struct{}

var _ Backend[Float32x4] = SSE2{}

func (SSE2) Name() string           { return "sse2" }
func (SSE2) Level() DispatchLevel   { return DispatchSSE2 }
func (SSE2) Lanes() int             { return 4 }
func (SSE2) Alignment() int         { return 16 }
func (SSE2) FusedMulAdd() bool      { return false }
func (SSE2) SqrtTolerance() float64 { return 0 }

func (SSE2) Add(a, b Float32x4) Float32x4 { return add4(a, b) }
func (SSE2) Mul(a, b Float32x4) Float32x4 { return mul4(a, b) }

// MulAdd returns acc + x*y, rounding the product first.
func (SSE2) MulAdd(acc, x, y Float32x4) Float32x4 { return mulAdd4(acc, x, y) }

func (SSE2) Sqrt(a Float32x4) Float32x4 { return sqrt4(a) }

func (SSE2) Set(value float32) Float32x4 { return set4(value) }

func (SSE2) GetLane(v Float32x4, i int) float32 {
	checkSlot(i, 4)
	return v[i]
}

func (SSE2) InsertLane(v Float32x4, i int, value float32) Float32x4 {
	checkSlot(i, 4)
	v[i] = value
	return v
}

func (SSE2) Load(src []float32) Float32x4     { return load4(src) }
func (SSE2) Store(v Float32x4, dst []float32) { store4(v, dst) }
