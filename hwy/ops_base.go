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

import "github.com/chewxy/math32"

// Scalar is the one-element-per-lane backend. It is the reference every
// wider backend is checked against and the fallback on architectures without
// a modeled SIMD unit.
type Scalar struct{}

var _ Backend[float32] = Scalar{}

func (Scalar) Name() string           { return "scalar" }
func (Scalar) Level() DispatchLevel   { return DispatchScalar }
func (Scalar) Lanes() int             { return 1 }
func (Scalar) Alignment() int         { return 4 }
func (Scalar) FusedMulAdd() bool      { return true }
func (Scalar) SqrtTolerance() float64 { return 0 }

func (Scalar) Add(a, b float32) float32 { return a + b }
func (Scalar) Mul(a, b float32) float32 { return float32(a * b) }

// MulAdd returns acc + x*y with a single rounding.
func (Scalar) MulAdd(acc, x, y float32) float32 { return fmaf32(x, y, acc) }

func (Scalar) Sqrt(a float32) float32 { return math32.Sqrt(a) }

func (Scalar) Set(value float32) float32 { return value }

func (Scalar) GetLane(v float32, i int) float32 {
	checkSlot(i, 1)
	return v
}

func (Scalar) InsertLane(v float32, i int, value float32) float32 {
	checkSlot(i, 1)
	return value
}

func (Scalar) Load(src []float32) float32 {
	if len(src) == 0 {
		return 0
	}
	return src[0]
}

func (Scalar) Store(v float32, dst []float32) {
	if len(dst) > 0 {
		dst[0] = v
	}
}

// checkSlot panics if i is not a valid slot of a lane holding n values.
// Callers in valarray validate indices first, so a failure here is a bug.
func checkSlot(i, n int) {
	if i < 0 || i >= n {
		panic("hwy: lane slot index out of range")
	}
}
