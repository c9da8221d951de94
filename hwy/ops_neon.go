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

import (
	"math"

	"github.com/chewxy/math32"
)

// NEON models the ARM Advanced SIMD unit: four float32 slots per lane and
// 16-byte aligned storage. Multiply-add follows vmlaq_f32, which rounds the
// product before the sum. Square root is computed as x * rsqrt(x) from the
// reciprocal square-root estimate refined by one Newton-Raphson step, so it
// is not correctly rounded; see SqrtTolerance.
type NEON struct{}

var _ Backend[Float32x4] = NEON{}

// NEONSqrtTolerance bounds the relative error of NEON.Sqrt for positive
// finite inputs.
const NEONSqrtTolerance = 1e-4

func (NEON) Name() string           { return "neon" }
func (NEON) Level() DispatchLevel   { return DispatchNEON }
func (NEON) Lanes() int             { return 4 }
func (NEON) Alignment() int         { return 16 }
func (NEON) FusedMulAdd() bool      { return false }
func (NEON) SqrtTolerance() float64 { return NEONSqrtTolerance }

func (NEON) Add(a, b Float32x4) Float32x4 { return add4(a, b) }
func (NEON) Mul(a, b Float32x4) Float32x4 { return mul4(a, b) }

// MulAdd returns acc + x*y, rounding the product first.
func (NEON) MulAdd(acc, x, y Float32x4) Float32x4 { return mulAdd4(acc, x, y) }

// Sqrt approximates the square root of every slot.
// Zero and +Inf pass through unchanged, negative inputs and NaN yield NaN.
func (NEON) Sqrt(a Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = approxSqrt(a[i])
	}
	return r
}

func (NEON) Set(value float32) Float32x4 { return set4(value) }

func (NEON) GetLane(v Float32x4, i int) float32 {
	checkSlot(i, 4)
	return v[i]
}

func (NEON) InsertLane(v Float32x4, i int, value float32) Float32x4 {
	checkSlot(i, 4)
	v[i] = value
	return v
}

func (NEON) Load(src []float32) Float32x4     { return load4(src) }
func (NEON) Store(v Float32x4, dst []float32) { store4(v, dst) }

// rsqrtEstimateBits is the number of fraction bits FRSQRTE produces.
const rsqrtEstimateBits = 8

// rsqrtEstimate returns 1/sqrt(x) truncated to rsqrtEstimateBits fraction
// bits, the precision of the hardware estimate instruction.
func rsqrtEstimate(x float32) float32 {
	r := float32(1 / math.Sqrt(float64(x)))
	const drop = 23 - rsqrtEstimateBits
	return math.Float32frombits(math.Float32bits(r) &^ (1<<drop - 1))
}

// rsqrtNewtonRaphson refines an estimate y of 1/sqrt(x) once:
// y' = y * (1.5 - 0.5*x*y*y).
// The product is formed as ((x*y)*0.5)*y: x*y is near sqrt(x), so it stays
// normal for every positive float32 and halving it is exact.
func rsqrtNewtonRaphson(x, y float32) float32 {
	halfXY := float32(float32(x*y) * 0.5)
	corr := 1.5 - float32(halfXY*y)
	return float32(y * corr)
}

func approxSqrt(x float32) float32 {
	switch {
	case math32.IsNaN(x) || x < 0:
		return math32.NaN()
	case x == 0 || math32.IsInf(x, 1):
		return x
	}
	y := rsqrtNewtonRaphson(x, rsqrtEstimate(x))
	return float32(x * y)
}
