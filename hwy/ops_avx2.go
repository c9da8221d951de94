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

// AVX2 models the 256-bit x86 unit with FMA3: eight float32 slots per lane,
// 32-byte aligned storage, VFMADD231PS for multiply-add (one rounding) and
// VSQRTPS for square root.
type AVX2 struct{}

var _ Backend[Float32x8] = AVX2{}

func (AVX2) Name() string           { return "avx2" }
func (AVX2) Level() DispatchLevel   { return DispatchAVX2 }
func (AVX2) Lanes() int             { return 8 }
func (AVX2) Alignment() int         { return 32 }
func (AVX2) FusedMulAdd() bool      { return true }
func (AVX2) SqrtTolerance() float64 { return 0 }

func (AVX2) Add(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (AVX2) Mul(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r {
		r[i] = float32(a[i] * b[i])
	}
	return r
}

// MulAdd returns acc + x*y with a single rounding per slot.
func (AVX2) MulAdd(acc, x, y Float32x8) Float32x8 {
	var r Float32x8
	for i := range r {
		r[i] = fmaf32(x[i], y[i], acc[i])
	}
	return r
}

// Sqrt computes the correctly rounded square root of every slot.
func (AVX2) Sqrt(a Float32x8) Float32x8 {
	var r Float32x8
	for i := range r {
		r[i] = math32.Sqrt(a[i])
	}
	return r
}

func (AVX2) Set(value float32) Float32x8 {
	return Float32x8{value, value, value, value, value, value, value, value}
}

func (AVX2) GetLane(v Float32x8, i int) float32 {
	checkSlot(i, 8)
	return v[i]
}

func (AVX2) InsertLane(v Float32x8, i int, value float32) Float32x8 {
	checkSlot(i, 8)
	v[i] = value
	return v
}

func (AVX2) Load(src []float32) Float32x8 {
	var r Float32x8
	copy(r[:], src)
	return r
}

func (AVX2) Store(v Float32x8, dst []float32) {
	copy(dst, v[:])
}
