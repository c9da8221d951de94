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

// Slot-wise primitives over Float32x4, shared by the 128-bit backends.

func add4(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func mul4(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = float32(a[i] * b[i])
	}
	return r
}

// mulAdd4 rounds the product before accumulating, like MULPS+ADDPS or vmlaq_f32.
func mulAdd4(acc, x, y Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = mulAdd2f32(x[i], y[i], acc[i])
	}
	return r
}

func sqrt4(a Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = math32.Sqrt(a[i])
	}
	return r
}

func set4(value float32) Float32x4 {
	return Float32x4{value, value, value, value}
}

func load4(src []float32) Float32x4 {
	var r Float32x4
	copy(r[:], src)
	return r
}

func store4(v Float32x4, dst []float32) {
	copy(dst, v[:])
}
