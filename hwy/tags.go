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

import "unsafe"

// LaneBytes returns the size in bytes of one lane of type V:
// 4 for float32, 16 for Float32x4, 32 for Float32x8.
func LaneBytes[V Lane]() int {
	var dummy V
	return int(unsafe.Sizeof(dummy))
}

// LaneWidth returns the number of float32 values held by a lane of type V.
func LaneWidth[V Lane]() int {
	var dummy float32
	return LaneBytes[V]() / int(unsafe.Sizeof(dummy))
}
