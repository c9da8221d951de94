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

// LaneCount returns how many lanes of width values are needed to hold size
// values: ceil(size / width). The last lane may be partially used.
//
// Example:
//
//	hwy.LaneCount(5, 4) // 2
//	hwy.LaneCount(8, 8) // 1
//	hwy.LaneCount(0, 4) // 0
func LaneCount(size, width int) int {
	if size <= 0 {
		return 0
	}
	return (size + width - 1) / width
}

// SplitIndex maps the scalar index i to its lane index and the slot inside
// that lane.
func SplitIndex(i, width int) (lane, slot int) {
	return i / width, i % width
}

// TailCount returns how many slots of the last lane hold live values.
// It is width when size is a multiple of width and 0 when size is 0.
func TailCount(size, width int) int {
	if size <= 0 {
		return 0
	}
	if rem := size % width; rem != 0 {
		return rem
	}
	return width
}

// ProcessWithTail calls fullFn(lane) for every completely used lane and then
// tailFn(lane, count) once for a partially used last lane, if any.
//
// Example:
//
//	hwy.ProcessWithTail(len(data), 4,
//	    func(lane int) { /* data[lane*4 : lane*4+4] */ },
//	    func(lane, count int) { /* data[lane*4 : lane*4+count] */ },
//	)
func ProcessWithTail(size, width int, fullFn func(lane int), tailFn func(lane, count int)) {
	full := size / width
	for lane := range full {
		fullFn(lane)
	}
	if rem := size - full*width; rem > 0 && tailFn != nil {
		tailFn(full, rem)
	}
}
