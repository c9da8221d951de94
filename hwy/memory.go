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
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrAllocTooLarge is returned by AllocLanes when the requested buffer
// exceeds the addressable size.
var ErrAllocTooLarge = errors.New("hwy: lane buffer too large")

// maxAllocBytes caps a single lane buffer. Larger requests would fail inside
// the runtime, which cannot be recovered from.
const maxAllocBytes = min(math.MaxInt, 1<<40)

// AllocLanes returns count zeroed lanes of type V whose first lane starts
// on an alignment-byte boundary. alignment must be a power of two.
//
// The lanes live inside a larger byte buffer; the returned slice keeps that
// buffer reachable.
func AllocLanes[V Lane](count, alignment int) ([]V, error) {
	if count < 0 {
		return nil, fmt.Errorf("hwy: negative lane count %d", count)
	}
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("hwy: alignment %d is not a power of two", alignment)
	}
	if count == 0 {
		return []V{}, nil
	}
	laneBytes := LaneBytes[V]()
	if count > (maxAllocBytes-alignment)/laneBytes {
		return nil, fmt.Errorf("%w: %d lanes of %d bytes", ErrAllocTooLarge, count, laneBytes)
	}

	buf := make([]byte, count*laneBytes+alignment)
	off := alignOffset(uintptr(unsafe.Pointer(&buf[0])), alignment)
	return unsafe.Slice((*V)(unsafe.Pointer(&buf[off])), count), nil
}

// alignOffset returns how many bytes past addr the next alignment boundary is.
func alignOffset(addr uintptr, alignment int) int {
	a := uintptr(alignment)
	return int((a - addr%a) % a)
}

// IsAligned reports whether the first lane of lanes starts on an
// alignment-byte boundary. An empty slice is always aligned.
func IsAligned[V Lane](lanes []V, alignment int) bool {
	if len(lanes) == 0 {
		return true
	}
	return alignOffset(uintptr(unsafe.Pointer(&lanes[0])), alignment) == 0
}
