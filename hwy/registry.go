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
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Info describes one registered backend.
type Info struct {
	Name          string
	Level         DispatchLevel
	SIMDLevel     cpu.SIMDLevel
	Priority      int
	Lanes         int
	LaneBytes     int
	Alignment     int
	FusedMulAdd   bool
	SqrtTolerance float64
}

// Describe collects the constants of backend b into an Info.
func Describe[V Lane, B Backend[V]](b B, simd cpu.SIMDLevel, priority int) Info {
	return Info{
		Name:          b.Name(),
		Level:         b.Level(),
		SIMDLevel:     simd,
		Priority:      priority,
		Lanes:         b.Lanes(),
		LaneBytes:     LaneBytes[V](),
		Alignment:     b.Alignment(),
		FusedMulAdd:   b.FusedMulAdd(),
		SqrtTolerance: b.SqrtTolerance(),
	}
}

// Registry stores the available backends ordered by priority.
type Registry struct {
	mu      sync.RWMutex
	entries []Info
	sorted  bool
}

// Global holds every backend compiled into the package.
var Global = &Registry{}

func init() {
	Global.Register(Describe[float32](Scalar{}, cpu.SIMDNone, 0))
	Global.Register(Describe[Float32x4](SSE2{}, cpu.SIMDSSE2, 10))
	Global.Register(Describe[Float32x4](NEON{}, cpu.SIMDNEON, 15))
	Global.Register(Describe[Float32x8](AVX2{}, cpu.SIMDAVX2, 20))
}

// Register adds a backend entry.
func (r *Registry) Register(info Info) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, info)
	r.sorted = false
}

// Lookup returns the highest-priority backend the features support, or nil
// if none does.
func (r *Registry) Lookup(features cpu.Features) *Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sortLocked()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			info := r.entries[i]
			return &info
		}
	}
	return nil
}

// ByName returns the backend registered under name.
func (r *Registry) ByName(name string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, info := range r.entries {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}

// Entries returns a copy of the entries, highest priority first.
func (r *Registry) Entries() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sortLocked()

	entries := make([]Info, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *Registry) sortLocked() {
	if r.sorted {
		return
	}
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}
