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

package main

import "strings"

// Target is one backend instantiation of the valarray types.
type Target struct {
	Name    string // exported identifier prefix: "SSE2" -> SSE2Array, NewSSE2
	Key     string // lowercase command-line name
	Lane    string // lane type expression
	Backend string // backend type expression
	Doc     string // phrase completing "evaluated with ..."
}

// AllTargets returns every target in emission order.
func AllTargets() []Target {
	return []Target{
		{Name: "Scalar", Key: "scalar", Lane: "float32", Backend: "hwy.Scalar",
			Doc: "the scalar backend, one value per lane"},
		{Name: "SSE2", Key: "sse2", Lane: "hwy.Float32x4", Backend: "hwy.SSE2",
			Doc: "the SSE2 backend, four values per lane"},
		{Name: "AVX2", Key: "avx2", Lane: "hwy.Float32x8", Backend: "hwy.AVX2",
			Doc: "the AVX2 backend, eight values per lane with fused multiply-add"},
		{Name: "NEON", Key: "neon", Lane: "hwy.Float32x4", Backend: "hwy.NEON",
			Doc: "the NEON backend, four values per lane with approximate square root"},
		{Name: "Native", Key: "native", Lane: "hwy.NativeLane", Backend: "hwy.Native",
			Doc: "the backend matching the SIMD level this binary was built for"},
	}
}

// AvailableTargets returns the command-line names of all targets.
func AvailableTargets() []string {
	var keys []string
	for _, t := range AllTargets() {
		keys = append(keys, t.Key)
	}
	return keys
}

// GetTarget returns the target named name, case-insensitively.
func GetTarget(name string) (Target, bool) {
	for _, t := range AllTargets() {
		if strings.EqualFold(t.Key, name) {
			return t, true
		}
	}
	return Target{}, false
}
