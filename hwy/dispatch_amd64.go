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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// hasFMA indicates FMA3 support (Haswell+, Piledriver+).
var hasFMA bool

func init() {
	hasFMA = cpu.X86.HasFMA

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// The avx2 backend models AVX2 together with FMA3; a CPU with AVX2 but
	// no FMA is reported as SSE2.
	if cpu.X86.HasAVX2 && hasFMA {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
		return
	}

	// SSE2 is baseline for amd64
	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"
}

// HasFMA returns true if the CPU has a hardware fused multiply-add.
func HasFMA() bool {
	return hasFMA
}
