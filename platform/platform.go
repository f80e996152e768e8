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

// Package platform reports how math.FMA is executed on the running CPU.
//
// The trigpi kernels depend on fused multiply-add for their accuracy.
// math.FMA is always exact, but without hardware support it falls back to
// a much slower software emulation; this package lets callers and
// benchmarks report which path is in use.
package platform

import (
	"os"
	"strconv"
)

// FMALevel describes how fused multiply-add is executed.
type FMALevel int

const (
	// FMASoftware indicates math.FMA is emulated in software.
	FMASoftware FMALevel = iota

	// FMAHardware indicates math.FMA compiles to a single instruction.
	FMAHardware
)

// String returns a human-readable name for the level.
func (l FMALevel) String() string {
	switch l {
	case FMASoftware:
		return "software"
	case FMAHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// currentFMA is the detected FMA level.
// Set by detect() in platform_*.go files.
var currentFMA FMALevel

// currentName names the instruction set providing FMA, e.g. "fma3".
var currentName string

func init() {
	detect()
}

// CurrentFMA returns the FMA level in use.
func CurrentFMA() FMALevel {
	return currentFMA
}

// HasFMA reports whether math.FMA runs in hardware.
func HasFMA() bool {
	return currentFMA == FMAHardware
}

// Name returns the name of the instruction set providing FMA, or "scalar"
// when it is emulated.
func Name() string {
	return currentName
}

// NoHWFMAEnv checks if the TRIGPI_NO_HWFMA environment variable is set.
// When set, the package reports software FMA regardless of CPU
// capabilities. This is useful for labelling benchmark runs.
func NoHWFMAEnv() bool {
	val := os.Getenv("TRIGPI_NO_HWFMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setSoftware() {
	currentFMA = FMASoftware
	currentName = "scalar"
}

func setHardware(name string) {
	currentFMA = FMAHardware
	currentName = name
}
