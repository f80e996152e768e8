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

// Package floats provides comparison helpers for floating-point results.
package floats

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ApproxEqual reports whether |a-b| <= tol.
//
// Infinities are never approximately equal to anything, including
// themselves, and NaN compares unequal to everything.
func ApproxEqual[T constraints.Float](a, b, tol T) bool {
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return false
	}
	return math.Abs(float64(a-b)) <= float64(tol)
}

// Equal reports whether a and b are equal to within the machine epsilon
// of T (2^-23 for float32, 2^-52 for float64).
func Equal[T constraints.Float](a, b T) bool {
	return ApproxEqual(a, b, Epsilon[T]())
}

// Epsilon returns the difference between 1 and the next representable
// value of T.
func Epsilon[T constraints.Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// ULPDistance returns the number of representable float64 values between
// a and b. +0 and -0 are at distance zero. If either argument is NaN the
// result is math.MaxUint64.
func ULPDistance(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	oa, ob := ordered(a), ordered(b)
	if oa < ob {
		oa, ob = ob, oa
	}
	return uint64(oa) - uint64(ob)
}

// ordered maps the bits of x onto a signed integer line that is monotonic
// in x, with both zeros mapped to 0.
func ordered(x float64) int64 {
	b := int64(math.Float64bits(x))
	if b < 0 {
		b = math.MinInt64 - b
	}
	return b
}
