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

// Package poly evaluates polynomials with Horner's method.
//
// Coefficients are always given in descending degree: coeffs[0] is the
// leading term and coeffs[len(coeffs)-1] is the constant term, so
//
//	Eval(x, []float64{c0, c1, c2}) == c0*x*x + c1*x + c2
package poly

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Eval evaluates the polynomial with the given coefficients at x.
//
// Each step computes acc*x + c with two roundings. The product is rounded
// explicitly so the compiler cannot contract it into a fused multiply-add,
// which keeps results bit-identical across architectures.
//
// Special cases:
//   - Eval(x, nil) = 0
//   - Eval(x, []T{c}) = c
func Eval[T constraints.Float](x T, coeffs []T) T {
	var acc T
	for _, c := range coeffs {
		acc = T(acc*x) + c
	}
	return acc
}

// EvalFMA is like Eval but performs every Horner step as a single fused
// multiply-add, rounding once per coefficient. For float32 the fused step
// is computed in float64 and then rounded to float32.
func EvalFMA[T constraints.Float](x T, coeffs []T) T {
	var acc T
	for _, c := range coeffs {
		acc = T(math.FMA(float64(acc), float64(x), float64(c)))
	}
	return acc
}
