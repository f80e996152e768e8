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

// Package trigpi computes sin(πx) and cos(πx) for float64 arguments.
//
// Forming πx before calling math.Sin loses the fractional part of x once x
// is large, and rounds π itself. The functions here reduce x modulo 1/2
// exactly, then evaluate one of two minimax kernels on [-1/4, 1/4]:
//
//   - sine:   πx + x*(c - a*x² + x⁴*P(x²)), fused so πx is rounded once
//   - cosine: 1 - (π²/2)x² + x⁴*P(x²), with (π²/2)x² kept as a double-double
//
// # Functions
//
//   - SinPi(x float64) float64
//   - CosPi(x float64) float64
//   - SinCosPi(x float64) (sin, cos float64)
//   - TrySinPi, TryCosPi, TrySinCosPi - same, returning an error for ±Inf
//
// # Accuracy
//
// Kernel results are within a few ULP of sin(πx) and cos(πx) on [0, 1/4].
// Reduction is exact, so the same bound holds for every finite x.
// Multiples of 1/2 produce exactly 0 or ±1.
//
// # Special values
//
// NaN propagates. ±Inf is a precondition violation: SinPi, CosPi and
// SinCosPi panic with a *DomainError, and the Try variants return one
// (errors.Is(err, ErrDomain) holds). Arguments of magnitude MaxFloat64
// return the asymptotes ±0 and ±1, carrying the sign of x.
//
// All functions are pure and safe for concurrent use.
package trigpi
