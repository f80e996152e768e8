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

package trigpi

import "math"

// SinPi returns sin(πx).
//
// It is more accurate than math.Sin(math.Pi*x), especially for large x,
// because πx is never formed. If both sine and cosine are needed, use
// SinCosPi.
//
// Special cases are:
//
//	SinPi(±0) = ±0
//	SinPi(±n) = ±0 for integer n
//	SinPi(±MaxFloat64) = ±0
//	SinPi(NaN) = NaN
//
// SinPi panics with a *DomainError if x is ±Inf.
func SinPi(x float64) float64 {
	if math.IsInf(x, 0) {
		panic(&DomainError{Func: "SinPi", X: x})
	}
	return sinPi(x)
}

// CosPi returns cos(πx).
//
// Special cases are:
//
//	CosPi(±0) = 1
//	CosPi(n + 1/2) = +0 for integer n
//	CosPi(±MaxFloat64) = ±1
//	CosPi(NaN) = NaN
//
// CosPi panics with a *DomainError if x is ±Inf.
func CosPi(x float64) float64 {
	if math.IsInf(x, 0) {
		panic(&DomainError{Func: "CosPi", X: x})
	}
	return cosPi(x)
}

// SinCosPi returns sin(πx), cos(πx). The results are bit-identical to
// SinPi(x) and CosPi(x), but the reduction is done once.
//
// Special cases are:
//
//	SinCosPi(±MaxFloat64) = ±0, ±1
//	SinCosPi(NaN) = NaN, NaN
//
// SinCosPi panics with a *DomainError if x is ±Inf.
func SinCosPi(x float64) (sin, cos float64) {
	if math.IsInf(x, 0) {
		panic(&DomainError{Func: "SinCosPi", X: x})
	}
	return sinCosPi(x)
}

// TrySinPi is like SinPi but returns a *DomainError, and NaN, instead of
// panicking when x is ±Inf.
func TrySinPi(x float64) (float64, error) {
	if math.IsInf(x, 0) {
		return math.NaN(), &DomainError{Func: "TrySinPi", X: x}
	}
	return sinPi(x), nil
}

// TryCosPi is like CosPi but returns a *DomainError, and NaN, instead of
// panicking when x is ±Inf.
func TryCosPi(x float64) (float64, error) {
	if math.IsInf(x, 0) {
		return math.NaN(), &DomainError{Func: "TryCosPi", X: x}
	}
	return cosPi(x), nil
}

// TrySinCosPi is like SinCosPi but returns a *DomainError, and NaN for both
// values, instead of panicking when x is ±Inf.
func TrySinCosPi(x float64) (sin, cos float64, err error) {
	if math.IsInf(x, 0) {
		return math.NaN(), math.NaN(), &DomainError{Func: "TrySinCosPi", X: x}
	}
	sin, cos = sinCosPi(x)
	return sin, cos, nil
}

// reduce writes ax = n/2 + rx with n integral and |rx| <= 1/4, and returns
// rx with n mod 4. ax must be finite and non-negative.
func reduce(ax float64) (rx float64, q int) {
	if ax >= 1<<52 {
		// ax is an integer, so n = 2ax is even and rx is zero.
		return 0, 2 * int(math.Mod(ax, 2))
	}
	n := math.Round(2 * ax)
	rx = math.FMA(-0.5, n, ax)
	return rx, int(n) & 3
}

func sinPi(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	ax := math.Abs(x)
	if ax >= saturation {
		return math.Copysign(0, x)
	}

	rx, q := reduce(ax)
	var s float64
	switch q {
	case 0:
		s = sinKernel(rx)
	case 1:
		s = cosKernel(rx)
	case 2:
		s = 0 - sinKernel(rx)
	default:
		s = 0 - cosKernel(rx)
	}
	// sin is odd; the table above was evaluated at |x|.
	if math.Signbit(x) {
		s = -s
	}
	return s
}

func cosPi(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	ax := math.Abs(x)
	if ax >= saturation {
		return math.Copysign(1, x)
	}

	rx, q := reduce(ax)
	switch q {
	case 0:
		return cosKernel(rx)
	case 1:
		return 0 - sinKernel(rx)
	case 2:
		return 0 - cosKernel(rx)
	default:
		return sinKernel(rx)
	}
}

func sinCosPi(x float64) (sin, cos float64) {
	if math.IsNaN(x) {
		return math.NaN(), math.NaN()
	}
	ax := math.Abs(x)
	if ax >= saturation {
		return math.Copysign(0, x), math.Copysign(1, x)
	}

	rx, q := reduce(ax)
	s, c := sinKernel(rx), cosKernel(rx)
	switch q {
	case 0:
		sin, cos = s, c
	case 1:
		sin, cos = c, 0-s
	case 2:
		sin, cos = 0-s, 0-c
	default:
		sin, cos = 0-c, s
	}
	if math.Signbit(x) {
		sin = -sin
	}
	return sin, cos
}
