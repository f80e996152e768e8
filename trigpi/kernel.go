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

import (
	"math"

	"github.com/ajroetker/go-trigpi/poly"
)

// sinKernel computes sin(πx) for |x| <= 1/4.
//
// The approximation is odd in x, so negative reduced arguments are handled
// without a separate sign fixup.
func sinKernel(x float64) float64 {
	x2 := x * x
	x4 := x2 * x2
	r := poly.Eval(x2, sinCoeffs[:])

	// tmp = x⁴*r + tail - 5.17*x², with the x² term subtracted last
	tmp := math.FMA(sinX3, x2, math.FMA(x4, r, sinTail))

	// πx dominates; fuse it so x*tmp is added before πx is rounded.
	return math.FMA(math.Pi, x, x*tmp)
}

// cosKernel computes cos(πx) for |x| <= 1/4.
//
// Near zero the result approaches 1 and 1 - (π²/2)x² cancels, so the
// quadratic term is carried as a double-double (ax2, ax2Lo) and the rounding
// error of 1 - ax2 is added back explicitly.
func cosKernel(x float64) float64 {
	x2 := x * x
	r := x2 * poly.Eval(x2, cosCoeffs[:])

	// ax2 must be the rounded product; the FMA below recovers its error.
	ax2 := float64(cosHi * x2)
	ax2Lo := math.FMA(cosLo, x2, math.FMA(cosHi, x2, -ax2))

	w := 1 - ax2
	return w + math.FMA(x2, r, ((1-w)-ax2)-ax2Lo)
}
