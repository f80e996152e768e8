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

// =============================================================================
// Kernel constants
// =============================================================================

// Minimax coefficients for sin(πx) on [0, 1/4], descending degree in x².
//
// sin(πx) ≈ πx + x*(c - 5.16771278004997*x² + x⁴*P(x²))
var sinCoeffs = [...]float64{
	-2.1717412523382308e-5,
	4.662827319453555e-4,
	-7.370429884921779e-3,
	0.08214588658006512,
	-0.5992645293202981,
	2.5501640398773415,
}

// Minimax coefficients for cos(πx) on [0, 1/4], descending degree in x².
//
// cos(πx) ≈ 1 - (π²/2)*x² + x⁴*P(x²)
var cosCoeffs = [...]float64{
	-1.0368935675474665e-4,
	1.9294917136379183e-3,
	-0.025806887811869204,
	0.23533063027900392,
	-1.3352627688537357,
	4.058712126416765,
}

const (
	sinX3   = -5.16771278004997      // x³ coefficient of the sine kernel, ≈ -π³/6
	sinTail = 1.2245907532225998e-16 // ≈ π - float64(π), folded into the x term

	cosHi = 4.934802200544679     // float64(π²/2)
	cosLo = 3.109686485461973e-16 // π²/2 - cosHi
)

// saturation is the magnitude at and above which SinPi and CosPi return
// their asymptotic values without reduction.
var saturation = math.Floor(math.MaxFloat64)
