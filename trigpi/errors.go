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
	"errors"
	"fmt"
)

// ErrDomain is wrapped by every DomainError.
var ErrDomain = errors.New("trigpi: argument must be finite")

// DomainError reports an infinite argument passed to one of the
// trigonometric functions. SinPi, CosPi and SinCosPi panic with a
// *DomainError; the Try variants return it.
type DomainError struct {
	Func string  // name of the function that was called
	X    float64 // the offending argument, +Inf or -Inf
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("trigpi: %s(%v): argument must be finite", e.Func, e.X)
}

// Unwrap returns ErrDomain.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
