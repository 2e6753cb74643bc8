/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package natural

import "fmt"

// Bounds on the supported bases.
const (
	MinBase = 2
	MaxBase = 36
)

// A Natural is a non-negative integer held as a sequence of digits in a base
// between MinBase and MaxBase.
//
// The digits are stored little-endian: element 0 is the least significant
// digit. The sequence never ends in a zero digit, so zero is the empty
// sequence. The zero value of Natural has no base and is not usable; build
// Naturals with Zero, New, Parse, FromInt or Num.
type Natural struct {
	digits []uint16
	base   int
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	return nil
}

// Zero returns the natural number 0 in the given base.
func Zero(base int) (Natural, error) {
	if err := checkBase(base); err != nil {
		return Natural{}, err
	}
	return Natural{base: base}, nil
}

// New builds a Natural from little-endian digits. Every digit must be smaller
// than base. Zero digits at the most significant end are dropped.
func New(digits []uint16, base int) (Natural, error) {
	if err := checkBase(base); err != nil {
		return Natural{}, err
	}
	ds := make([]uint16, len(digits))
	for i, d := range digits {
		if int(d) >= base {
			return Natural{}, fmt.Errorf("%w: digit %d at position %d in base %d", ErrDigitNotValidForBase, d, i, base)
		}
		ds[i] = d
	}
	return Natural{digits: norm(ds), base: base}, nil
}

// Base returns the base x is written in.
func (x Natural) Base() int {
	return x.base
}

// Digits returns a copy of the little-endian digits of x.
// It returns an empty slice for zero.
func (x Natural) Digits() []uint16 {
	ds := make([]uint16, len(x.digits))
	copy(ds, x.digits)
	return ds
}

// Len returns the number of digits of x; zero has none.
func (x Natural) Len() int {
	return len(x.digits)
}

// IsZero reports whether x is 0.
func (x Natural) IsZero() bool {
	return len(x.digits) == 0
}

// Equal reports whether x and y have the same base and the same digits.
// Naturals of the same value in different bases are not Equal.
func (x Natural) Equal(y Natural) bool {
	if x.base != y.base || len(x.digits) != len(y.digits) {
		return false
	}
	for i, d := range x.digits {
		if y.digits[i] != d {
			return false
		}
	}
	return true
}

// norm drops zero digits from the most significant end of ds.
func norm(ds []uint16) []uint16 {
	i := len(ds)
	for i > 0 && ds[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return ds[0:i]
}

// shift multiplies ds by the base, prepending a zero digit. Zero stays empty.
func shift(ds []uint16) []uint16 {
	if len(ds) == 0 {
		return nil
	}
	z := make([]uint16, len(ds)+1)
	copy(z[1:], ds)
	return z
}
