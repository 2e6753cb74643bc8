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

// Scale returns s * x in the base of x.
func Scale(x Natural, s int) (Natural, error) {
	if s < 0 {
		return Natural{}, fmt.Errorf("%w: %d", ErrInvalidScalar, s)
	}
	return Natural{digits: scaleDigits(x.digits, s, x.base), base: x.base}, nil
}

// Mul returns x * y. Both operands must be in the same base, which is also
// the base of the result.
func Mul(x, y Natural) (Natural, error) {
	if x.base != y.base {
		return Natural{}, fmt.Errorf("%w: cannot multiply base %d by base %d", ErrBaseMismatch, x.base, y.base)
	}
	return Natural{digits: mulDigits(x.digits, y.digits, x.base), base: x.base}, nil
}

// scaleDigits returns the little-endian digits of s * xs.
//
// A scalar below the base takes a single pass: every partial product
// d*s + c is below base*base, so the carry always fits in one digit. Larger
// scalars are first written in the base and multiplied in full, which keeps
// every intermediate value small no matter how large s is.
func scaleDigits(xs []uint16, s, base int) []uint16 {
	if len(xs) == 0 || s == 0 {
		return nil
	}
	if s >= base {
		return mulDigits(xs, intDigits(s, base), base)
	}

	z := make([]uint16, 0, len(xs)+1)
	c := 0
	for _, d := range xs {
		p := int(d)*s + c
		z = append(z, uint16(p%base))
		c = p / base
	}
	if c != 0 {
		z = append(z, uint16(c))
	}
	return norm(z)
}

// mulDigits returns the little-endian digits of xs * ys by long
// multiplication: the sum over i of xs * ys[i] shifted i places.
func mulDigits(xs, ys []uint16, base int) []uint16 {
	if len(xs) == 0 || len(ys) == 0 {
		return nil
	}

	// Horner over ys from its most significant digit:
	// acc = xs*ys[i] + base*acc.
	var acc []uint16
	for i := len(ys) - 1; i >= 0; i-- {
		acc = addDigits(scaleDigits(xs, int(ys[i]), base), shift(acc), base)
	}
	return acc
}
