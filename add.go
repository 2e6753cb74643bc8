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

// Add returns x + y. Both operands must be in the same base, which is also
// the base of the result.
func Add(x, y Natural) (Natural, error) {
	if x.base != y.base {
		return Natural{}, fmt.Errorf("%w: cannot add base %d to base %d", ErrBaseMismatch, x.base, y.base)
	}
	return Natural{digits: addDigits(x.digits, y.digits, x.base), base: x.base}, nil
}

// addDigits returns the little-endian digits of xs + ys. Neither input is
// modified and the result never shares storage with them.
func addDigits(xs, ys []uint16, base int) []uint16 {
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	z := make([]uint16, 0, len(xs)+1)

	// Inv: z holds the low i digits of the sum and c the carry into digit i.
	c := 0
	i := 0
	for ; i < len(ys); i++ {
		s := int(xs[i]) + int(ys[i]) + c
		if s >= base {
			z = append(z, uint16(s-base))
			c = 1
		} else {
			z = append(z, uint16(s))
			c = 0
		}
	}
	for ; c == 1 && i < len(xs); i++ {
		s := int(xs[i]) + c
		if s >= base {
			z = append(z, uint16(s-base))
		} else {
			z = append(z, uint16(s))
			c = 0
		}
	}

	// nothing left can carry
	z = append(z, xs[i:]...)
	if c == 1 {
		z = append(z, 1)
	}
	return norm(z)
}
