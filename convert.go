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

import (
	"fmt"
	"strings"
)

// Parse reads s, written most significant digit first, as a Natural in the
// given base. Digits 10 to 35 may be written in either case. Both "0" and ""
// parse to zero.
//
// Parse does not strip leading zeros for the caller, but the result is always
// canonical: "007" in base 10 is the same Natural as "7".
func Parse(s string, base int) (Natural, error) {
	if err := checkBase(base); err != nil {
		return Natural{}, err
	}
	if s == "0" {
		return Natural{base: base}, nil
	}

	numeral, err := base36.Encode(s)
	if err != nil {
		return Natural{}, err
	}
	m := len(numeral)
	ds := make([]uint16, m)
	for i, v := range numeral {
		if int(v) >= base {
			return Natural{}, fmt.Errorf("%w: %q is not a base-%d digit", ErrDigitNotValidForBase, base36.utr[v], base)
		}
		ds[m-i-1] = v
	}
	return Natural{digits: norm(ds), base: base}, nil
}

// String returns the digits of x, most significant first, using 0-9 and A-Z.
// Zero is "0".
func (x Natural) String() string {
	if len(x.digits) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(x.digits))
	for i := len(x.digits) - 1; i >= 0; i-- {
		sb.WriteRune(base36.utr[x.digits[i]])
	}
	return sb.String()
}

// FromInt returns n written in the given base.
func FromInt(n int, base int) (Natural, error) {
	if n < 0 {
		return Natural{}, fmt.Errorf("%w: %d", ErrNegativeInteger, n)
	}
	if err := checkBase(base); err != nil {
		return Natural{}, err
	}
	return Natural{digits: intDigits(n, base), base: base}, nil
}

// intDigits returns the little-endian digits of n >= 0.
func intDigits(n, base int) []uint16 {
	var ds []uint16
	for n != 0 {
		ds = append(ds, uint16(n%base))
		n /= base
	}
	return ds
}
