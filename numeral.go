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

// Num constructs a Natural from an array of uint16, where each element represents
// one digit in the given base.  The array is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1. Leading zero digits are allowed.
func Num(s []uint16, base int) (Natural, error) {
	if err := checkBase(base); err != nil {
		return Natural{}, err
	}

	maxv := uint16(base - 1)
	m := len(s)
	ds := make([]uint16, m)
	for i, v := range s {
		if v > maxv {
			return Natural{}, fmt.Errorf("%w: value at %d out of range: got %d - expected 0..%d", ErrDigitNotValidForBase, i, v, maxv)
		}
		ds[m-i-1] = v
	}
	return Natural{digits: norm(ds), base: base}, nil
}

// NumRev constructs a Natural from an array of uint16, where each element represents
// one digit in the given base.  The array is arranged with the least significant digit in element 0,
// down to the most significant digit in element len-1.
func NumRev(s []uint16, base int) (Natural, error) {
	return New(s, base)
}

// Str populates an array of uint16 with the digits of x.
// The array is arranged with the most significant digit in element 0 and is
// zero-padded on the left. It is an error for the array to be shorter than
// x.Len(); r is left untouched in that case.
func Str(x Natural, r []uint16) ([]uint16, error) {
	m := len(r)
	if len(x.digits) > m {
		return r, fmt.Errorf("%w: %s needs %d digits, have %d", ErrNumeralTooSmall, x, len(x.digits), m)
	}
	for i := range r {
		var v uint16
		if i < len(x.digits) {
			v = x.digits[i]
		}
		r[m-i-1] = v
	}
	return r, nil
}

// StrRev populates an array of uint16 with the digits of x.
// The array is arranged with the least significant digit in element 0 and is
// zero-padded on the right.
func StrRev(x Natural, r []uint16) ([]uint16, error) {
	if len(x.digits) > len(r) {
		return r, fmt.Errorf("%w: %s needs %d digits, have %d", ErrNumeralTooSmall, x, len(x.digits), len(r))
	}
	n := copy(r, x.digits)
	for i := n; i < len(r); i++ {
		r[i] = 0
	}
	return r, nil
}

// DecodeNum renders x as exactly width characters of the alphabet embedded in
// the Codec, most significant first. The base of x must not exceed the
// radix of the Codec.
func DecodeNum(x Natural, width int, c Codec) (string, error) {
	if x.base > c.Radix() {
		return "", fmt.Errorf("%w: base %d exceeds alphabet radix %d", ErrDigitOutOfRange, x.base, c.Radix())
	}
	ret := make([]uint16, width)
	if _, err := Str(x, ret); err != nil {
		return "", err
	}
	return c.Decode(ret)
}
