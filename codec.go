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
	"unicode"
	"unicode/utf8"
)

// Codec supports the conversion of an arbitrary alphabet into ordinal
// values from 0 to length of alphabet-1.
// Element 'rtu' (rune-to-uint16) supports the mapping from runes, aliases included, to ordinal values.
// Element 'utr' (uint16-to-rune) supports the mapping from ordinal values to runes.
type Codec struct {
	rtu map[rune]uint16
	utr []rune
}

// base36 is the digit alphabet 0-9, A-Z. Lowercase letters decode to the same
// ordinals as their uppercase forms; Decode always produces uppercase.
var base36 = mustDigitCodec()

// DigitCodec returns a copy of the codec behind Parse, String, DigitOf and
// CharOf. Aliases added to the copy do not affect the package.
func DigitCodec() Codec {
	c := Codec{
		rtu: make(map[rune]uint16, len(base36.rtu)),
		utr: make([]rune, len(base36.utr)),
	}
	for r, v := range base36.rtu {
		c.rtu[r] = v
	}
	copy(c.utr, base36.utr)
	return c
}

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func mustDigitCodec() Codec {
	c, err := NewCodec(digitAlphabet)
	if err != nil {
		panic(err)
	}
	for r := 'a'; r <= 'z'; r++ {
		if err := c.Alias(r, unicode.ToUpper(r)); err != nil {
			panic(err)
		}
	}
	return c
}

// NewCodec builds a Codec from the set of unique characters taken from the string s.
// The string contains arbitrary Utf-8 characters.
// It is an error to try to construct a codec from an alphabet with more the 65536 characters.
func NewCodec(s string) (Codec, error) {
	var ret Codec
	ret.rtu = make(map[rune]uint16)
	ret.utr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		// duplicates are tolerated, but ignored.
		if _, ok := ret.rtu[rv]; ok {
			continue
		}
		if len(ret.utr) == 65536 {
			return ret, fmt.Errorf("alphabet must contain no more than 65536 characters")
		}
		ret.rtu[rv] = uint16(len(ret.utr))
		ret.utr = append(ret.utr, rv)
	}
	return ret, nil
}

// Alias makes the rune alias decode to the ordinal of target, which must
// already be in the alphabet. Aliases never change what Decode produces.
func (a *Codec) Alias(alias, target rune) error {
	v, ok := a.rtu[target]
	if !ok {
		return fmt.Errorf("alias target %q is not in alphabet", target)
	}
	if w, ok := a.rtu[alias]; ok && w != v {
		return fmt.Errorf("alias %q already maps to ordinal %d", alias, w)
	}
	a.rtu[alias] = v
	return nil
}

// Radix returns the size of the alphabet supported by the Codec.
func (a *Codec) Radix() int {
	return len(a.utr)
}

// Encode the supplied string as an array of ordinal values giving the
// position of each character in the alphabet.
// It is an error for the supplied string to contain characters than are not
// in the alphabet.
func (a *Codec) Encode(s string) ([]uint16, error) {
	ret := make([]uint16, 0, utf8.RuneCountInString(s))
	for i, rv := range []rune(s) {
		v, ok := a.rtu[rv]
		if !ok {
			return ret, fmt.Errorf("%w: character %q at position %d is not in alphabet", ErrInvalidDigitChar, rv, i)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Decode constructs a string from an array of ordinal values where each
// value specifies the position of the character in the alphabet.
// It is an error for the array to contain values outside the boundary of the
// alphabet.
func (a *Codec) Decode(n []uint16) (string, error) {
	var sb strings.Builder
	sb.Grow(len(n))
	for i, v := range n {
		if int(v) > len(a.utr)-1 {
			return sb.String(), fmt.Errorf("%w: numeral at position %d: %d not in [0..%d]", ErrDigitOutOfRange, i, v, len(a.utr)-1)
		}
		sb.WriteRune(a.utr[v])
	}
	return sb.String(), nil
}

// DigitOf returns the value 0..35 of a digit character: '0'-'9' are 0 to 9
// and 'a'-'z' or 'A'-'Z' are 10 to 35.
func DigitOf(r rune) (int, error) {
	v, ok := base36.rtu[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigitChar, r)
	}
	return int(v), nil
}

// CharOf returns the character for a digit value in 0..35, using uppercase
// letters above 9.
func CharOf(d int) (rune, error) {
	if d < 0 || d >= len(base36.utr) {
		return 0, fmt.Errorf("%w: %d not in [0..%d]", ErrDigitOutOfRange, d, len(base36.utr)-1)
	}
	return base36.utr[d], nil
}
