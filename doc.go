/*
Package natural implements arbitrary-precision natural numbers written in
positional notation in any base from 2 to 36.

A Natural stores its digits little-endian, with no most significant zero
digit; zero is the empty digit sequence. Values are immutable and every
operation returns a new Natural. None of the arithmetic relies on math/big:
addition propagates carries digit by digit, multiplication sums shifted
partial products and base conversion evaluates the digits Horner-style in
the target base.

The list sub-package provides the persistent sequences used by the calc
sub-package, which implements a stack calculator over Naturals.

*/
package natural
