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

// ChangeBase returns x written in base. The value is unchanged.
//
// The digits of x are evaluated as d0 + b*(d1 + b*(d2 + ...)), where b is the
// base of x, with every step carried out in the new base by Add and Scale.
func ChangeBase(x Natural, base int) (Natural, error) {
	if err := checkBase(base); err != nil {
		return Natural{}, err
	}
	if base == x.base {
		return x, nil
	}

	var acc []uint16
	for i := len(x.digits) - 1; i >= 0; i-- {
		acc = addDigits(intDigits(int(x.digits[i]), base), scaleDigits(acc, x.base, base), base)
	}
	return Natural{digits: acc, base: base}, nil
}
