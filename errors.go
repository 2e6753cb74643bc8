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

import "errors"

// Errors
var (
	ErrInvalidBase          = errors.New("base must be between 2 and 36, inclusive")
	ErrInvalidDigitChar     = errors.New("not a valid digit character")
	ErrDigitNotValidForBase = errors.New("digit not valid for base")
	ErrDigitOutOfRange      = errors.New("digit out of range")
	ErrBaseMismatch         = errors.New("operands have different bases")
	ErrInvalidScalar        = errors.New("scalar must be a non-negative integer")
	ErrNegativeInteger      = errors.New("not a non-negative integer")
	ErrNumeralTooSmall      = errors.New("destination numeral too small")
)
