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

// Package calc implements a stack calculator over natural numbers.
//
// A Calculator holds a stack of Naturals that all share one base. Every
// operation returns a new Calculator and leaves the receiver unchanged, so a
// failed operation never disturbs the prior state.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/capitalone/natural"
	"github.com/capitalone/natural/list"
)

// Errors
var (
	ErrStackUnderflow = errors.New("not enough numbers on the stack")
	ErrUnknownOp      = errors.New("unknown operation")
)

// InputError reports user input that could not be accepted. The caller may
// show Message and carry on.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// IsInternal reports whether err signals a broken invariant rather than bad
// input: operands in different bases, or a digit outside 0..35.
func IsInternal(err error) bool {
	return errors.Is(err, natural.ErrBaseMismatch) || errors.Is(err, natural.ErrDigitOutOfRange)
}

// Op is a binary operation on the top two numbers of the stack.
type Op int

// Operations
const (
	OpAdd Op = iota + 1
	OpMul
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// ParseOp reads an operation name: "add" or "+", "mul" or "*".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, nil
	case "mul", "*":
		return OpMul, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

func (op Op) apply(x, y natural.Natural) (natural.Natural, error) {
	switch op {
	case OpAdd:
		return natural.Add(x, y)
	case OpMul:
		return natural.Mul(x, y)
	}
	return natural.Natural{}, fmt.Errorf("%w: %v", ErrUnknownOp, op)
}

// ParseBase reads a base typed by the user.
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InputError{Message: "not an integer", Cause: err}
	}
	if base < natural.MinBase || base > natural.MaxBase {
		return 0, &InputError{
			Message: fmt.Sprintf("not in %d .. %d", natural.MinBase, natural.MaxBase),
			Cause:   natural.ErrInvalidBase,
		}
	}
	return base, nil
}

// Calculator is a stack of natural numbers in a single base.
// The zero value is not usable; call New.
type Calculator struct {
	base  int
	stack list.List[natural.Natural] // top first; every element is in base
}

// New returns a Calculator with an empty stack working in base.
func New(base int) (Calculator, error) {
	if base < natural.MinBase || base > natural.MaxBase {
		return Calculator{}, fmt.Errorf("%w: got %d", natural.ErrInvalidBase, base)
	}
	return Calculator{base: base}, nil
}

// Base returns the base every number on the stack is written in.
func (c Calculator) Base() int {
	return c.base
}

// Len returns the number of elements on the stack.
func (c Calculator) Len() int {
	return c.stack.Len()
}

// Top returns the top of the stack. ok is false when the stack is empty.
func (c Calculator) Top() (natural.Natural, bool) {
	return c.stack.Head()
}

// Push parses digits, most significant first, in the calculator's base and
// pushes the result. Leading zeros are ignored and an empty string is zero.
func (c Calculator) Push(digits string) (Calculator, error) {
	chars := list.DropLeading('0', list.Explode(strings.TrimSpace(digits)))
	nat, err := natural.Parse(list.Compact(chars), c.base)
	if err != nil {
		return c, &InputError{Message: fmt.Sprintf("not valid base-%d digits", c.base), Cause: err}
	}
	return c.push(nat), nil
}

func (c Calculator) push(nat natural.Natural) Calculator {
	return Calculator{base: c.base, stack: list.Cons(nat, c.stack)}
}

// Pop removes the top of the stack.
func (c Calculator) Pop() (Calculator, error) {
	if c.stack.Empty() {
		return c, fmt.Errorf("%w: pop needs 1", ErrStackUnderflow)
	}
	return Calculator{base: c.base, stack: c.stack.Tail()}, nil
}

// Combine replaces the top two numbers with op applied to them, the top
// of the stack being the left operand.
func (c Calculator) Combine(op Op) (Calculator, error) {
	if c.stack.Len() < 2 {
		return c, fmt.Errorf("%w: %v needs 2, have %d", ErrStackUnderflow, op, c.stack.Len())
	}
	x, _ := c.stack.Head()
	rest := c.stack.Tail()
	y, _ := rest.Head()
	z, err := op.apply(x, y)
	if err != nil {
		return c, fmt.Errorf("%v: %w", op, err)
	}
	return Calculator{base: c.base, stack: list.Cons(z, rest.Tail())}, nil
}

// Rebase converts every number on the stack to base, keeping their order.
func (c Calculator) Rebase(base int) (Calculator, error) {
	if base < natural.MinBase || base > natural.MaxBase {
		return c, fmt.Errorf("%w: got %d", natural.ErrInvalidBase, base)
	}

	// Inv: rebased holds the converted elements above s, in reverse order.
	var rebased list.List[natural.Natural]
	for s := c.stack; !s.Empty(); s = s.Tail() {
		nat, _ := s.Head()
		conv, err := natural.ChangeBase(nat, base)
		if err != nil {
			return c, err
		}
		rebased = list.Cons(conv, rebased)
	}
	return Calculator{base: base, stack: list.Rev(rebased)}, nil
}

// Render returns the digits of every number on the stack, top first.
func (c Calculator) Render() []string {
	return list.ToSlice(list.Map(c.stack, natural.Natural.String))
}
