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

// Package list provides persistent, immutable singly-linked lists.
//
// Lists share structure: Cons never copies its tail, and no operation
// modifies a list that already exists. Every traversal is a loop, so list
// length is bounded only by memory.
package list

import "strings"

// List is an immutable sequence of values. The zero value is the empty list.
type List[A any] struct {
	n *node[A]
}

type node[A any] struct {
	hd  A
	tl  *node[A]
	len int
}

// Nil returns the empty list.
func Nil[A any]() List[A] {
	return List[A]{}
}

// Cons returns the list with hd in front of tl.
func Cons[A any](hd A, tl List[A]) List[A] {
	return List[A]{n: &node[A]{hd: hd, tl: tl.n, len: tl.Len() + 1}}
}

// Empty reports whether l has no elements.
func (l List[A]) Empty() bool {
	return l.n == nil
}

// Len returns the number of elements in l.
func (l List[A]) Len() int {
	if l.n == nil {
		return 0
	}
	return l.n.len
}

// Head returns the first element of l. ok is false when l is empty.
func (l List[A]) Head() (hd A, ok bool) {
	if l.n == nil {
		return hd, false
	}
	return l.n.hd, true
}

// Tail returns l without its first element. The tail of the empty list is
// the empty list.
func (l List[A]) Tail() List[A] {
	if l.n == nil {
		return l
	}
	return List[A]{n: l.n.tl}
}

// Rev returns the elements of l in reverse order.
func Rev[A any](l List[A]) List[A] {
	return RevOnto(l, Nil[A]())
}

// RevOnto returns the reversal of l followed by r.
func RevOnto[A any](l, r List[A]) List[A] {
	for ; l.n != nil; l.n = l.n.tl {
		r = Cons(l.n.hd, r)
	}
	return r
}

// Concat returns l followed by r. r is shared, l is copied.
func Concat[A any](l, r List[A]) List[A] {
	return RevOnto(Rev(l), r)
}

// Equal reports whether l and r hold equal elements in the same order.
func Equal[A comparable](l, r List[A]) bool {
	if l.Len() != r.Len() {
		return false
	}
	for a, b := l.n, r.n; a != nil; a, b = a.tl, b.tl {
		if a == b {
			return true
		}
		if a.hd != b.hd {
			return false
		}
	}
	return true
}

// DropLeading returns the part of l after any leading elements equal to v.
func DropLeading[A comparable](v A, l List[A]) List[A] {
	for l.n != nil && l.n.hd == v {
		l.n = l.n.tl
	}
	return l
}

// Map returns the list of f applied to each element of l, in order.
func Map[A, B any](l List[A], f func(A) B) List[B] {
	var rev List[B]
	for n := l.n; n != nil; n = n.tl {
		rev = Cons(f(n.hd), rev)
	}
	return Rev(rev)
}

// FromSlice returns a list holding the elements of s in the same order.
func FromSlice[A any](s []A) List[A] {
	var l List[A]
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// ToSlice returns the elements of l in order. It returns nil for the empty list.
func ToSlice[A any](l List[A]) []A {
	if l.n == nil {
		return nil
	}
	s := make([]A, 0, l.Len())
	for n := l.n; n != nil; n = n.tl {
		s = append(s, n.hd)
	}
	return s
}

// Explode returns the runes of str as a list, first rune first.
func Explode(str string) List[rune] {
	return FromSlice([]rune(str))
}

// Compact packs a list of runes into a string.
func Compact(l List[rune]) string {
	var sb strings.Builder
	for n := l.n; n != nil; n = n.tl {
		sb.WriteRune(n.hd)
	}
	return sb.String()
}
