// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package sets wraps a `map[T]struct{}` into a small generic set type.
package sets

// Set of values of a comparable type T. A nil Set is a valid read-only empty
// set.
type Set[T comparable] map[T]struct{}

// Make returns an empty Set. An optional size hint pre-allocates space for
// that many elements.
func Make[T comparable](size ...int) Set[T] {
	hint := 0
	if len(size) > 0 {
		hint = size[0]
	}
	return make(Set[T], hint)
}

// MakeWith returns a Set holding the given elements.
func MakeWith[T comparable](elements ...T) Set[T] {
	s := make(Set[T], len(elements))
	for _, e := range elements {
		s[e] = struct{}{}
	}
	return s
}

// Has reports whether key is in the set. Works on a nil Set.
func (s Set[T]) Has(key T) bool {
	_, ok := s[key]
	return ok
}

// Insert adds keys to the set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}
