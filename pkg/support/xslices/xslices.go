/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package xslices complements the standard slices and maps packages with the
// generic helpers used across this repository: slice constructors, mapping,
// sorted map keys and deep comparison of nested slices.
package xslices

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Iota returns a slice of n values counting up from start.
// Iota(int32(3), 2) returns []int32{3, 4}.
func Iota[T interface{ constraints.Integer | constraints.Float }](start T, n int) []T {
	s := make([]T, n)
	for ii := range s {
		s[ii] = start + T(ii)
	}
	return s
}

// Map applies fn to every element of in and returns the resulting slice.
func Map[In, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}

// SliceWithValue returns a slice of the given size with every element set to
// value.
func SliceWithValue[T any](size int, value T) []T {
	return slices.Repeat([]T{value}, size)
}

// Copy returns a fresh shallow copy of the given slice, nil for an empty one.
func Copy[T any](slice []T) []T {
	if len(slice) == 0 {
		return nil
	}
	return slices.Clone(slice)
}

// Keys returns the keys of m in arbitrary order.
func Keys[K comparable, V any](m map[K]V) []K {
	return slices.Collect(maps.Keys(m))
}

// SortedKeys returns the keys of m in increasing order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}

// SliceToGoStr formats a (possibly nested) slice as Go syntax that can be
// pasted back into code, spelling out the slice type only at the top level.
func SliceToGoStr(slice any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%T", slice)
	writeGoStr(&b, reflect.ValueOf(slice))
	return b.String()
}

func writeGoStr(b *strings.Builder, v reflect.Value) {
	if v.Kind() != reflect.Slice {
		fmt.Fprintf(b, "%v", v.Interface())
		return
	}
	b.WriteByte('{')
	for ii := range v.Len() {
		if ii > 0 {
			b.WriteString(", ")
		}
		writeGoStr(b, v.Index(ii))
	}
	b.WriteByte('}')
}

// SlicesInDelta reports whether the nested slices s0 and s1 have the same
// shape and element kinds, with every aligned pair of numeric elements within
// delta of each other. A delta <= 0 demands exact equality.
func SlicesInDelta(s0, s1 any, delta float64) bool {
	float64T := reflect.TypeOf(delta)
	return DeepSliceCmp(s0, s1, func(e0, e1 any) bool {
		v0, v1 := reflect.ValueOf(e0), reflect.ValueOf(e1)
		if v0.Kind() != v1.Kind() {
			return false
		}
		if reflect.DeepEqual(e0, e1) {
			return true
		}
		if delta <= 0 {
			return false
		}
		if !v0.CanConvert(float64T) || !v1.CanConvert(float64T) {
			return false
		}
		return math.Abs(v0.Convert(float64T).Float()-v1.Convert(float64T).Float()) <= delta
	})
}

// DeepSliceCmp compares two nested slices structurally: they must have the
// same nesting and lengths, and cmpFn must accept every aligned pair of
// elements.
func DeepSliceCmp(s0, s1 any, cmpFn func(e0, e1 any) bool) bool {
	return deepSliceCmp(reflect.ValueOf(s0), reflect.ValueOf(s1), cmpFn)
}

func deepSliceCmp(v0, v1 reflect.Value, cmpFn func(e0, e1 any) bool) bool {
	switch {
	case !v0.IsValid() || !v1.IsValid():
		return false
	case v0.Kind() != v1.Kind():
		return false
	case v0.Kind() != reflect.Slice:
		return cmpFn(v0.Interface(), v1.Interface())
	case v0.Len() != v1.Len():
		return false
	}
	for ii := range v0.Len() {
		if !deepSliceCmp(v0.Index(ii), v1.Index(ii), cmpFn) {
			return false
		}
	}
	return true
}
