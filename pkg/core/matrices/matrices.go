// Package matrices synthesizes fixed-shape matrix (and higher-rank tensor)
// types at runtime.
//
// A "type" here is a descriptor value returned by one of the three factories,
// and an "instance" is a flat row-major buffer pointing back at its descriptor.
// The descriptor carries the class-level state shared by all of its instances:
// a human-readable name, a unique id, the shape and the strides derived from
// it. Instances only add the buffer, so creating new types is cheap and
// creating instances is a single allocation.
//
// The three factories cover three element-kind families:
//
//   - NewGenericType[T any](name, dimensions...): opaque elements, structural
//     operations only (indexing, cloning, equality, printing, serialization).
//
//   - NewNumericType[T NumericConstraints](name, dimensions...): 8, 16 and
//     32-bit integers and 32/64-bit floats, with element-wise arithmetic,
//     dot products, normalization and rank-2 matrix multiplication.
//
//   - NewIntegerType[T Integer64Constraints](name, dimensions...): 64-bit
//     integers with exact integer arithmetic; scalar inputs of many types are
//     funneled through a single 64-bit coercion point.
//
// Instances are built with New (positional flat values), FromValues (any
// nested or flat Go value, routed through FlattenToShape) or From (a typed
// iterator). Construction is lenient by default: missing values pad with the
// family's zero, excess values are dropped and non-coercible scalars coerce
// to zero. A descriptor twin returned by WithStrict(true) rejects all of
// those instead, panicking in the style of the rest of the library (see
// github.com/gomlx/exceptions to convert panics to errors).
//
// Only two error kinds surface from instances themselves, both eager panics:
// out-of-range (or wrong arity) coordinates, and shape-incompatible MatMul
// operands. Everything else is normalized silently.
package matrices

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/matrices/pkg/core/shapes"
	"github.com/google/uuid"
)

// NumericConstraints are the element kinds accepted by the numeric family:
// the 8, 16 and 32-bit integers, and the 32 and 64-bit floats.
//
// The 64-bit integers are deliberately left out, they have their own family
// (see Integer64Constraints) with exact arithmetic.
type NumericConstraints interface {
	int8 | int16 | int32 | uint8 | uint16 | uint32 | float32 | float64
}

// Integer64Constraints are the element kinds of the 64-bit integer family.
type Integer64Constraints interface {
	int64 | uint64
}

// typeSpec is the descriptor state common to the three families: an immutable
// (name, shape) pair plus a unique id and the strictness flag.
//
// It is embedded (not exported) by GenericType, NumericType and IntegerType,
// which promote its accessors.
type typeSpec struct {
	name   string
	id     string
	shape  shapes.Shape
	strict bool
}

// newTypeSpec builds the common descriptor state, panicking on misuse: a
// type must have at least one dimension and every extent must be >= 1
// (shapes.Make checks the extents).
func newTypeSpec(name string, dimensions []int) typeSpec {
	if len(dimensions) == 0 {
		exceptions.Panicf("matrices: type %q requires at least one dimension", name)
	}
	return typeSpec{
		name:  name,
		id:    uuid.NewString(),
		shape: shapes.Make(dimensions...),
	}
}

// Name of the type, as given to the factory. Purely cosmetic: it shows up in
// reports and derived-type names, but is never used for caching or equality.
func (s typeSpec) Name() string { return s.name }

// ID is the unique id assigned to this descriptor at creation. Two types
// created with the same name and dimensions still get different ids.
func (s typeSpec) ID() string { return s.id }

// Shape of every instance of this type.
func (s typeSpec) Shape() shapes.Shape { return s.shape }

// Size is the flat buffer length of every instance: the product of the
// dimensions.
func (s typeSpec) Size() int { return s.shape.Size() }

// Rank is the number of axes.
func (s typeSpec) Rank() int { return s.shape.Rank() }

// Strides of the row-major layout, in elements (not bytes).
func (s typeSpec) Strides() []int { return s.shape.Strides() }

// IsStrict reports whether this descriptor's construction surface rejects
// (panics on) inputs that the default lenient mode would normalize.
func (s typeSpec) IsStrict() bool { return s.strict }

// withStrict returns a copy of the descriptor with the given strictness and a
// fresh id. Used by the families' WithStrict.
func (s typeSpec) withStrict(strict bool) typeSpec {
	s.strict = strict
	s.id = uuid.NewString()
	return s
}

// checkNewCount validates New's argument count under strict mode.
func (s typeSpec) checkNewCount(given int) {
	if s.strict && given != s.Size() {
		exceptions.Panicf("matrices: %s.New: strict type requires exactly %d values, got %d",
			s.name, s.Size(), given)
	}
}

// checkFromValuesShape validates FromValues' input under strict mode: the
// inferred shape must either match the type's dimensions exactly, or be a
// flat (rank-1) slice of exactly Size elements.
func (s typeSpec) checkFromValuesShape(value any) {
	if !s.strict {
		return
	}
	inferred, err := shapes.FromAnyValue(value)
	if err != nil {
		exceptions.Panicf("matrices: %s.FromValues: strict type cannot infer the input's shape: %v",
			s.name, err)
	}
	if inferred.Equal(s.shape) {
		return
	}
	if inferred.Rank() == 1 && inferred.Size() == s.Size() {
		return
	}
	exceptions.Panicf("matrices: %s.FromValues: strict type requires input shaped %s (or flat with %d values), got %s",
		s.name, s.shape, s.Size(), inferred)
}

// buffer is the storage every instance embeds: the type's shape plus the flat
// row-major data. Its length is always exactly the shape's size.
type buffer[T any] struct {
	shape shapes.Shape
	flat  []T
}

func newBuffer[T any](shape shapes.Shape) buffer[T] {
	return buffer[T]{shape: shape, flat: make([]T, shape.Size())}
}

// Shape of the instance (same value as its type's).
func (b *buffer[T]) Shape() shapes.Shape { return b.shape }

// Size is the flat buffer length, the product of the dimensions.
func (b *buffer[T]) Size() int { return len(b.flat) }

// Rank is the number of axes.
func (b *buffer[T]) Rank() int { return b.shape.Rank() }

// IndexOf converts coordinates to the flat buffer position. It panics if the
// number of coordinates doesn't match the rank or any coordinate is outside
// its axis' range. Coordinates are never clamped or wrapped.
func (b *buffer[T]) IndexOf(coords ...int) int {
	return b.shape.Index(coords...)
}

// At reads the element at the given coordinates. Same range/arity checks as
// IndexOf.
func (b *buffer[T]) At(coords ...int) T {
	return b.flat[b.shape.Index(coords...)]
}

// Set writes the element at the given coordinates. Same range/arity checks as
// IndexOf.
func (b *buffer[T]) Set(value T, coords ...int) {
	b.flat[b.shape.Index(coords...)] = value
}

// Flat returns the live flat buffer backing the instance, not a copy:
// writes to it are writes to the instance.
func (b *buffer[T]) Flat() []T { return b.flat }

// fillFrom copies values into the buffer's prefix: extra values are dropped,
// missing trailing positions keep the element zero.
func (b *buffer[T]) fillFrom(values []T) {
	copy(b.flat, values)
}

// typeString is the common descriptor rendering: `name: (kind)[dims...]`.
func typeString(name, kind string, shape shapes.Shape) string {
	return fmt.Sprintf("%s: (%s)%s", name, kind, shape)
}
