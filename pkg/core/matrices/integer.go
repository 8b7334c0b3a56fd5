package matrices

import (
	"iter"
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// IntegerType is the descriptor of a 64-bit integer matrix type (int64 or
// uint64 elements). It mirrors NumericType's surface with exact integer
// arithmetic: no float accumulation on Dot, no Normalized and no MatMul.
//
// Every scalar written into instances funnels through one conversion point
// (see coerceInteger): 64-bit integers pass through, narrower numbers
// extend or truncate, numeric strings parse.
type IntegerType[T Integer64Constraints] struct {
	typeSpec
}

// NewIntegerType creates a 64-bit integer matrix type with the given name
// and dimensions. It panics if no dimension is given or any extent is < 1.
func NewIntegerType[T Integer64Constraints](name string, dimensions ...int) *IntegerType[T] {
	return &IntegerType[T]{typeSpec: newTypeSpec(name, dimensions)}
}

// DType of the element kind: Int64 or Uint64.
func (ct *IntegerType[T]) DType() dtypes.DType { return dtypes.FromGenericsType[T]() }

// Memory used by one instance's buffer, in bytes.
func (ct *IntegerType[T]) Memory() uintptr {
	return ct.DType().Memory() * uintptr(ct.Size())
}

// String implements fmt.Stringer: `name: (DType)[dims...]`.
func (ct *IntegerType[T]) String() string {
	return typeString(ct.name, ct.DType().String(), ct.shape)
}

// WithStrict returns a twin descriptor whose construction surface panics
// instead of normalizing. See NumericType.WithStrict.
func (ct *IntegerType[T]) WithStrict(strict bool) *IntegerType[T] {
	return &IntegerType[T]{typeSpec: ct.typeSpec.withStrict(strict)}
}

func (ct *IntegerType[T]) alloc() *Integer[T] {
	return &Integer[T]{buffer: newBuffer[T](ct.shape), typ: ct}
}

// coerce applies the 64-bit scalar coercion under the descriptor's mode.
func (ct *IntegerType[T]) coerce(value any) T {
	v, ok := coerceInteger[T](value)
	if !ok && ct.strict {
		exceptions.Panicf("matrices: %s: cannot coerce %T(%v) to a %s element",
			ct.name, value, value, ct.DType())
	}
	return v
}

// New creates an instance from flat positional values. Missing trailing
// values stay zero, excess values are ignored (strict mode requires exactly
// Size values).
func (ct *IntegerType[T]) New(values ...T) *Integer[T] {
	ct.checkNewCount(len(values))
	m := ct.alloc()
	m.fillFrom(values)
	return m
}

// FromValues creates an instance from an arbitrary Go value, traversed
// depth-first and clipped or zero-padded to Size; every scalar runs through
// the 64-bit coercion. See NumericType.FromValues.
func (ct *IntegerType[T]) FromValues(value any) *Integer[T] {
	ct.checkFromValuesShape(value)
	m := ct.alloc()
	var zero T
	for i, scalar := range FlattenToShape(value, ct.shape.Dimensions, zero) {
		m.flat[i] = ct.coerce(scalar)
	}
	return m
}

// From creates an instance from a typed sequence, clipped or zero-padded to
// Size. The sequence is not ranged beyond Size elements.
func (ct *IntegerType[T]) From(seq iter.Seq[T]) *Integer[T] {
	m := ct.alloc()
	count := 0
	for v := range seq {
		if count >= len(m.flat) {
			if ct.strict {
				exceptions.Panicf("matrices: %s.From: strict type requires exactly %d values, sequence yielded more",
					ct.name, ct.Size())
			}
			break
		}
		m.flat[count] = v
		count++
	}
	if ct.strict && count < ct.Size() {
		exceptions.Panicf("matrices: %s.From: strict type requires exactly %d values, sequence yielded %d",
			ct.name, ct.Size(), count)
	}
	return m
}

// NewAny creates a zero-valued instance through a type-erased descriptor.
func (ct *IntegerType[T]) NewAny() any { return ct.New() }

// Integer is an instance of an IntegerType.
type Integer[T Integer64Constraints] struct {
	buffer[T]
	typ *IntegerType[T]
}

// Type returns the instance's descriptor.
func (m *Integer[T]) Type() *IntegerType[T] { return m.typ }

// Name of the instance's type.
func (m *Integer[T]) Name() string { return m.typ.Name() }

// Clone returns a deep copy sharing the descriptor.
func (m *Integer[T]) Clone() *Integer[T] {
	clone := m.typ.alloc()
	copy(clone.flat, m.flat)
	return clone
}

// Equal reports whether both instances have the same dimensions and
// identical elements.
func (m *Integer[T]) Equal(other *Integer[T]) bool {
	if other == nil || !m.shape.Equal(other.shape) {
		return false
	}
	for i, v := range m.flat {
		if v != other.flat[i] {
			return false
		}
	}
	return true
}

// Add returns the element-wise sum in exact 64-bit arithmetic (wrapping
// modulo 2^64). A shorter operand contributes zeros, a longer one is clipped.
func (m *Integer[T]) Add(other *Integer[T]) *Integer[T] {
	result := m.typ.alloc()
	for i := range result.flat {
		var o T
		if i < len(other.flat) {
			o = other.flat[i]
		}
		result.flat[i] = m.flat[i] + o
	}
	return result
}

// Sub is Add's element-wise difference counterpart.
func (m *Integer[T]) Sub(other *Integer[T]) *Integer[T] {
	result := m.typ.alloc()
	for i := range result.flat {
		var o T
		if i < len(other.flat) {
			o = other.flat[i]
		}
		result.flat[i] = m.flat[i] - o
	}
	return result
}

// Scale multiplies every element by scalar in exact 64-bit arithmetic. The
// scalar itself goes through the family's coercion first, so 64-bit
// integers, ordinary numbers (truncated toward zero) and numeric strings all
// work; a non-coercible scalar scales by zero.
func (m *Integer[T]) Scale(scalar any) *Integer[T] {
	s, _ := coerceInteger[T](scalar)
	result := m.typ.alloc()
	for i, v := range m.flat {
		result.flat[i] = v * s
	}
	return result
}

// Dot returns the exact integer inner product Σ m[i]·other[i] over flat
// positions, in the element kind's wrapping arithmetic. A shorter operand
// contributes zeros.
func (m *Integer[T]) Dot(other *Integer[T]) T {
	n := min(len(m.flat), len(other.flat))
	var sum T
	for i := 0; i < n; i++ {
		sum += m.flat[i] * other.flat[i]
	}
	return sum
}

// LengthApprox returns the approximate Euclidean norm √(Σ v²). The squares
// accumulate in float64, so the approximation holds even where the exact
// 64-bit sum of squares would wrap.
func (m *Integer[T]) LengthApprox() float64 {
	var sum float64
	for _, v := range m.flat {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum)
}
