package matrices

import (
	"fmt"
	"iter"
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// NumericType is the descriptor of a numeric matrix type: a named, fixed
// shape over one of the NumericConstraints element kinds. All instances
// created from it share the descriptor's name, id, shape and strides.
//
// Arithmetic methods live on the instances (see Numeric); results are always
// new instances, operands are never mutated.
type NumericType[T NumericConstraints] struct {
	typeSpec
}

// NewNumericType creates a numeric matrix type with the given name and
// dimensions. It panics if no dimension is given or any extent is < 1.
//
// The name is cosmetic and doesn't have to be unique; the descriptor's ID
// disambiguates.
func NewNumericType[T NumericConstraints](name string, dimensions ...int) *NumericType[T] {
	return &NumericType[T]{typeSpec: newTypeSpec(name, dimensions)}
}

// DType of the element kind.
func (ct *NumericType[T]) DType() dtypes.DType { return dtypes.FromGenericsType[T]() }

// Memory used by one instance's buffer, in bytes.
func (ct *NumericType[T]) Memory() uintptr {
	return ct.DType().Memory() * uintptr(ct.Size())
}

// String implements fmt.Stringer: `name: (DType)[dims...]`.
func (ct *NumericType[T]) String() string {
	return typeString(ct.name, ct.DType().String(), ct.shape)
}

// WithStrict returns a twin descriptor (same name, shape, element kind, fresh
// id) whose construction surface panics instead of normalizing: New requires
// exactly Size values, FromValues requires an exactly-shaped (or exact flat)
// input with every scalar coercible, From requires exactly Size elements.
func (ct *NumericType[T]) WithStrict(strict bool) *NumericType[T] {
	return &NumericType[T]{typeSpec: ct.typeSpec.withStrict(strict)}
}

// alloc creates a zero-filled instance. Internal construction (arithmetic
// results, Clone) goes through here, bypassing the strict-mode checks.
func (ct *NumericType[T]) alloc() *Numeric[T] {
	return &Numeric[T]{buffer: newBuffer[T](ct.shape), typ: ct}
}

// coerce applies the family's scalar coercion under the descriptor's mode:
// lenient descriptors store zero for non-coercible scalars, strict ones
// panic.
func (ct *NumericType[T]) coerce(value any) T {
	v, ok := coerceNumeric[T](value)
	if !ok && ct.strict {
		exceptions.Panicf("matrices: %s: cannot coerce %T(%v) to a %s element",
			ct.name, value, value, ct.DType())
	}
	return v
}

// New creates an instance from flat positional values: element i of the
// buffer takes values[i]. Missing trailing values stay zero, excess values
// are ignored (strict mode requires exactly Size values).
func (ct *NumericType[T]) New(values ...T) *Numeric[T] {
	ct.checkNewCount(len(values))
	m := ct.alloc()
	m.fillFrom(values)
	return m
}

// FromValues creates an instance from an arbitrary Go value: a flat slice, a
// nested slice (any regular or irregular nesting, traversed depth-first), an
// iter.Seq, or a single scalar. Input is clipped or zero-padded to Size and
// every scalar runs through the numeric coercion (see FlattenToShape).
func (ct *NumericType[T]) FromValues(value any) *Numeric[T] {
	ct.checkFromValuesShape(value)
	m := ct.alloc()
	var zero T
	for i, scalar := range FlattenToShape(value, ct.shape.Dimensions, zero) {
		m.flat[i] = ct.coerce(scalar)
	}
	return m
}

// From creates an instance from a typed sequence, clipped or zero-padded to
// Size like FromValues' flat path. The sequence is not ranged beyond Size
// elements, so infinite sequences are fine.
func (ct *NumericType[T]) From(seq iter.Seq[T]) *Numeric[T] {
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

// NewAny creates a zero-valued instance, losing the element type. It exists
// so registries and reporting tools can construct instances through a
// type-erased descriptor interface.
func (ct *NumericType[T]) NewAny() any { return ct.New() }

// Numeric is an instance of a NumericType: the type's shape plus a flat
// row-major buffer of exactly Size elements.
type Numeric[T NumericConstraints] struct {
	buffer[T]
	typ *NumericType[T]
}

// Type returns the instance's descriptor.
func (m *Numeric[T]) Type() *NumericType[T] { return m.typ }

// Name of the instance's type.
func (m *Numeric[T]) Name() string { return m.typ.Name() }

// Clone returns a deep copy sharing the descriptor.
func (m *Numeric[T]) Clone() *Numeric[T] {
	clone := m.typ.alloc()
	copy(clone.flat, m.flat)
	return clone
}

// Equal reports whether both instances have the same dimensions and identical
// elements. The descriptors may differ: equality is structural.
func (m *Numeric[T]) Equal(other *Numeric[T]) bool {
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

// Add returns a new instance of the receiver's type holding the element-wise
// sum, in the element kind's native arithmetic (integer kinds wrap). A
// shorter operand contributes zeros, a longer one is clipped to the
// receiver's size.
func (m *Numeric[T]) Add(other *Numeric[T]) *Numeric[T] {
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
func (m *Numeric[T]) Sub(other *Numeric[T]) *Numeric[T] {
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

// Scale returns a new instance with every element multiplied by scalar. The
// multiply happens in float64 and the result is stored back through the
// element kind (integer kinds truncate toward zero).
func (m *Numeric[T]) Scale(scalar float64) *Numeric[T] {
	result := m.typ.alloc()
	for i, v := range m.flat {
		result.flat[i] = numericFromFloat[T](float64(v) * scalar)
	}
	return result
}

// Dot returns the full-tensor inner product Σ m[i]·other[i] over flat
// positions, accumulated in float64. A shorter operand contributes zeros.
func (m *Numeric[T]) Dot(other *Numeric[T]) float64 {
	n := min(len(m.flat), len(other.flat))
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(m.flat[i]) * float64(other.flat[i])
	}
	return sum
}

// Magnitude is the Euclidean norm √(Σ v²) over all elements (the Frobenius
// norm for rank 2).
func (m *Numeric[T]) Magnitude() float64 {
	return math.Sqrt(m.Dot(m))
}

// Normalized returns this instance scaled to magnitude 1. A zero instance
// comes back zero (the zero magnitude is treated as 1), never NaN or Inf.
func (m *Numeric[T]) Normalized() *Numeric[T] {
	mag := m.Magnitude()
	if mag == 0 {
		mag = 1
	}
	return m.Scale(1 / mag)
}

// MatMul multiplies two rank-2 instances: C[i,k] = Σ_j m[i,j]·other[j,k],
// accumulated in the element kind's native arithmetic.
//
// It panics if either operand is not rank 2 or the receiver's column count
// doesn't match the other's row count. On success it synthesizes a brand-new
// type shaped [receiver rows, other columns] with a name derived from both
// operands; the new type is not registered anywhere and lives only as long
// as the result is retained.
func (m *Numeric[T]) MatMul(other *Numeric[T]) *Numeric[T] {
	if m.Rank() != 2 || other.Rank() != 2 {
		exceptions.Panicf("matrices: MatMul requires rank-2 operands, got %s%s and %s%s",
			m.Name(), m.shape, other.Name(), other.shape)
	}
	rows, inner := m.shape.Dim(0), m.shape.Dim(1)
	if other.shape.Dim(0) != inner {
		exceptions.Panicf("matrices: MatMul operands have incompatible shapes %s and %s: %d columns vs %d rows",
			m.shape, other.shape, inner, other.shape.Dim(0))
	}
	cols := other.shape.Dim(1)
	resultType := NewNumericType[T](fmt.Sprintf("MatMul(%s, %s)", m.Name(), other.Name()), rows, cols)
	result := resultType.New()
	for i := range rows {
		for k := range cols {
			var sum T
			for j := range inner {
				sum += m.At(i, j) * other.At(j, k)
			}
			result.Set(sum, i, k)
		}
	}
	return result
}
