package matrices

import (
	"iter"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// GenericType is the descriptor of a matrix type over opaque elements: any
// Go type works, including `any` itself. The surface is structural only
// (indexing, cloning, equality, printing, serialization); there is no
// arithmetic and no scalar coercion beyond a type assertion.
type GenericType[T any] struct {
	typeSpec
}

// NewGenericType creates a generic matrix type with the given name and
// dimensions. It panics if no dimension is given or any extent is < 1.
func NewGenericType[T any](name string, dimensions ...int) *GenericType[T] {
	return &GenericType[T]{typeSpec: newTypeSpec(name, dimensions)}
}

// DType of the element type when it maps to one (a GenericType[float32]
// reports Float32); InvalidDType otherwise, `any` included.
func (ct *GenericType[T]) DType() dtypes.DType {
	return dtypes.FromGoType(reflect.TypeOf((*T)(nil)).Elem())
}

// Memory used by one instance's buffer, in bytes; 0 when the element type
// has no dtype mapping.
func (ct *GenericType[T]) Memory() uintptr {
	dtype := ct.DType()
	if dtype == dtypes.InvalidDType {
		return 0
	}
	return dtype.Memory() * uintptr(ct.Size())
}

// kind is the element-type label used in renderings: the dtype-less types
// print their Go name.
func (ct *GenericType[T]) kind() string {
	return elementTypeName[T]()
}

// String implements fmt.Stringer: `name: (element type)[dims...]`.
func (ct *GenericType[T]) String() string {
	return typeString(ct.name, ct.kind(), ct.shape)
}

// WithStrict returns a twin descriptor whose construction surface panics
// instead of normalizing. See NumericType.WithStrict.
func (ct *GenericType[T]) WithStrict(strict bool) *GenericType[T] {
	return &GenericType[T]{typeSpec: ct.typeSpec.withStrict(strict)}
}

func (ct *GenericType[T]) alloc() *Generic[T] {
	return &Generic[T]{buffer: newBuffer[T](ct.shape), typ: ct}
}

// coerce is the generic family's write path: a plain type assertion. nil
// always maps to the element zero; other mismatches map to zero in lenient
// mode and panic in strict mode.
func (ct *GenericType[T]) coerce(value any) T {
	var zero T
	if value == nil {
		return zero
	}
	if v, ok := value.(T); ok {
		return v
	}
	if ct.strict {
		exceptions.Panicf("matrices: %s: element %T(%v) is not a %s",
			ct.name, value, value, ct.kind())
	}
	return zero
}

// New creates an instance from flat positional values. Missing trailing
// values stay zero, excess values are ignored (strict mode requires exactly
// Size values).
func (ct *GenericType[T]) New(values ...T) *Generic[T] {
	ct.checkNewCount(len(values))
	m := ct.alloc()
	m.fillFrom(values)
	return m
}

// FromValues creates an instance from an arbitrary Go value, traversed
// depth-first and clipped or zero-padded to Size. Scalars that are not T
// become the element zero (strict mode panics instead). See
// NumericType.FromValues.
func (ct *GenericType[T]) FromValues(value any) *Generic[T] {
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
func (ct *GenericType[T]) From(seq iter.Seq[T]) *Generic[T] {
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
func (ct *GenericType[T]) NewAny() any { return ct.New() }

// Generic is an instance of a GenericType.
type Generic[T any] struct {
	buffer[T]
	typ *GenericType[T]
}

// Type returns the instance's descriptor.
func (m *Generic[T]) Type() *GenericType[T] { return m.typ }

// Name of the instance's type.
func (m *Generic[T]) Name() string { return m.typ.Name() }

// Clone returns a copy sharing the descriptor. The copy is shallow
// element-wise: pointer-ish elements keep pointing at the same data.
func (m *Generic[T]) Clone() *Generic[T] {
	clone := m.typ.alloc()
	copy(clone.flat, m.flat)
	return clone
}

// Equal reports whether both instances have the same dimensions and deeply
// equal elements (reflect.DeepEqual, since opaque elements may not be
// comparable).
func (m *Generic[T]) Equal(other *Generic[T]) bool {
	if other == nil || !m.shape.Equal(other.shape) {
		return false
	}
	return reflect.DeepEqual(m.flat, other.flat)
}
