package matrices

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/matrices/pkg/support/xslices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"
)

func TestNewNumericType(t *testing.T) {
	vec3 := NewNumericType[float32]("Vec3", 3)
	assert.Equal(t, "Vec3", vec3.Name())
	assert.Equal(t, []int{3}, vec3.Shape().Dimensions)
	assert.Equal(t, 3, vec3.Size())
	assert.Equal(t, 1, vec3.Rank())
	assert.Equal(t, dtypes.Float32, vec3.DType())
	assert.Equal(t, uintptr(3*4), vec3.Memory())
	assert.Equal(t, "Vec3: (Float32)[3]", vec3.String())

	cube := NewNumericType[int8]("Cube", 2, 3, 4)
	assert.Equal(t, 24, cube.Size())
	assert.Equal(t, []int{12, 4, 1}, cube.Strides())
	assert.Equal(t, uintptr(24), cube.Memory())

	// Same name and dimensions still make a distinct type.
	vec3b := NewNumericType[float32]("Vec3", 3)
	assert.NotEqual(t, vec3.ID(), vec3b.ID())

	require.Panics(t, func() { NewNumericType[float32]("NoDims") })
	require.Panics(t, func() { NewNumericType[float32]("ZeroDim", 2, 0) })
	require.Panics(t, func() { NewNumericType[float32]("NegativeDim", -1) })
}

func testNumericNewImpl[T NumericConstraints](t *testing.T) {
	mat2 := NewNumericType[T]("Mat2", 2, 2)

	// Exact count.
	m := mat2.New(1, 2, 3, 4)
	assert.Equal(t, []T{1, 2, 3, 4}, m.Flat())
	assert.Equal(t, T(1), m.At(0, 0))
	assert.Equal(t, T(2), m.At(0, 1))
	assert.Equal(t, T(3), m.At(1, 0))
	assert.Equal(t, T(4), m.At(1, 1))

	// Missing values pad with zeros, excess values are dropped.
	assert.Equal(t, []T{1, 2, 3, 0}, mat2.New(1, 2, 3).Flat())
	assert.Equal(t, []T{0, 0, 0, 0}, mat2.New().Flat())
	assert.Equal(t, []T{1, 2, 3, 4}, mat2.New(1, 2, 3, 4, 5, 6).Flat())

	// Set writes through the same coordinate mapping as At.
	m.Set(7, 1, 0)
	assert.Equal(t, T(7), m.At(1, 0))
	assert.Equal(t, 2, m.IndexOf(1, 0))
	assert.Equal(t, []T{1, 2, 7, 4}, m.Flat())

	// Flat is the live buffer, not a copy.
	m.Flat()[3] = 8
	assert.Equal(t, T(8), m.At(1, 1))

	// Out-of-range or wrong-arity coordinates panic.
	require.Panics(t, func() { m.At(2, 0) })
	require.Panics(t, func() { m.At(0, -1) })
	require.Panics(t, func() { m.At(0) })
	require.Panics(t, func() { m.Set(1, 0, 0, 0) })
}

func TestNumericNew(t *testing.T) {
	testNumericNewImpl[int8](t)
	testNumericNewImpl[int16](t)
	testNumericNewImpl[int32](t)

	testNumericNewImpl[uint8](t)
	testNumericNewImpl[uint16](t)
	testNumericNewImpl[uint32](t)

	testNumericNewImpl[float32](t)
	testNumericNewImpl[float64](t)
}

func testNumericFromValuesImpl[T NumericConstraints](t *testing.T) {
	mat2 := NewNumericType[T]("Mat2", 2, 2)

	// Flat input fills in row-major order.
	assert.Equal(t, []T{1, 2, 3, 4}, mat2.FromValues([]T{1, 2, 3, 4}).Flat())

	// Nested input flattens depth-first.
	assert.Equal(t, []T{1, 2, 3, 4}, mat2.FromValues([][]T{{1, 2}, {3, 4}}).Flat())

	// Short input zero-pads, long input is clipped.
	assert.Equal(t, []T{1, 2, 3, 0}, mat2.FromValues([]T{1, 2, 3}).Flat())
	assert.Equal(t, []T{0, 0, 0, 0}, mat2.FromValues([]T{}).Flat())
	assert.Equal(t, []T{1, 2, 3, 4}, mat2.FromValues([]T{1, 2, 3, 4, 5}).Flat())

	// A scalar is a one-element input.
	assert.Equal(t, []T{9, 0, 0, 0}, mat2.FromValues(T(9)).Flat())

	// Irregular nesting still flattens left to right.
	assert.Equal(t, []T{1, 2, 3, 4}, mat2.FromValues([]any{T(1), []T{2, 3}, T(4)}).Flat())

	// Value returns the nested mirror of the data; round-trip through
	// FromValues reproduces the instance.
	m := mat2.New(1, 2, 3, 4)
	nested, ok := m.Value().([][]T)
	require.True(t, ok)
	assert.Equal(t, [][]T{{1, 2}, {3, 4}}, nested)
	assert.True(t, m.Equal(mat2.FromValues(m.Value())))

	// The nested value is a copy, not a view.
	nested[1][1] = 99
	assert.Equal(t, T(4), m.At(1, 1))

	// Rank 1 returns a flat slice.
	vec3 := NewNumericType[T]("Vec3", 3)
	v := vec3.New(5, 6, 7)
	assert.Equal(t, []T{5, 6, 7}, v.Value())
}

func TestNumericFromValues(t *testing.T) {
	testNumericFromValuesImpl[int8](t)
	testNumericFromValuesImpl[int16](t)
	testNumericFromValuesImpl[int32](t)

	testNumericFromValuesImpl[uint8](t)
	testNumericFromValuesImpl[uint16](t)
	testNumericFromValuesImpl[uint32](t)

	testNumericFromValuesImpl[float32](t)
	testNumericFromValuesImpl[float64](t)
}

func TestNumericFromValuesCoercion(t *testing.T) {
	// Floats keep fractions, integer kinds truncate toward zero.
	vec4F := NewNumericType[float64]("Vec4", 4)
	f := vec4F.FromValues([]any{1, "2.5", true, int8(-3)})
	assert.Equal(t, []float64{1, 2.5, 1, -3}, f.Flat())

	vec4I := NewNumericType[int32]("Vec4", 4)
	i := vec4I.FromValues([]any{1, "2.5", true, -3.9})
	assert.Equal(t, []int32{1, 2, 1, -3}, i.Flat())

	// Non-coercible scalars quietly become zero in the default lenient mode.
	assert.Equal(t, []int32{0, 7, 0, 0},
		vec4I.FromValues([]any{"not a number", 7, nil, struct{}{}}).Flat())

	// Narrow integer kinds wrap like a typed-buffer store.
	vec2B := NewNumericType[uint8]("Vec2", 2)
	assert.Equal(t, []uint8{44, 255}, vec2B.FromValues([]any{300, -1}).Flat())

	// Half-precision scalars coerce through their float32 value.
	vec2H := NewNumericType[float64]("Vec2", 2)
	assert.Equal(t, []float64{1.5, -2},
		vec2H.FromValues([]any{float16.Fromfloat32(1.5), bfloat16.FromFloat32(-2)}).Flat())
}

func testNumericArithmeticImpl[T NumericConstraints](t *testing.T) {
	mat2 := NewNumericType[T]("Mat2", 2, 2)
	a := mat2.New(1, 2, 3, 4)
	b := mat2.New(5, 6, 7, 8)

	sum := a.Add(b)
	assert.Equal(t, []T{6, 8, 10, 12}, sum.Flat())
	assert.Equal(t, []T{4, 4, 4, 4}, b.Sub(a).Flat())

	// a + b - b == a.
	assert.True(t, a.Equal(sum.Sub(b)))

	// Operands are never mutated, results share the receiver's type.
	assert.Equal(t, []T{1, 2, 3, 4}, a.Flat())
	assert.Equal(t, []T{5, 6, 7, 8}, b.Flat())
	assert.Equal(t, a.Type().ID(), sum.Type().ID())

	// A smaller operand contributes zeros beyond its own size.
	small := NewNumericType[T]("Vec2", 2).New(10, 20)
	assert.Equal(t, []T{11, 22, 3, 4}, a.Add(small).Flat())

	assert.Equal(t, []T{2, 4, 6, 8}, a.Scale(2).Flat())
	assert.Equal(t, float64(1*5+2*6+3*7+4*8), a.Dot(b))
}

func TestNumericArithmetic(t *testing.T) {
	testNumericArithmeticImpl[int8](t)
	testNumericArithmeticImpl[int16](t)
	testNumericArithmeticImpl[int32](t)

	testNumericArithmeticImpl[uint8](t)
	testNumericArithmeticImpl[uint16](t)
	testNumericArithmeticImpl[uint32](t)

	testNumericArithmeticImpl[float32](t)
	testNumericArithmeticImpl[float64](t)
}

func TestNumericScaleTruncation(t *testing.T) {
	// Integer kinds truncate the float64 product toward zero.
	vec3 := NewNumericType[int32]("Vec3", 3)
	assert.Equal(t, []int32{1, 3, 4}, vec3.New(1, 2, 3).Scale(1.5).Flat())
	assert.Equal(t, []int32{0, -1, -1}, vec3.New(1, 2, 3).Scale(-0.5).Flat())

	// Floats keep the fraction.
	vec3F := NewNumericType[float32]("Vec3", 3)
	assert.Equal(t, []float32{0.5, 1, 1.5}, vec3F.New(1, 2, 3).Scale(0.5).Flat())
}

func TestNumericMagnitudeAndNormalized(t *testing.T) {
	vec2 := NewNumericType[float64]("Vec2", 2)
	v := vec2.New(3, 4)
	assert.Equal(t, 5.0, v.Magnitude())

	n := v.Normalized()
	assert.InDelta(t, 0.6, n.At(0), 1e-9)
	assert.InDelta(t, 0.8, n.At(1), 1e-9)
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-9)
	assert.Equal(t, []float64{3, 4}, v.Flat())

	// The zero instance normalizes to itself, never NaN.
	zero := vec2.New()
	assert.Equal(t, []float64{0, 0}, zero.Normalized().Flat())

	// Magnitude also works on integer kinds, accumulated in float64.
	vec2I := NewNumericType[int32]("Vec2", 2)
	assert.Equal(t, 5.0, vec2I.New(3, 4).Magnitude())
}

func testNumericMatMulImpl[T NumericConstraints](t *testing.T) {
	mat2 := NewNumericType[T]("Mat2", 2, 2)
	a := mat2.New(1, 2, 3, 4)
	b := mat2.New(5, 6, 7, 8)

	c := a.MatMul(b)
	assert.Equal(t, []T{19, 22, 43, 50}, c.Flat())
	assert.Equal(t, []int{2, 2}, c.Shape().Dimensions)

	// Non-square: [3, 2] x [2, 3] -> [3, 3].
	lhs := NewNumericType[T]("Lhs", 3, 2).New(1, 2, 3, 4, 5, 6)
	rhs := NewNumericType[T]("Rhs", 2, 3).New(7, 8, 9, 10, 11, 12)
	product := lhs.MatMul(rhs)
	assert.Equal(t, []int{3, 3}, product.Shape().Dimensions)
	assert.Equal(t, []T{27, 30, 33, 61, 68, 75, 95, 106, 117}, product.Flat())

	// The result's type is synthesized on the fly.
	assert.Equal(t, "MatMul(Lhs, Rhs)", product.Name())
	assert.NotEqual(t, lhs.Type().ID(), product.Type().ID())
}

func TestNumericMatMul(t *testing.T) {
	testNumericMatMulImpl[int8](t)
	testNumericMatMulImpl[int16](t)
	testNumericMatMulImpl[int32](t)

	testNumericMatMulImpl[uint8](t)
	testNumericMatMulImpl[uint16](t)
	testNumericMatMulImpl[uint32](t)

	testNumericMatMulImpl[float32](t)
	testNumericMatMulImpl[float64](t)
}

func TestNumericMatMulShapeErrors(t *testing.T) {
	mat2 := NewNumericType[float32]("Mat2", 2, 2)
	a := mat2.New(1, 2, 3, 4)

	// Inner dimensions must agree: [2, 2] x [3, 2] fails.
	tall := NewNumericType[float32]("Tall", 3, 2).New(1, 2, 3, 4, 5, 6)
	err := exceptions.TryCatch[error](func() { _ = a.MatMul(tall) })
	require.Error(t, err)
	fmt.Printf("\tMatMul error: %v\n", err)
	assert.Contains(t, err.Error(), "incompatible shapes")
	assert.Contains(t, err.Error(), "2 columns vs 3 rows")

	// Both operands must be rank 2.
	vec4 := NewNumericType[float32]("Vec4", 4).New(1, 2, 3, 4)
	err = exceptions.TryCatch[error](func() { _ = vec4.MatMul(a) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rank-2")
	require.Panics(t, func() { _ = a.MatMul(vec4) })

	cube := NewNumericType[float32]("Cube", 2, 2, 2).New()
	require.Panics(t, func() { _ = cube.MatMul(a) })
}

func TestNumericMatMulAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 17))
	const rows, inner, cols = 5, 4, 6

	aT := NewNumericType[float64]("A", rows, inner)
	bT := NewNumericType[float64]("B", inner, cols)
	a, b := aT.New(), bT.New()
	for i := range a.Flat() {
		a.Flat()[i] = rng.Float64()
	}
	for i := range b.Flat() {
		b.Flat()[i] = rng.Float64()
	}

	got := a.MatMul(b)
	var product mat.Dense
	product.Mul(
		mat.NewDense(rows, inner, slices.Clone(a.Flat())),
		mat.NewDense(inner, cols, slices.Clone(b.Flat())))

	want := make([][]float64, rows)
	for i := range want {
		want[i] = mat.Row(nil, i, &product)
	}
	require.Truef(t, xslices.SlicesInDelta(got.Value(), want, 1e-12),
		"MatMul disagrees with gonum: got %v, want %v", got.Value(), want)
}

func TestNumericFrom(t *testing.T) {
	mat2 := NewNumericType[float32]("Mat2", 2, 2)

	assert.Equal(t, []float32{1, 2, 3, 4}, mat2.From(slices.Values([]float32{1, 2, 3, 4})).Flat())

	// Short sequences pad, long ones are clipped.
	assert.Equal(t, []float32{1, 2, 0, 0}, mat2.From(slices.Values([]float32{1, 2})).Flat())
	assert.Equal(t, []float32{1, 2, 3, 4}, mat2.From(slices.Values([]float32{1, 2, 3, 4, 5, 6})).Flat())

	// Infinite sequences are only consumed up to Size.
	naturals := func(yield func(float32) bool) {
		for i := 0; ; i++ {
			if !yield(float32(i)) {
				return
			}
		}
	}
	assert.Equal(t, []float32{0, 1, 2, 3}, mat2.From(naturals).Flat())
}

func TestNumericStrict(t *testing.T) {
	mat2 := NewNumericType[int32]("Mat2", 2, 2)
	strict := mat2.WithStrict(true)
	assert.False(t, mat2.IsStrict())
	assert.True(t, strict.IsStrict())
	assert.NotEqual(t, mat2.ID(), strict.ID())
	assert.True(t, strict.Shape().Equal(mat2.Shape()))

	// New requires exactly Size values.
	assert.Equal(t, []int32{1, 2, 3, 4}, strict.New(1, 2, 3, 4).Flat())
	require.Panics(t, func() { strict.New(1, 2, 3) })
	require.Panics(t, func() { strict.New(1, 2, 3, 4, 5) })

	// FromValues requires an exactly-shaped nested input or an exact flat
	// slice, and every scalar must coerce.
	assert.Equal(t, []int32{1, 2, 3, 4}, strict.FromValues([][]int{{1, 2}, {3, 4}}).Flat())
	assert.Equal(t, []int32{1, 2, 3, 4}, strict.FromValues([]int{1, 2, 3, 4}).Flat())
	require.Panics(t, func() { strict.FromValues([]int{1, 2, 3}) })
	require.Panics(t, func() { strict.FromValues([][]int{{1, 2, 3}, {4, 5, 6}}) })
	require.Panics(t, func() { strict.FromValues([]any{[]any{1, 2}, []any{3}}) })

	err := exceptions.TryCatch[error](func() { strict.FromValues([]any{1, 2, 3, "oops"}) })
	require.Error(t, err)
	fmt.Printf("\tstrict coercion error: %v\n", err)
	assert.Contains(t, err.Error(), "cannot coerce")

	// From requires the sequence to yield exactly Size elements.
	assert.Equal(t, []int32{1, 2, 3, 4}, strict.From(slices.Values([]int32{1, 2, 3, 4})).Flat())
	require.Panics(t, func() { strict.From(slices.Values([]int32{1, 2})) })
	require.Panics(t, func() { strict.From(slices.Values([]int32{1, 2, 3, 4, 5})) })

	// The lenient behavior is recoverable through another twin.
	lenient := strict.WithStrict(false)
	assert.Equal(t, []int32{1, 2, 3, 0}, lenient.New(1, 2, 3).Flat())

	// The original descriptor is untouched.
	assert.Equal(t, []int32{1, 2, 3, 0}, mat2.New(1, 2, 3).Flat())
}

func TestNumericValue(t *testing.T) {
	vec3 := NewNumericType[float32]("Vec3", 3)
	vec := vec3.New(1, 2, 3)
	v, ok := vec.Value().([]float32)
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, v)

	mat2 := NewNumericType[int16]("Mat2", 2, 2)
	m := mat2.New(1, 2, 3, 4)
	nested, ok := m.Value().([][]int16)
	require.True(t, ok)
	assert.Equal(t, [][]int16{{1, 2}, {3, 4}}, nested)

	// Unlike Flat, Value is a copy: writes to it never reach the instance.
	v[0] = 99
	nested[1][1] = 99
	assert.Equal(t, []float32{1, 2, 3}, vec.Flat())
	assert.Equal(t, []int16{1, 2, 3, 4}, m.Flat())
}

func TestNumericEqualAndClone(t *testing.T) {
	mat2 := NewNumericType[float32]("Mat2", 2, 2)
	a := mat2.New(1, 2, 3, 4)

	// Equality is structural: same dimensions and elements, the descriptors
	// may differ.
	other := NewNumericType[float32]("Other", 2, 2)
	assert.True(t, a.Equal(other.New(1, 2, 3, 4)))
	assert.False(t, a.Equal(other.New(1, 2, 3, 5)))
	assert.False(t, a.Equal(NewNumericType[float32]("Vec4", 4).New(1, 2, 3, 4)))
	assert.False(t, a.Equal(nil))

	clone := a.Clone()
	assert.True(t, a.Equal(clone))
	assert.Equal(t, a.Type().ID(), clone.Type().ID())
	clone.Set(99, 0, 0)
	assert.Equal(t, float32(1), a.At(0, 0))
}

func TestNumericIndexing(t *testing.T) {
	cube := NewNumericType[int16]("Cube", 2, 3, 2)
	m := cube.New()
	for i := range m.Flat() {
		m.Flat()[i] = int16(i)
	}

	// At agrees with the flat buffer through IndexOf for every coordinate,
	// and Iter enumerates flat positions in order.
	next := 0
	for flatIdx, coords := range cube.Shape().Iter() {
		assert.Equal(t, next, flatIdx)
		assert.Equal(t, flatIdx, m.IndexOf(coords...))
		assert.Equal(t, m.Flat()[flatIdx], m.At(coords...))
		next++
	}
	assert.Equal(t, cube.Size(), next)
}
