package matrices

import (
	"reflect"
	"testing"

	"github.com/gomlx/matrices/pkg/support/xslices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenToShape(t *testing.T) {
	// Exact flat input passes through.
	assert.Equal(t, []any{1, 2, 3, 4}, FlattenToShape([]int{1, 2, 3, 4}, []int{2, 2}, 0))

	// Nested input flattens depth-first, left to right; the nesting doesn't
	// have to match the dimensions.
	assert.Equal(t, []any{1, 2, 3, 4}, FlattenToShape([][]int{{1, 2}, {3, 4}}, []int{2, 2}, 0))
	assert.Equal(t, []any{1, 2, 3, 4}, FlattenToShape([][]int{{1, 2, 3, 4}}, []int{2, 2}, 0))
	assert.Equal(t, []any{1, 2, 3, 4},
		FlattenToShape([]any{1, []any{2, []any{3}}, 4}, []int{4}, 0))

	// Arrays are descended into like slices.
	assert.Equal(t, []any{1, 2, 3, 4}, FlattenToShape([2][2]int{{1, 2}, {3, 4}}, []int{4}, 0))

	// Short input is right-padded with pad, empty input is all pad.
	assert.Equal(t, []any{1, 2, 3, -1}, FlattenToShape([]int{1, 2, 3}, []int{2, 2}, -1))
	assert.Equal(t, xslices.SliceWithValue[any](4, -1), FlattenToShape([]int{}, []int{2, 2}, -1))

	// Excess input is dropped, including deeper in the nesting.
	assert.Equal(t, []any{1, 2}, FlattenToShape([]int{1, 2, 3, 4}, []int{2}, 0))
	assert.Equal(t, []any{1, 2}, FlattenToShape([][]int{{1, 2}, {3, 4}}, []int{2}, 0))

	// Scalars are one-element inputs; strings are scalars, not rune slices.
	assert.Equal(t, []any{7, 0}, FlattenToShape(7, []int{2}, 0))
	assert.Equal(t, []any{"ab", "cd", "", ""}, FlattenToShape([]string{"ab", "cd"}, []int{2, 2}, ""))
	assert.Equal(t, []any{"solo", "", "", ""}, FlattenToShape("solo", []int{4}, ""))

	// Untyped nil is a scalar slot; the families coerce it later.
	assert.Equal(t, []any{1, nil, 3, 0}, FlattenToShape([]any{1, nil, 3}, []int{4}, 0))
}

func TestFlattenToShapeSeq(t *testing.T) {
	// iter.Seq-shaped functions are descended into like slices.
	seq := func(yield func(int) bool) {
		for _, v := range []int{1, 2, 3} {
			if !yield(v) {
				return
			}
		}
	}
	assert.Equal(t, []any{1, 2, 3, 0}, FlattenToShape(seq, []int{2, 2}, 0))

	// Sequences nested inside slices work too.
	assert.Equal(t, []any{0, 1, 2, 3}, FlattenToShape([]any{0, seq}, []int{4}, 0))

	// Infinite sequences are stopped at the target size.
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	assert.Equal(t, []any{0, 1, 2, 3}, FlattenToShape(naturals, []int{2, 2}, 0))

	// Functions that don't look like iter.Seq are opaque scalars.
	notASeq := func() int { return 3 }
	flat := FlattenToShape(notASeq, []int{1}, 0)
	require.Len(t, flat, 1)
	assert.NotNil(t, flat[0])
}

func TestIsNestedValue(t *testing.T) {
	nested := func(value any) bool { return isNestedValue(reflect.ValueOf(value)) }

	assert.True(t, nested([]int{1}))
	assert.True(t, nested([2]string{}))
	assert.True(t, nested(func(yield func(int) bool) {}))
	assert.True(t, nested(func(yield func(string) bool) {}))

	// iter.Seq2 and other function shapes are opaque scalars.
	assert.False(t, nested(func(yield func(int, int) bool) {}))
	assert.False(t, nested(func(yield func(int) error) {}))
	assert.False(t, nested(func(values ...int) bool { return false }))
	assert.False(t, nested(func() {}))
	assert.False(t, nested(3))
	assert.False(t, nested("text"))
	assert.False(t, nested(map[string]int{}))
}
