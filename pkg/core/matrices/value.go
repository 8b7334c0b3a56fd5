package matrices

import (
	"reflect"

	"github.com/gomlx/matrices/pkg/support/xslices"
)

// Value returns a freshly built nested Go slice ([]T, [][]T, ...) mirroring
// the instance's dimensions, with a copy of the data: mutating the result
// never touches the instance.
//
// Rank-1 instances return a flat []T. For higher ranks the innermost rows
// all alias one backing copy, so the result costs one data copy plus the
// spine slices.
func (b *buffer[T]) Value() any {
	flatCopy := xslices.Copy(b.flat)
	if b.Rank() <= 1 {
		return flatCopy
	}
	return nestedFromFlat(reflect.ValueOf(flatCopy), b.shape.Dimensions).Interface()
}

// nestedFromFlat wraps an already-copied flat slice into nested slices
// following dims. The leaf rows are sub-slices of flatV, no per-element
// copying happens here.
func nestedFromFlat(flatV reflect.Value, dims []int) reflect.Value {
	resultT := flatV.Type().Elem()
	for range dims {
		resultT = reflect.SliceOf(resultT)
	}
	strides := make([]int, len(dims))
	currentStride := 1
	for axis := len(dims) - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= dims[axis]
	}
	return buildSlicesRecursively(resultT, flatV, dims, strides)
}

// buildSlicesRecursively builds one nesting level per call: the last level is
// the data itself, outer levels are spine slices of sub-slices.
func buildSlicesRecursively(resultT reflect.Type, data reflect.Value, dims, strides []int) reflect.Value {
	if len(strides) == 1 {
		return data
	}
	numRows := dims[0]
	slice := reflect.MakeSlice(resultT, numRows, numRows)
	for ii := 0; ii < numRows; ii++ {
		start := ii * strides[0]
		subData := data.Slice(start, start+strides[0])
		slice.Index(ii).Set(buildSlicesRecursively(resultT.Elem(), subData, dims[1:], strides[1:]))
	}
	return slice
}
