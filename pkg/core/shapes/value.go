package shapes

import (
	"reflect"

	"github.com/pkg/errors"
)

// FromAnyValue infers the Shape of a nested Go slice (or array) by walking it
// with reflection: each nesting level contributes one axis, anything that is
// not a slice or array (strings included) counts as a scalar leaf.
//
// It returns an error if any level is empty or if sub-slices have irregular
// ("ragged") dimensions. Interface elements (as in []any{...}) are unwrapped,
// so mixed but regular nestings like []any{[]any{1, 2}, []any{3, 4}} work.
//
// A plain scalar infers the scalar shape (rank 0).
func FromAnyValue(value any) (Shape, error) {
	var shape Shape
	if err := shapeForValueRecursive(&shape, reflect.ValueOf(value)); err != nil {
		return Shape{}, err
	}
	return shape, nil
}

func shapeForValueRecursive(shape *Shape, v reflect.Value) error {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		// Scalar leaf (including invalid values like an untyped nil).
		return nil
	}
	if v.Len() == 0 {
		return errors.Errorf("cannot infer a shape from an empty slice: dimensions must be >= 1")
	}
	shape.Dimensions = append(shape.Dimensions, v.Len())
	prefix := shape.Clone()

	// The first element is the reference for the remaining axes.
	if err := shapeForValueRecursive(shape, v.Index(0)); err != nil {
		return err
	}

	// Every other element must match the shape of the first one.
	for ii := 1; ii < v.Len(); ii++ {
		shapeTest := prefix.Clone()
		if err := shapeForValueRecursive(&shapeTest, v.Index(ii)); err != nil {
			return err
		}
		if !shape.Equal(shapeTest) {
			return errors.Errorf("sub-slices have irregular shapes, found %s and %s", *shape, shapeTest)
		}
	}
	return nil
}
