// Package shapes defines Shape, the ordered list of dimension extents shared
// by every matrix type, and its stride, indexing and iteration arithmetic.
//
// A Shape is immutable after creation and is class-level data: all instances of
// a matrix type share the same Shape value. The flat storage convention is
// row-major everywhere, so strides are derived, never stored per instance.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a shape.
//   - Axis: the index of a dimension. We refer to a dimension index as "axis"
//     (plural axes), and its size as its dimension.
//   - Stride: number of flat slots skipped when incrementing one coordinate of
//     the corresponding axis by one.
//   - Scalar: a shape with no axes; it still holds a single value (size 1).
//
// Example: `[][]int32{{0, 1, 2}, {3, 4, 5}}` has shape `[2 3]`: rank 2, axis 0
// has dimension 2 and axis 1 has dimension 3. Created with `shapes.Make(2, 3)`.
package shapes

import (
	"encoding/gob"
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Shape holds the dimensions of a matrix type.
//
// Use Make to create one: it validates that every dimension is positive.
// The Dimensions slice is owned by the Shape and must not be mutated.
type Shape struct {
	Dimensions []int
}

// Make returns a Shape with the given dimensions.
//
// It panics if any dimension is smaller than 1. No dimensions at all is a
// valid scalar shape for this package; the matrix type factories impose their
// own minimum-rank requirement.
func Make(dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 1 {
			exceptions.Panicf("shapes.Make(%v): dimensions must be >= 1", dimensions)
		}
	}
	return s
}

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape has no axes (rank 0).
func (s Shape) IsScalar() bool { return s.Rank() == 0 }

// Size returns the number of elements a flat buffer of this shape holds:
// the product of all dimensions, or 1 for a scalar shape.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Dim returns the dimension of the given axis. axis can take negative values,
// in which case it counts from the end -- so axis=-1 refers to the last axis.
// It panics for an out-of-bounds axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Index translates coordinates, one per axis, to the flat row-major offset.
//
// It panics if the number of coordinates differs from the rank, or if any
// coordinate falls outside [0, dimension) of its axis -- the message names the
// offending axis. Valid coordinates map bijectively onto [0, Size()).
func (s Shape) Index(coords ...int) int {
	if len(coords) != s.Rank() {
		exceptions.Panicf("Shape.Index: shape %s requires %d coordinates, got %d (%v)",
			s, s.Rank(), len(coords), coords)
	}
	offset := 0
	stride := 1
	for axis := s.Rank() - 1; axis >= 0; axis-- {
		coord := coords[axis]
		if coord < 0 || coord >= s.Dimensions[axis] {
			exceptions.Panicf("Shape.Index: coordinate %d out of range [0, %d) for axis %d of shape %s",
				coord, s.Dimensions[axis], axis, s)
		}
		offset += coord * stride
		stride *= s.Dimensions[axis]
	}
	return offset
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// HasShape is satisfied by anything with an associated Shape: matrix types,
// their instances and Shape itself.
type HasShape interface {
	Shape() Shape
}

// String implements fmt.Stringer, printing the dimensions as "[2 3]".
func (s Shape) String() string {
	return fmt.Sprintf("%v", s.Dimensions)
}

// Equal compares the dimensions of two shapes.
func (s Shape) Equal(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{Dimensions: slices.Clone(s.Dimensions)}
}

// CheckDims verifies that the shape has the given dimensions. A -1 value in
// dimensions means it can take any value. It returns an error otherwise.
func (s Shape) CheckDims(dimensions ...int) error {
	if len(dimensions) != s.Rank() {
		return errors.Errorf("shape %s has rank %d, wanted rank %d (%v)", s, s.Rank(), len(dimensions), dimensions)
	}
	for axis, dim := range dimensions {
		if dim != -1 && s.Dimensions[axis] != dim {
			return errors.Errorf("shape %s axis %d has dimension %d, wanted %d", s, axis, s.Dimensions[axis], dim)
		}
	}
	return nil
}

// AssertDims panics if the shape does not have the given dimensions (-1
// meaning any value is accepted). See CheckDims.
func (s Shape) AssertDims(dimensions ...int) {
	if err := s.CheckDims(dimensions...); err != nil {
		panic(err)
	}
}

// GobSerialize the shape in binary format.
func (s Shape) GobSerialize(encoder *gob.Encoder) (err error) {
	err = encoder.Encode(s.Dimensions)
	if err != nil {
		err = errors.Wrapf(err, "failed to serialize Shape %s", s)
	}
	return
}

// GobDeserialize a Shape. Returns the new Shape or an error.
func GobDeserialize(decoder *gob.Decoder) (s Shape, err error) {
	err = decoder.Decode(&s.Dimensions)
	if err != nil {
		err = errors.Wrapf(err, "failed to deserialize Shape")
		return
	}
	for _, dim := range s.Dimensions {
		if dim < 1 {
			err = errors.Errorf("deserialized invalid Shape %s: dimensions must be >= 1", s)
			return
		}
	}
	return
}
