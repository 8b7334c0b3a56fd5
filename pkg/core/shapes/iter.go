package shapes

import (
	"iter"

	"github.com/pkg/errors"
)

// Strides returns the strides for each axis of the shape, assuming the
// row-major layout used everywhere in this library: the stride of the last
// axis is 1, and each preceding axis multiplies by the dimension after it.
//
// Notice the strides are **not in bytes**, but in element counts.
func (s Shape) Strides() (strides []int) {
	rank := s.Rank()
	if rank == 0 {
		return
	}
	strides = make([]int, rank)
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= s.Dimensions[axis]
	}
	return
}

// Iter iterates sequentially over all coordinates of the shape, in the same
// row-major order the flat buffer is laid out: it yields the flat index and
// the coordinates for each axis, so `shape.Index(coords...) == flatIdx` holds
// at every step.
//
// To avoid allocating a slice per step, the yielded coordinates slice is owned
// by the iterator: don't modify or retain it inside the loop.
func (s Shape) Iter() iter.Seq2[int, []int] {
	coords := make([]int, s.Rank())
	return s.IterOn(coords)
}

// IterOn is like Iter, but updates the coordinates on the given slice instead
// of allocating one. It expects len(coords) == s.Rank() and panics otherwise.
func (s Shape) IterOn(coords []int) iter.Seq2[int, []int] {
	if len(coords) != s.Rank() {
		panic(errors.Errorf("Shape.IterOn given len(coords) == %d, want it to be equal to the rank %d", len(coords), s.Rank()))
	}
	return func(yield func(int, []int) bool) {
		rank := s.Rank()
		for i := range coords {
			coords[i] = 0
		}
		if rank == 0 {
			// Valid scalar: yield one empty coordinates slice.
			_ = yield(0, coords)
			return
		}

		// This structure simulates an N-dimensional counter over the
		// coordinates, the last axis changing fastest.
		flatIdx := 0
	yielder:
		for {
			if !yield(flatIdx, coords) {
				return // Consumer requested to stop the iteration.
			}
			flatIdx++
			for axis := rank - 1; axis >= 0; axis-- {
				coords[axis]++
				if coords[axis] < s.Dimensions[axis] {
					// Incremented this axis with no carry-over needed.
					continue yielder
				}
				// The current axis overflowed; reset it to 0 and carry over to
				// the next higher-order axis.
				coords[axis] = 0
			}
			// The first axis also overflowed: iteration is complete.
			break
		}
	}
}
