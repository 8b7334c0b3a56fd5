package matrices

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/gomlx/matrices/pkg/support/xslices"
)

// MatrixStringDefaultPrecision is the float precision used by the String
// methods.
const MatrixStringDefaultPrecision = 4

// elementTypeName returns the Go name of T, with the empty interface spelled
// "any".
func elementTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
		return "any"
	}
	return t.String()
}

// summarize renders a flat buffer as a numpy-inspired nested listing,
// prefixed by the Go type ("[2][3]float32{...}"). Axes longer than 6 are
// elided with "...".
func summarize[T any](flat []T, dims []int, precision int) string {
	var buf bytes.Buffer
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&buf, format, args...) }

	// Print one element with appropriate formatting.
	wValue := func(value T) {
		switch v := any(value).(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			w("%d", v)
		case float32, float64:
			w("%.*g", precision, v)
		case bool:
			w("%v", v)
		default:
			w("%v", v)
		}
	}

	for _, dim := range dims {
		w("[%d]", dim)
	}
	w("%s", elementTypeName[T]())

	// Recursive function to print elements.
	var printElements func(index, indent int, currentShape []int)
	printElements = func(index, indent int, currentShape []int) {
		if len(currentShape) == 1 {
			// One row of data:
			w("{")
			if currentShape[0] > 6 {
				// Apply ellipsis for long rows.
				for i := 0; i < 3; i++ {
					if i > 0 {
						w(", ")
					}
					wValue(flat[index+i])
				}
				w(", ..., ")
				for i := currentShape[0] - 3; i < currentShape[0]; i++ {
					if i > currentShape[0]-3 {
						w(", ")
					}
					wValue(flat[index+i])
				}
			} else {
				// Print full row:
				for i := 0; i < currentShape[0]; i++ {
					if i > 0 {
						w(", ")
					}
					wValue(flat[index+i])
				}
			}
			w("}")
			return
		}

		// Outer axes:
		numRows := 1
		for _, dim := range currentShape[:len(currentShape)-1] {
			numRows *= dim
		}
		stride := 1
		for _, dim := range currentShape[1:] {
			stride *= dim
		}

		w("{")
		if indent == -1 {
			if numRows > 1 {
				// Break the line before outputting data if we are using more than one row.
				w("\n ")
			}
			indent = 1
		}
		indentStr := strings.Repeat(" ", indent)

		if numRows > 6 {
			if len(currentShape) > 2 {
				// Only print first and last element of this outer dimension.
				printElements(index, indent+1, currentShape[1:])
				if currentShape[0] > 1 {
					if currentShape[0] > 2 {
						w(",\n%s...,\n%s", indentStr, indentStr)
					} else {
						w(",\n%s", indentStr)
					}
					printElements(index+(currentShape[0]-1)*stride, indent+1, currentShape[1:])
				}
				w("}")
				return
			}

			// This is the one-before-last dimension: first 3 and last 3 rows.
			firstNRows := min(3, currentShape[0])
			var lastNRows int
			if currentShape[0] <= 6 {
				firstNRows = currentShape[0]
			} else {
				lastNRows = 3
			}
			for ii := 0; ii < firstNRows; ii++ {
				if ii > 0 {
					w(",\n%s", indentStr)
				}
				printElements(index+ii*stride, indent+1, currentShape[1:])
			}
			if lastNRows > 0 {
				w(",\n%s...", indentStr)
				for ii := currentShape[0] - lastNRows; ii < currentShape[0]; ii++ {
					w(",\n%s", indentStr)
					printElements(index+ii*stride, indent+1, currentShape[1:])
				}
			}
			w("}")
			return
		}

		// Print all rows of the outer axis:
		for ii := range currentShape[0] {
			if ii > 0 {
				w(",\n%s", indentStr)
			}
			printElements(index, indent+1, currentShape[1:])
			index += stride
		}
		w("}")
	}
	printElements(0, -1, dims)
	return buf.String()
}

// Summary returns a multi-line rendering of the instance's content, numpy
// inspired. Floats print with the given precision.
func (m *Numeric[T]) Summary(precision int) string {
	return summarize(m.flat, m.shape.Dimensions, precision)
}

// String implements fmt.Stringer: the type name followed by the content
// summary at the default precision.
func (m *Numeric[T]) String() string {
	return fmt.Sprintf("%s: %s", m.Name(), m.Summary(MatrixStringDefaultPrecision))
}

// GoStr converts to string using a Go-syntax representation of Value() that
// can be copied&pasted back to code.
func (m *Numeric[T]) GoStr() string {
	return fmt.Sprintf("%s: %s", m.shape, xslices.SliceToGoStr(m.Value()))
}

// Summary returns a multi-line rendering of the instance's content, numpy
// inspired.
func (m *Integer[T]) Summary(precision int) string {
	return summarize(m.flat, m.shape.Dimensions, precision)
}

// String implements fmt.Stringer: the type name followed by the content
// summary.
func (m *Integer[T]) String() string {
	return fmt.Sprintf("%s: %s", m.Name(), m.Summary(MatrixStringDefaultPrecision))
}

// GoStr converts to string using a Go-syntax representation of Value().
func (m *Integer[T]) GoStr() string {
	return fmt.Sprintf("%s: %s", m.shape, xslices.SliceToGoStr(m.Value()))
}

// Summary returns a multi-line rendering of the instance's content. Opaque
// elements print with %v.
func (m *Generic[T]) Summary(precision int) string {
	return summarize(m.flat, m.shape.Dimensions, precision)
}

// String implements fmt.Stringer: the type name followed by the content
// summary.
func (m *Generic[T]) String() string {
	return fmt.Sprintf("%s: %s", m.Name(), m.Summary(MatrixStringDefaultPrecision))
}

// GoStr converts to string using a Go-syntax representation of Value().
func (m *Generic[T]) GoStr() string {
	return fmt.Sprintf("%s: %s", m.shape, xslices.SliceToGoStr(m.Value()))
}
