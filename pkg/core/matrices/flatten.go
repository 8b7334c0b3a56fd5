package matrices

import (
	"reflect"

	"k8s.io/klog/v2"
)

// FlattenToShape collects scalars out of an arbitrarily nested value, depth
// first and left to right, into exactly product(dims) slots.
//
// It is the lenient front door of FromValues: collection stops as soon as
// enough scalars were gathered (excess input is ignored, never an error) and
// the result is right-padded with pad when the input runs short.
//
// What counts as a nested value (vs. a scalar leaf) is decided by
// isNestedValue: slices, arrays and iter.Seq-shaped function values are
// descended into; everything else, strings included, is a scalar. The
// predicate is a heuristic: no rank or regularity validation happens here,
// so [4]-shaped input fills a 2x2 type just as well as [2][2] input.
func FlattenToShape(value any, dims []int, pad any) []any {
	size := 1
	for _, dim := range dims {
		size *= dim
	}
	out := make([]any, 0, size)
	out, truncated := appendFlattened(out, reflect.ValueOf(value), size)
	if truncated && klog.V(2).Enabled() {
		klog.Infof("matrices: FlattenToShape dropped input beyond %d slots of shape %v", size, dims)
	}
	if shortfall := size - len(out); shortfall > 0 {
		if klog.V(2).Enabled() {
			klog.Infof("matrices: FlattenToShape padded %d of %d slots of shape %v", shortfall, size, dims)
		}
		for len(out) < size {
			out = append(out, pad)
		}
	}
	return out
}

// isNestedValue decides whether v is descended into (a node) or collected as
// a scalar (a leaf) by FlattenToShape. Nodes are slices, arrays and function
// values shaped like iter.Seq (func(yield func(E) bool)). Strings are leaves:
// they are not slices under reflection, so a matrix of strings never gets
// split into characters.
func isNestedValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Func:
		return isSeqFunc(v.Type())
	default:
		return false
	}
}

// isSeqFunc reports whether t has the iter.Seq shape: func(yield func(E) bool).
// iter.Seq2 (two-argument yield) is not accepted, there is no natural order
// to flatten its pairs in.
func isSeqFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.IsVariadic() || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func && !yield.IsVariadic() &&
		yield.NumIn() == 1 && yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}

// appendFlattened descends v depth-first appending scalar leaves to out, up
// to the need cap. It reports whether any leaf was dropped because the cap
// was already reached (used for trace logging only).
func appendFlattened(out []any, v reflect.Value, need int) ([]any, bool) {
	// Unwrap interface boxes (elements of []any nestings).
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		// Untyped nil input: a scalar leaf, the families coerce it to zero.
		if len(out) >= need {
			return out, true
		}
		return append(out, nil), false
	}

	if !isNestedValue(v) {
		if len(out) >= need {
			return out, true
		}
		return append(out, v.Interface()), false
	}

	truncated := false
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if len(out) >= need {
				return out, i < v.Len() // Anything left at this level was dropped.
			}
			var t bool
			out, t = appendFlattened(out, v.Index(i), need)
			truncated = truncated || t
		}
	case reflect.Func:
		// Materialize at most the remaining capacity plus one element, the
		// extra one only to notice (and report) that the sequence had more.
		elements := seqElements(v, need-len(out)+1)
		for _, element := range elements {
			if len(out) >= need {
				return out, true
			}
			var t bool
			out, t = appendFlattened(out, element, need)
			truncated = truncated || t
		}
	}
	return out, truncated
}

// seqElements ranges over an iter.Seq-shaped function value through
// reflection, collecting at most limit elements before asking the sequence to
// stop. It never ranges further than limit, so infinite sequences are fine.
func seqElements(v reflect.Value, limit int) []reflect.Value {
	if limit <= 0 {
		return nil
	}
	yieldT := v.Type().In(0)
	var collected []reflect.Value
	yield := reflect.MakeFunc(yieldT, func(args []reflect.Value) []reflect.Value {
		collected = append(collected, args[0])
		keepGoing := reflect.ValueOf(len(collected) < limit).Convert(yieldT.Out(0))
		return []reflect.Value{keepGoing}
	})
	v.Call([]reflect.Value{yield})
	return collected
}
