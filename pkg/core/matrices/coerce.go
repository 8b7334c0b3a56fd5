package matrices

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// floatToInt64 truncates a float toward zero with defined behavior on the
// edges, where Go's float-to-int conversion is not: NaN and ±Inf become 0,
// finite values beyond the int64 range saturate. The subsequent int64-to-T
// conversion wraps modulo the element width, matching how typed buffers
// store out-of-range integers.
func floatToInt64(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(f)
}

// scalarToFloat funnels any scalar the numeric family accepts into a float64:
// Go numbers of all widths, bools (0/1), the 16-bit float types (through
// their Float32 conversion), numeric strings, and named types of numeric or
// string kind. The second result is false when the value is not coercible
// (the write path then stores the element zero).
func scalarToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case float16.Float16:
		return float64(v.Float32()), true
	case bfloat16.BFloat16:
		return float64(v.Float32()), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	// Named types: resolve by kind. Float16/BFloat16 were already caught
	// above, so named Uint16 kinds here really are integers.
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.String:
		return scalarToFloat(rv.String())
	default:
		return 0, false
	}
}

// numericFromFloat converts the float64 arithmetic result to the element
// type: a plain conversion for float kinds, a guarded truncation for the
// integer kinds.
func numericFromFloat[T NumericConstraints](f float64) T {
	var t T
	switch any(t).(type) {
	case float32, float64:
		return T(f)
	}
	return T(floatToInt64(f))
}

// coerceNumeric is the numeric family's scalar write path: everything goes
// value -> float64 -> T, so integer kinds truncate toward zero and narrow
// kinds wrap, exactly like a typed-buffer store. Non-coercible values return
// (zero, false).
func coerceNumeric[T NumericConstraints](value any) (T, bool) {
	if v, ok := value.(T); ok {
		return v, true
	}
	f, ok := scalarToFloat(value)
	if !ok {
		var zero T
		return zero, false
	}
	return numericFromFloat[T](f), true
}

// coerceInteger is the 64-bit family's single conversion point: 64-bit
// integers pass through (signed and unsigned reinterpret modulo 2^64),
// narrower integers extend, floats truncate toward zero, bools map to 0/1
// and numeric strings parse. String parsing tries signed, then unsigned
// (full-range uint64 values), then float (fractional strings truncate);
// 0x/0o/0b prefixes are accepted. Non-coercible values return (zero, false).
func coerceInteger[T Integer64Constraints](value any) (T, bool) {
	switch v := value.(type) {
	case int64:
		return T(v), true
	case uint64:
		return T(v), true
	case int:
		return T(int64(v)), true
	case int8:
		return T(int64(v)), true
	case int16:
		return T(int64(v)), true
	case int32:
		return T(int64(v)), true
	case uint:
		return T(uint64(v)), true
	case uint8:
		return T(uint64(v)), true
	case uint16:
		return T(uint64(v)), true
	case uint32:
		return T(uint64(v)), true
	case float64:
		return T(floatToInt64(v)), true
	case float32:
		return T(floatToInt64(float64(v))), true
	case float16.Float16:
		return T(floatToInt64(float64(v.Float32()))), true
	case bfloat16.BFloat16:
		return T(floatToInt64(float64(v.Float32()))), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return T(i), true
		}
		if u, err := strconv.ParseUint(s, 0, 64); err == nil {
			return T(u), true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return T(floatToInt64(f)), true
		}
		var zero T
		return zero, false
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		var zero T
		return zero, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return T(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return T(floatToInt64(rv.Float())), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.String:
		return coerceInteger[T](rv.String())
	default:
		var zero T
		return zero, false
	}
}
