// Package breakpoint validates and orders a named set of viewport width
// thresholds.
//
// A breakpoint value is either a bare number, read as pixels, or a string
// whose leading floating point literal gives its magnitude and whose trailing
// text is kept verbatim as the CSS unit ("40rem", "768px", "30em").
package breakpoint

import (
	"math"
	"strconv"
)

// Value is the raw size of a breakpoint: a number or a unit-suffixed string.
type Value struct {
	num     float64
	str     string
	numeric bool
}

// Number returns a numeric value, rendered in pixels.
func Number(n float64) Value {
	return Value{num: n, numeric: true}
}

// String returns a string value. Its unit is whatever follows the leading
// number.
func String(s string) Value {
	return Value{str: s}
}

// IsNumber reports whether the value was given as a number.
func (v Value) IsNumber() bool {
	return v.numeric
}

// Magnitude returns the resolved magnitude and whether it is a finite number.
func (v Value) Magnitude() (float64, bool) {
	n := v.num
	if !v.numeric {
		n = ParseLeadingFloat(v.str)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n, false
	}
	return n, true
}

// CSS renders the value for a media query condition. Numbers get a px suffix,
// strings pass through unchanged.
func (v Value) CSS() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64) + "px"
	}
	return v.str
}

// String returns the value as it was written.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Raw returns the underlying float64 or string.
func (v Value) Raw() interface{} {
	if v.numeric {
		return v.num
	}
	return v.str
}

// Equal compares raw values: numbers with numbers and strings with strings.
// A number never equals a string, even when both resolve to the same
// magnitude.
func (v Value) Equal(other Value) bool {
	if v.numeric != other.numeric {
		return false
	}
	if v.numeric {
		return v.num == other.num
	}
	return v.str == other.str
}

// MarshalYAML keeps numbers as YAML numbers.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Raw(), nil
}

// MarshalJSON keeps numbers as JSON numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return []byte(strconv.FormatFloat(v.num, 'g', -1, 64)), nil
	}
	return []byte(strconv.Quote(v.str)), nil
}

// FromAny converts a decoded configuration value into a Value. Integers and
// floats become numbers, strings stay strings; anything else is rejected.
func FromAny(name string, raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case int:
		return Number(float64(v)), nil
	case int8:
		return Number(float64(v)), nil
	case int16:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint:
		return Number(float64(v)), nil
	case uint8:
		return Number(float64(v)), nil
	case uint16:
		return Number(float64(v)), nil
	case uint32:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case float32:
		return Number(float64(v)), nil
	case float64:
		return Number(v), nil
	default:
		return Value{}, &InvalidValueError{Name: name, Raw: raw}
	}
}
