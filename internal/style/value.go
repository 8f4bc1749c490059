package style

import (
	"encoding/json"
	"strconv"
)

// lineHeight is the only property whose numeric values stay unitless.
const lineHeight = "line-height"

// NormalizeValue converts a style value to its CSS text for the hyphenated
// property cssName. Strings pass through unchanged. Numbers get an "mm"
// suffix, except for line-height. Nil and non-scalar values report ok=false
// and the property must be dropped.
func NormalizeValue(cssName string, v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}

	n, ok := FormatNumber(v)
	if !ok {
		return "", false
	}
	if cssName == lineHeight {
		return n, true
	}
	return n + "mm", true
}

// Scalar renders a string or number as text. Any other value reports ok=false.
func Scalar(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	return FormatNumber(v)
}

// FormatNumber formats any Go numeric value in its shortest form
// ("10", "1.5", "-3"). Non-numeric values report ok=false.
func FormatNumber(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case json.Number:
		return n.String(), true
	}
	return "", false
}
