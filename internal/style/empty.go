package style

import "strings"

// IsEmptyString reports whether s is empty or whitespace only.
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmptyValue reports whether an attribute or style value carries nothing
// worth emitting: nil, blank strings, false, and empty lists or maps.
// Numbers are never empty.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return IsEmptyString(val)
	case bool:
		return !val
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case map[string]string:
		return len(val) == 0
	case Declarations:
		return len(val) == 0
	}
	return false
}
