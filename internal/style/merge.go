package style

import (
	"fmt"
	"slices"
	"strings"
)

// Merge folds style inputs into one Declarations set, left to right.
//
// Accepted inputs are declaration strings, property maps (Declarations,
// map[string]any, map[string]string) and lists of any accepted input,
// nested to any depth. Lists are expanded in order. Nil, empty and
// unsupported inputs are ignored. A later input overwrites a property set by
// an earlier one; property names are canonicalized to camelCase so
// "font-size" and "fontSize" collide as expected.
func Merge(inputs ...any) Declarations {
	merged := Declarations{}
	for _, in := range inputs {
		mergeInto(merged, in)
	}
	return merged
}

func mergeInto(dst Declarations, in any) {
	if IsEmptyValue(in) {
		return
	}

	switch v := in.(type) {
	case string:
		assign(dst, ParseDeclarations(v))
	case Declarations:
		assign(dst, v)
	case map[string]any:
		assign(dst, v)
	case map[string]string:
		for _, name := range sortedKeys(v) {
			dst[canonicalName(name)] = v[name]
		}
	case map[any]any:
		for name, value := range v {
			dst[canonicalName(fmt.Sprint(name))] = value
		}
	case []any:
		for _, item := range v {
			mergeInto(dst, item)
		}
	case []string:
		for _, item := range v {
			mergeInto(dst, item)
		}
	case []map[string]any:
		for _, item := range v {
			mergeInto(dst, item)
		}
	case []Declarations:
		for _, item := range v {
			mergeInto(dst, item)
		}
	}
}

func assign[M ~map[string]any](dst Declarations, src M) {
	for _, name := range sortedKeys(src) {
		dst[canonicalName(name)] = src[name]
	}
}

// Compile merges the inputs and serializes the result as inline CSS.
func Compile(inputs ...any) string {
	return Serialize(Merge(inputs...))
}

// Serialize renders declarations as "name:value;" pairs sorted by
// hyphenated name. Values are normalized with NormalizeValue and properties
// without a CSS value are dropped. The result always ends with ';' unless
// no property survives, in which case it is empty.
func Serialize(decls Declarations) string {
	props := make(map[string]string, len(decls))
	for _, name := range sortedKeys(decls) {
		cssName := Hyphenate(name)
		value, ok := NormalizeValue(cssName, decls[name])
		if !ok {
			continue
		}
		props[cssName] = value
	}

	var b strings.Builder
	for _, cssName := range sortedKeys(props) {
		b.WriteString(cssName)
		b.WriteByte(':')
		b.WriteString(props[cssName])
		b.WriteByte(';')
	}
	return b.String()
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
