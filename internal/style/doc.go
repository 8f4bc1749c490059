// Package style compiles CSS-like style declarations into canonical inline CSS.
//
// Styles arrive in mixed shapes: property maps keyed by camelCase names,
// free-form declaration strings ("width: 10px; color: red") and ordered
// lists of either, nested arbitrarily. The package merges them left to right
// (last writer wins per property), normalizes numeric values to millimetres
// and serializes the result sorted by hyphenated property name:
//
//	style.Compile(map[string]any{"width": 10}, "color: red", []any{"lineHeight: 1"})
//	// "color:red;line-height:1;width:10mm;"
//
// Malformed declaration fragments are dropped silently; compilation never fails.
package style
