package style

import "strings"

// Declarations maps camelCase property names to scalar values
// (strings or numbers). It is the merged form of any style input.
type Declarations map[string]any

// ParseDeclarations parses a free-form declaration string.
//
// Statements are separated by semicolons and line breaks. Each statement is
// split on its first colon; name and value are trimmed, the name is converted
// to camelCase and the value is stored verbatim (units are not normalized
// here). Blank statements and statements without a colon or name are skipped.
func ParseDeclarations(s string) Declarations {
	decls := Declarations{}

	for _, stmt := range splitStatements(s) {
		if IsEmptyString(stmt) {
			continue
		}

		name, value, ok := strings.Cut(stmt, ":")
		if !ok {
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		decls[Camelize(name)] = strings.TrimSpace(value)
	}

	return decls
}

// splitStatements tokenizes a declaration string on statement separators.
func splitStatements(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})
}
