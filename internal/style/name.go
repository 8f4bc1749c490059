package style

import "strings"

// Hyphenate converts a camelCase property name to its CSS form.
// Every capital letter becomes a hyphen followed by its lowercase form:
// "alignItems" -> "align-items", "WebkitBoxShadow" -> "-webkit-box-shadow".
func Hyphenate(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// Camelize converts a hyphenated CSS property name to camelCase.
// Surrounding whitespace is trimmed; each "-x" with x in a-z becomes "X".
func Camelize(name string) string {
	name = strings.TrimSpace(name)

	var b strings.Builder
	b.Grow(len(name))

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' && i+1 < len(name) && isLowerASCII(name[i+1]) {
			b.WriteByte(name[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}

// canonicalName maps any spelling of a property to its camelCase form,
// so "font-size" and "fontSize" address the same declaration.
func canonicalName(name string) string {
	return Camelize(Hyphenate(name))
}

func isLowerASCII(c byte) bool {
	return c >= 'a' && c <= 'z'
}
