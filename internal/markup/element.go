// Package markup builds HTML elements from tag names, ordered attributes and bodies.
package markup

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-printdoc/internal/style"
)

// voidTags never receive a body or a closing tag.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "param": {}, "source": {}, "track": {}, "wbr": {},
}

// Attr is one element attribute. Value may be a string, a number or a bool.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered attribute list. Order is preserved in the output.
type Attrs []Attr

// Set assigns name, replacing an existing attribute in place or appending a
// new one. The receiver may be modified; use the returned slice.
func (a Attrs) Set(name string, value any) Attrs {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Name: name, Value: value})
}

// Merge applies a passthrough attribute map with Set semantics.
// Map keys are applied in sorted order so output is deterministic.
func (a Attrs) Merge(m map[string]any) Attrs {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		a = a.Set(k, m[k])
	}
	return a
}

// Get returns the value of the named attribute, or nil.
func (a Attrs) Get(name string) any {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value
		}
	}
	return nil
}

// FromMap builds an attribute list from a passthrough map.
func FromMap(m map[string]any) Attrs {
	return Attrs(nil).Merge(m)
}

// IsVoid reports whether tag is an HTML void element.
func IsVoid(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

// Element renders <tag attrs>body</tag>.
//
// Attributes with empty values (see style.IsEmptyValue) are omitted and
// double quotes in values are escaped. Void tags render only the opening
// tag, whatever body is given. Other tags always close; the body is written
// only when it is not blank. The body is written as-is: callers escape text.
func Element(tag string, attrs Attrs, body string) string {
	var b strings.Builder
	b.Grow(len(tag)*2 + len(body) + 16*len(attrs) + 5)

	b.WriteByte('<')
	b.WriteString(tag)
	for _, attr := range attrs {
		if style.IsEmptyValue(attr.Value) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(EscapeAttr(attrText(attr.Value)))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if IsVoid(tag) {
		return b.String()
	}

	if !style.IsEmptyString(body) {
		b.WriteString(body)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

// Section wraps the rendered content of one line in its section container.
func Section(content, sectionStyle string) string {
	return Element("div", Attrs{
		{Name: "class", Value: "section"},
		{Name: "style", Value: sectionStyle},
	}, content)
}

// EscapeAttr escapes double quotes for use inside a double-quoted attribute.
func EscapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

func attrText(v any) string {
	if s, ok := style.Scalar(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
