package printdoc

import (
	"github.com/alnah/go-printdoc/internal/markup"
	"github.com/alnah/go-printdoc/internal/style"
)

// CompileStyles merges style inputs and serializes them as CSS text:
// hyphenated names sorted ascending, each as "name:value;". Numbers become
// millimetres except for line-height. Empty input gives "".
func CompileStyles(inputs ...any) string {
	return style.Compile(inputs...)
}

// MergeStyles merges style inputs left to right; later values win.
// Inputs may be maps, declaration strings or lists of either, nested freely.
func MergeStyles(inputs ...any) Declarations {
	return style.Merge(inputs...)
}

// ParseStyleDeclarations parses "name: value; name2: value2" text.
// Statements without a colon are skipped.
func ParseStyleDeclarations(s string) Declarations {
	return style.ParseDeclarations(s)
}

// RenderElement renders <tag attrs>body</tag>. Empty attribute values are
// omitted and void tags such as img never get a body or closing tag.
func RenderElement(tag string, attrs Attributes, body string) string {
	return markup.Element(tag, attrs, body)
}
