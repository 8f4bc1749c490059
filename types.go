package printdoc

import (
	"github.com/alnah/go-printdoc/internal/markup"
	"github.com/alnah/go-printdoc/internal/pipeline"
	"github.com/alnah/go-printdoc/internal/style"
)

// Line is one declarative unit of document content.
// See the package documentation for the fields each type reads.
type Line = pipeline.Line

// Kind is the resolved type of a Line.
type Kind = pipeline.Kind

// Line kinds.
const (
	KindText    = pipeline.KindText
	KindQRCode  = pipeline.KindQRCode
	KindBarCode = pipeline.KindBarCode
	KindImage   = pipeline.KindImage
	KindTable   = pipeline.KindTable
)

// DocumentOptions controls the document shell and the preview payload.
type DocumentOptions = pipeline.DocumentOptions

// ColumnCountError reports a table row whose cell count differs from the first row.
type ColumnCountError = pipeline.ColumnCountError

// Declarations is a merged style: camelCase property names to values.
type Declarations = style.Declarations

// Attribute is one element attribute.
type Attribute = markup.Attr

// Attributes is an ordered attribute list.
type Attributes = markup.Attrs

// ParseKind resolves a line type. Matching is case-insensitive and an empty
// type means text. Unknown types return ErrUnsupportedType.
func ParseKind(typ string) (Kind, error) {
	return pipeline.ParseKind(typ)
}

// DefaultDocumentOptions returns options with the "Print Preview" title,
// one copy, A4 and silent printing.
func DefaultDocumentOptions() DocumentOptions {
	return pipeline.DefaultDocumentOptions()
}
