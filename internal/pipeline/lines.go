package pipeline

import (
	"fmt"
	"strings"
)

// Kind is the resolved type of a content line.
type Kind int

const (
	KindText Kind = iota
	KindQRCode
	KindBarCode
	KindImage
	KindTable
)

var kindNames = [...]string{
	KindText:    "text",
	KindQRCode:  "qrCode",
	KindBarCode: "barCode",
	KindImage:   "image",
	KindTable:   "table",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a line type. Matching is case-insensitive and an empty
// type means text.
func ParseKind(typ string) (Kind, error) {
	switch t := strings.ToLower(strings.TrimSpace(typ)); t {
	case "", "text":
		return KindText, nil
	case "qrcode":
		return KindQRCode, nil
	case "barcode":
		return KindBarCode, nil
	case "image":
		return KindImage, nil
	case "table":
		return KindTable, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}
}

// Line is one declarative unit of document content.
//
// Which fields apply depends on Type. Style fields accept any style value
// understood by style.Merge: maps, declaration strings or lists of either.
type Line struct {
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	Value        any    `json:"value,omitempty" yaml:"value,omitempty"`
	Style        any    `json:"style,omitempty" yaml:"style,omitempty"`
	SectionStyle any    `json:"sectionStyle,omitempty" yaml:"sectionStyle,omitempty"`

	// text
	Raw      bool `json:"raw,omitempty" yaml:"raw,omitempty"`
	Markdown bool `json:"markdown,omitempty" yaml:"markdown,omitempty"`

	// qrCode, barCode, image
	Options    map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Width      any            `json:"width,omitempty" yaml:"width,omitempty"`
	Height     any            `json:"height,omitempty" yaml:"height,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Path       string         `json:"path,omitempty" yaml:"path,omitempty"`
	MimeType   string         `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	Src        string         `json:"src,omitempty" yaml:"src,omitempty"`

	// table
	Header           []any          `json:"header,omitempty" yaml:"header,omitempty"`
	Rows             [][]any        `json:"rows,omitempty" yaml:"rows,omitempty"`
	Footer           []any          `json:"footer,omitempty" yaml:"footer,omitempty"`
	TableStyle       any            `json:"tableStyle,omitempty" yaml:"tableStyle,omitempty"`
	HeaderStyle      any            `json:"headerStyle,omitempty" yaml:"headerStyle,omitempty"`
	BodyStyle        any            `json:"bodyStyle,omitempty" yaml:"bodyStyle,omitempty"`
	RowStyle         any            `json:"rowStyle,omitempty" yaml:"rowStyle,omitempty"`
	ColumnStyle      any            `json:"columnStyle,omitempty" yaml:"columnStyle,omitempty"`
	FooterStyle      any            `json:"footerStyle,omitempty" yaml:"footerStyle,omitempty"`
	TableAttributes  map[string]any `json:"tableAttributes,omitempty" yaml:"tableAttributes,omitempty"`
	HeaderAttributes map[string]any `json:"headerAttributes,omitempty" yaml:"headerAttributes,omitempty"`
	BodyAttributes   map[string]any `json:"bodyAttributes,omitempty" yaml:"bodyAttributes,omitempty"`
	RowAttributes    map[string]any `json:"rowAttributes,omitempty" yaml:"rowAttributes,omitempty"`
	ColumnAttributes map[string]any `json:"columnAttributes,omitempty" yaml:"columnAttributes,omitempty"`
	FooterAttributes map[string]any `json:"footerAttributes,omitempty" yaml:"footerAttributes,omitempty"`
}
