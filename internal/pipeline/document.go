package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-printdoc/internal/markup"
	"github.com/alnah/go-printdoc/internal/style"
)

// Document defaults.
const (
	DefaultTitle    = "Print Preview"
	DefaultCopies   = 1
	DefaultPageSize = "A4"
)

// Names shared with the preview script.
const (
	documentIDVar   = "PRINTDOC_DOCUMENT_ID"
	previewDataVar  = "PRINTDOC_DATA"
	previewOptsVar  = "PRINTDOC_OPTIONS"
	previewClass    = "preview"
	controlsClass   = "print-preview-print-button-container"
	cancelHandler   = "printdocCancelPrint(event)"
	printHandler    = "printdocPrintDocument(event)"
	containerID     = "container"
	defaultLanguage = "en"
)

// DocumentOptions controls the document shell.
//
// PrinterName, Copies, PageSize and Silent are not used for rendering: they
// travel in the preview payload so the preview page can replay the print.
type DocumentOptions struct {
	StyleSheet          string         `json:"styleSheet,omitempty" yaml:"styleSheet,omitempty"`
	HTMLAttributes      map[string]any `json:"htmlAttributes,omitempty" yaml:"htmlAttributes,omitempty"`
	BodyAttributes      map[string]any `json:"bodyAttributes,omitempty" yaml:"bodyAttributes,omitempty"`
	ContainerAttributes map[string]any `json:"containerAttributes,omitempty" yaml:"containerAttributes,omitempty"`
	DocumentID          string         `json:"documentID,omitempty" yaml:"documentID,omitempty"`
	Preview             bool           `json:"preview" yaml:"preview"`
	Title               string         `json:"title,omitempty" yaml:"title,omitempty"`
	PrinterName         string         `json:"printerName,omitempty" yaml:"printerName,omitempty"`
	Copies              int            `json:"copies,omitempty" yaml:"copies,omitempty"`
	PageSize            string         `json:"pageSize,omitempty" yaml:"pageSize,omitempty"`
	Silent              bool           `json:"silent" yaml:"silent"`
}

// DefaultDocumentOptions returns options with the default title and print settings.
func DefaultDocumentOptions() DocumentOptions {
	return DocumentOptions{
		Title:    DefaultTitle,
		Copies:   DefaultCopies,
		PageSize: DefaultPageSize,
		Silent:   true,
	}
}

// GenerateDocument renders lines and wraps them in a complete HTML document.
// opts is read only; the preview payload carries lines and opts as given.
func (p *Pipeline) GenerateDocument(ctx context.Context, lines []*Line, opts DocumentOptions) (string, error) {
	content, err := p.RenderLines(ctx, lines)
	if err != nil {
		return "", err
	}

	if !style.IsEmptyString(opts.StyleSheet) {
		p.lintStyleSheet(opts.StyleSheet)
	}

	var controls string
	if opts.Preview {
		controls, err = p.previewControls(lines, opts)
		if err != nil {
			return "", err
		}
	}

	head, err := p.head(opts)
	if err != nil {
		return "", err
	}

	bodyAttrs := markup.FromMap(opts.BodyAttributes)
	if opts.Preview {
		bodyAttrs = bodyAttrs.Set("class", previewClass)
	}
	container := markup.Element("div",
		markup.FromMap(opts.ContainerAttributes).Set("id", containerID),
		content)
	body := markup.Element("body", bodyAttrs, controls+container)

	htmlAttrs := markup.Attrs{{Name: "lang", Value: defaultLanguage}}.Merge(opts.HTMLAttributes)
	document := markup.Element("html", htmlAttrs, head+body)

	return "<!DOCTYPE html>\n" + document + "\n", nil
}

func (p *Pipeline) head(opts DocumentOptions) (string, error) {
	title := opts.Title
	if style.IsEmptyString(title) {
		title = DefaultTitle
	}

	id, err := json.Marshal(opts.DocumentID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewPayload, err)
	}

	var b strings.Builder
	b.WriteString(markup.Element("meta", markup.Attrs{{Name: "charset", Value: "UTF-8"}}, ""))
	b.WriteString(markup.Element("title", nil, html.EscapeString(title)))
	b.WriteString(markup.Element("style", nil, escapeClosingTags(p.baseStyleSheet)))
	if !style.IsEmptyString(opts.StyleSheet) {
		b.WriteString(markup.Element("style", nil, escapeClosingTags(opts.StyleSheet)))
	}
	b.WriteString(markup.Element("script", nil, "var "+documentIDVar+"="+string(id)+";"))

	return markup.Element("head", nil, b.String()), nil
}

// previewControls renders the Cancel and Print buttons and the script that
// carries the lines and options for client-side replay.
func (p *Pipeline) previewControls(lines []*Line, opts DocumentOptions) (string, error) {
	data, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("%w: lines: %v", ErrPreviewPayload, err)
	}
	options, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("%w: options: %v", ErrPreviewPayload, err)
	}

	script := "var " + previewDataVar + "=" + string(data) + ";" +
		"var " + previewOptsVar + "=" + string(options) + ";" +
		escapeClosingTags(p.previewScript)

	buttons := markup.Element("button", markup.Attrs{{Name: "onclick", Value: cancelHandler}}, "Cancel") +
		markup.Element("button", markup.Attrs{{Name: "onclick", Value: printHandler}}, "Print") +
		markup.Element("script", nil, script)

	return markup.Element("div", markup.Attrs{{Name: "class", Value: controlsClass}}, buttons), nil
}

// escapeClosingTags keeps embedded style and script text from closing its
// element early.
func escapeClosingTags(s string) string {
	return strings.ReplaceAll(s, "</", `<\/`)
}
