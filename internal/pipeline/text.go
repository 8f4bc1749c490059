package pipeline

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-printdoc/internal/markup"
)

// renderText renders a styled span, the raw value, or Markdown.
func (p *Pipeline) renderText(line *Line) (string, error) {
	value := valueText(line.Value)

	var content string
	switch {
	case line.Raw:
		content = value
	case line.Markdown:
		out, err := p.markdownHTML(value)
		if err != nil {
			return "", err
		}
		content = out
	default:
		content = markup.Element("span", markup.Attrs{
			{Name: "style", Value: compiled(line.Style)},
		}, html.EscapeString(value))
	}

	return markup.Section(content, compiled(line.SectionStyle)), nil
}

// markdownHTML converts Markdown to an HTML fragment. Raw HTML in the
// source is not passed through.
func (p *Pipeline) markdownHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdown, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
