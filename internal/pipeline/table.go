package pipeline

import (
	"html"
	"strings"

	"github.com/alnah/go-printdoc/internal/markup"
	"github.com/alnah/go-printdoc/internal/style"
)

// tableStyles holds the six compiled style scopes of a table line.
type tableStyles struct {
	table, header, body, row, column, footer string
}

func compileTableStyles(line *Line) tableStyles {
	return tableStyles{
		table:  style.Compile(line.TableStyle),
		header: style.Compile(line.HeaderStyle),
		body:   style.Compile(line.BodyStyle),
		row:    style.Compile(line.RowStyle),
		column: style.Compile(line.ColumnStyle),
		footer: style.Compile(line.FooterStyle),
	}
}

// renderTable renders an optional header, the body rows and an optional
// footer. Every body row must have as many cells as the first one.
func (p *Pipeline) renderTable(line *Line) (string, error) {
	if len(line.Rows) == 0 {
		return "", ErrTableRows
	}

	styles := compileTableStyles(line)

	body, err := tableBody(line, styles)
	if err != nil {
		return "", err
	}

	var parts strings.Builder
	if len(line.Header) > 0 {
		parts.WriteString(markup.Element("thead",
			scoped(styles.header, line.HeaderAttributes),
			tableRow(line.Header, "th", line, styles)))
	}
	parts.WriteString(body)
	if len(line.Footer) > 0 {
		parts.WriteString(markup.Element("tfoot",
			scoped(styles.footer, line.FooterAttributes),
			tableRow(line.Footer, "th", line, styles)))
	}

	table := markup.Element("table", scoped(styles.table, line.TableAttributes), parts.String())
	return markup.Section(table, compiled(line.SectionStyle)), nil
}

func tableBody(line *Line, styles tableStyles) (string, error) {
	var rows strings.Builder
	columns := len(line.Rows[0])

	for i, cells := range line.Rows {
		if len(cells) != columns {
			return "", &ColumnCountError{Row: i, Expected: columns, Actual: len(cells)}
		}
		rows.WriteString(tableRow(cells, "td", line, styles))
	}

	return markup.Element("tbody", scoped(styles.body, line.BodyAttributes), rows.String()), nil
}

func tableRow(cells []any, cellTag string, line *Line, styles tableStyles) string {
	var b strings.Builder
	for _, cell := range cells {
		b.WriteString(markup.Element(cellTag,
			scoped(styles.column, line.ColumnAttributes),
			html.EscapeString(valueText(cell))))
	}
	return markup.Element("tr", scoped(styles.row, line.RowAttributes), b.String())
}

// scoped builds the attributes of a table part: its compiled style, then
// passthrough attributes.
func scoped(css string, attrs map[string]any) markup.Attrs {
	return markup.Attrs{{Name: "style", Value: css}}.Merge(attrs)
}
