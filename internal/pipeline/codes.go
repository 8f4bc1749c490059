package pipeline

import (
	"context"

	"github.com/alnah/go-printdoc/internal/encode"
	"github.com/alnah/go-printdoc/internal/markup"
)

func (p *Pipeline) renderQRCode(ctx context.Context, line *Line) (string, error) {
	src, err := encode.QRCodeDataURI(ctx, valueText(line.Value), qrOptions(line.Options))
	if err != nil {
		return "", err
	}
	return imageSection(line, src), nil
}

func (p *Pipeline) renderBarCode(ctx context.Context, line *Line) (string, error) {
	src, err := encode.BarcodeDataURI(ctx, valueText(line.Value), barcodeOptions(line.Options))
	if err != nil {
		return "", err
	}
	return imageSection(line, src), nil
}

// imageSection renders an img element inside the line section. Passthrough
// attributes override style, width and height; src always wins.
func imageSection(line *Line, src string) string {
	attrs := markup.Attrs{
		{Name: "style", Value: compiled(line.Style)},
		{Name: "width", Value: line.Width},
		{Name: "height", Value: line.Height},
	}
	attrs = attrs.Merge(line.Attributes).Set("src", src)

	return markup.Section(markup.Element("img", attrs, ""), compiled(line.SectionStyle))
}
