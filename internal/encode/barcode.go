package encode

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/code93"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Bar code symbologies.
const (
	FormatUPC     = "UPC"
	FormatEAN13   = "EAN13"
	FormatEAN8    = "EAN8"
	FormatCode128 = "CODE128"
	FormatCode39  = "CODE39"
	FormatCode93  = "CODE93"
	FormatCodabar = "CODABAR"
	FormatITF     = "ITF"
)

// BarcodeOptions configures bar code drawing. Sizes are in SVG user units.
type BarcodeOptions struct {
	Format       string
	BarWidth     int // width of one module
	Height       int // bar height
	Margin       int
	DisplayValue bool // print the encoded text under the bars
	FontSize     int
	TextMargin   int
	Background   string
	LineColor    string
}

// DefaultBarcodeOptions returns a UPC symbol with human-readable text.
func DefaultBarcodeOptions() BarcodeOptions {
	return BarcodeOptions{
		Format:       FormatUPC,
		BarWidth:     2,
		Height:       100,
		Margin:       10,
		DisplayValue: true,
		FontSize:     20,
		TextMargin:   2,
		Background:   "#ffffff",
		LineColor:    "#000000",
	}
}

func (o BarcodeOptions) validate() error {
	switch {
	case o.BarWidth <= 0:
		return fmt.Errorf("%w: bar width %d must be positive", ErrInvalidOption, o.BarWidth)
	case o.Height <= 0:
		return fmt.Errorf("%w: height %d must be positive", ErrInvalidOption, o.Height)
	case o.Margin < 0:
		return fmt.Errorf("%w: margin %d is negative", ErrInvalidOption, o.Margin)
	case o.DisplayValue && o.FontSize <= 0:
		return fmt.Errorf("%w: font size %d must be positive", ErrInvalidOption, o.FontSize)
	case o.DisplayValue && o.TextMargin < 0:
		return fmt.Errorf("%w: text margin %d is negative", ErrInvalidOption, o.TextMargin)
	}
	return nil
}

// BarcodeSVG encodes content in the configured symbology and returns SVG markup.
// Encoder errors are returned unchanged.
func BarcodeSVG(content string, opts BarcodeOptions) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}

	if err := opts.validate(); err != nil {
		return "", err
	}

	code, text, err := encodeLinear(content, opts.Format)
	if err != nil {
		return "", err
	}

	return drawBars(readModules(code), text, opts)
}

// BarcodeDataURI encodes content as an SVG bar code data URI.
func BarcodeDataURI(ctx context.Context, content string, opts BarcodeOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	svg, err := BarcodeSVG(content, opts)
	if err != nil {
		return "", err
	}
	return DataURI("image/svg+xml", []byte(svg)), nil
}

// encodeLinear returns the symbol and the text to print under it.
func encodeLinear(content, format string) (barcode.Barcode, string, error) {
	var (
		code barcode.Barcode
		err  error
	)

	f := normalizeFormat(format)
	if err := checkLength(f, content); err != nil {
		return nil, "", err
	}

	switch f {
	case FormatUPC:
		// UPC-A is EAN-13 with a leading zero.
		code, err = ean.Encode("0" + content)
		if err != nil {
			return nil, "", err
		}
		return code, strings.TrimPrefix(code.Content(), "0"), nil
	case FormatEAN13, FormatEAN8:
		code, err = ean.Encode(content)
	case FormatCode128:
		code, err = code128.Encode(content)
	case FormatCode39:
		code, err = code39.Encode(content, false, true)
	case FormatCode93:
		code, err = code93.Encode(content, true, true)
	case FormatCodabar:
		code, err = codabar.Encode(content)
	case FormatITF:
		code, err = twooffive.Encode(content, true)
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, "", err
	}
	return code, content, nil
}

// fixedLengths lists the accepted digit counts, without and with the check
// digit. ean.Encode picks EAN-8 or EAN-13 from the length alone.
var fixedLengths = map[string][2]int{
	FormatUPC:   {11, 12},
	FormatEAN13: {12, 13},
	FormatEAN8:  {7, 8},
}

func checkLength(format, content string) error {
	lengths, ok := fixedLengths[format]
	if !ok {
		return nil
	}
	if n := len(content); n != lengths[0] && n != lengths[1] {
		return fmt.Errorf("%w: %s takes %d or %d digits, got %d",
			ErrInvalidLength, format, lengths[0], lengths[1], n)
	}
	return nil
}

func normalizeFormat(format string) string {
	f := strings.ToUpper(strings.TrimSpace(format))
	f = strings.ReplaceAll(f, "-", "")
	switch f {
	case "", "UPCA":
		return FormatUPC
	case "EAN":
		return FormatEAN13
	case "ITF14":
		return FormatITF
	}
	return f
}

// readModules samples a linear symbol: true for a dark module.
func readModules(code barcode.Barcode) []bool {
	bounds := code.Bounds()
	modules := make([]bool, bounds.Dx())
	for x := range modules {
		r, g, b, _ := code.At(bounds.Min.X+x, bounds.Min.Y).RGBA()
		modules[x] = r == 0 && g == 0 && b == 0
	}
	return modules
}

// barRun is a sequence of adjacent dark modules.
type barRun struct {
	start, length int
}

func runs(modules []bool) []barRun {
	var out []barRun
	for i := 0; i < len(modules); i++ {
		if !modules[i] {
			continue
		}
		start := i
		for i+1 < len(modules) && modules[i+1] {
			i++
		}
		out = append(out, barRun{start: start, length: i - start + 1})
	}
	return out
}

func drawBars(modules []bool, text string, opts BarcodeOptions) (string, error) {
	barsWidth := len(modules) * opts.BarWidth
	width := barsWidth + 2*opts.Margin
	height := opts.Height + 2*opts.Margin
	if opts.DisplayValue {
		height += opts.FontSize + opts.TextMargin
	}

	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNamespace)
	svg.CreateAttr("version", "1.1")
	svg.CreateAttr("width", strconv.Itoa(width))
	svg.CreateAttr("height", strconv.Itoa(height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))

	bg := svg.CreateElement("rect")
	bg.CreateAttr("x", "0")
	bg.CreateAttr("y", "0")
	bg.CreateAttr("width", strconv.Itoa(width))
	bg.CreateAttr("height", strconv.Itoa(height))
	bg.CreateAttr("style", "fill:"+opts.Background+";")

	g := svg.CreateElement("g")
	g.CreateAttr("transform", fmt.Sprintf("translate(%d, %d)", opts.Margin, opts.Margin))
	g.CreateAttr("style", "fill:"+opts.LineColor+";")

	for _, run := range runs(modules) {
		bar := g.CreateElement("rect")
		bar.CreateAttr("x", strconv.Itoa(run.start*opts.BarWidth))
		bar.CreateAttr("y", "0")
		bar.CreateAttr("width", strconv.Itoa(run.length*opts.BarWidth))
		bar.CreateAttr("height", strconv.Itoa(opts.Height))
	}

	if opts.DisplayValue {
		label := g.CreateElement("text")
		label.CreateAttr("x", strconv.Itoa(barsWidth/2))
		label.CreateAttr("y", strconv.Itoa(opts.Height+opts.TextMargin+opts.FontSize))
		label.CreateAttr("text-anchor", "middle")
		label.CreateAttr("style", fmt.Sprintf("font:%dpx monospace;", opts.FontSize))
		label.SetText(text)
	}

	return doc.WriteToString()
}
