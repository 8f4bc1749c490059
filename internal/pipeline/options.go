package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-printdoc/internal/encode"
	"github.com/alnah/go-printdoc/internal/style"
)

// Encoder options arrive as loosely typed maps decoded from JSON or YAML.
// Values of the wrong type are ignored and the default is kept.

func optString(opts map[string]any, key string, def string) string {
	v, ok := opts[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func optInt(opts map[string]any, key string, def int) int {
	v, ok := opts[key]
	if !ok {
		return def
	}
	text, ok := style.Scalar(v)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) {
		return def
	}
	// Out-of-range values saturate so the encoders can reject them.
	return int(max(min(f, math.MaxInt32), math.MinInt32))
}

func optBool(opts map[string]any, key string, def bool) bool {
	switch v := opts[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func qrOptions(opts map[string]any) encode.QROptions {
	def := encode.DefaultQROptions()
	return encode.QROptions{
		Level:  optString(opts, "errorCorrectionLevel", def.Level),
		Scale:  optInt(opts, "scale", def.Scale),
		Margin: optInt(opts, "margin", def.Margin),
		Width:  optInt(opts, "width", 0),
	}
}

func barcodeOptions(opts map[string]any) encode.BarcodeOptions {
	def := encode.DefaultBarcodeOptions()
	return encode.BarcodeOptions{
		Format:       optString(opts, "format", def.Format),
		BarWidth:     optInt(opts, "width", def.BarWidth),
		Height:       optInt(opts, "height", def.Height),
		Margin:       optInt(opts, "margin", def.Margin),
		DisplayValue: optBool(opts, "displayValue", def.DisplayValue),
		FontSize:     optInt(opts, "fontSize", def.FontSize),
		TextMargin:   optInt(opts, "textMargin", def.TextMargin),
		Background:   optString(opts, "background", def.Background),
		LineColor:    optString(opts, "lineColor", def.LineColor),
	}
}

// valueText renders a line or cell value. Strings and numbers are kept,
// nil becomes empty.
func valueText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := style.Scalar(v); ok {
		return s
	}
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b)
	}
	return ""
}

// compiled returns a style field that dispatch has already compiled.
func compiled(v any) string {
	s, _ := v.(string)
	return s
}
