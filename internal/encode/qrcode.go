package encode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/boombuler/barcode/qr"
	"github.com/disintegration/imaging"
)

// QR code defaults.
const (
	DefaultQRLevel  = "H"
	DefaultQRScale  = 5
	DefaultQRMargin = 4 // quiet zone, in modules

	// MaxQRSide bounds the rendered image side, in pixels.
	MaxQRSide = 4096
)

// QROptions configures QR code rasterization.
type QROptions struct {
	Level  string // "L", "M", "Q", "H" or low/medium/quartile/high
	Scale  int    // pixels per module
	Margin int    // quiet zone width in modules
	Width  int    // overrides Scale when > 0: target image width in pixels
}

// DefaultQROptions returns the highest correction level at scale 5.
func DefaultQROptions() QROptions {
	return QROptions{
		Level:  DefaultQRLevel,
		Scale:  DefaultQRScale,
		Margin: DefaultQRMargin,
	}
}

// QRCodePNG encodes content as a QR code and returns PNG bytes.
// Encoder errors are returned unchanged.
func QRCodePNG(ctx context.Context, content string, opts QROptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	code, err := qr.Encode(content, level, qr.Auto)
	if err != nil {
		return nil, err
	}

	img, err := rasterizeQR(code, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// QRCodeDataURI encodes content as a QR code PNG data URI.
func QRCodeDataURI(ctx context.Context, content string, opts QROptions) (string, error) {
	data, err := QRCodePNG(ctx, content, opts)
	if err != nil {
		return "", err
	}
	return DataURI("image/png", data), nil
}

// rasterizeQR scales a one-pixel-per-module symbol and surrounds it with
// a white quiet zone. The image side may not exceed MaxQRSide.
func rasterizeQR(code image.Image, opts QROptions) (*image.NRGBA, error) {
	modules := code.Bounds().Dx()

	if opts.Scale < 0 || opts.Scale > MaxQRSide {
		return nil, fmt.Errorf("%w: scale %d", ErrInvalidOption, opts.Scale)
	}
	if opts.Width < 0 || opts.Width > MaxQRSide {
		return nil, fmt.Errorf("%w: width %d (maximum %d)", ErrInvalidOption, opts.Width, MaxQRSide)
	}
	if opts.Margin > MaxQRSide {
		return nil, fmt.Errorf("%w: margin %d", ErrInvalidOption, opts.Margin)
	}

	margin := max(opts.Margin, 0)
	scale := opts.Scale
	if opts.Width > 0 {
		scale = opts.Width / (modules + 2*margin)
	}
	scale = max(scale, 1)

	side := (modules + 2*margin) * scale
	if side > MaxQRSide {
		return nil, fmt.Errorf("%w: image side %dpx exceeds %dpx", ErrInvalidOption, side, MaxQRSide)
	}

	symbol := imaging.Resize(code, modules*scale, modules*scale, imaging.NearestNeighbor)
	canvas := imaging.New(side, side, color.White)
	return imaging.Paste(canvas, symbol, image.Pt(margin*scale, margin*scale)), nil
}

func parseLevel(level string) (qr.ErrorCorrectionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qr.L, nil
	case "m", "medium":
		return qr.M, nil
	case "q", "quartile":
		return qr.Q, nil
	case "", "h", "high":
		return qr.H, nil
	}
	return qr.H, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}
