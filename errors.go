package printdoc

import (
	"errors"

	"github.com/alnah/go-printdoc/internal/encode"
	"github.com/alnah/go-printdoc/internal/pipeline"
)

// Sentinel errors for line validation and document assembly.
var (
	ErrUnsupportedType = pipeline.ErrUnsupportedType
	ErrMissingMIMEType = pipeline.ErrMissingMIMEType
	ErrNoImageSource   = pipeline.ErrNoImageSource
	ErrTableRows       = pipeline.ErrTableRows
	ErrColumnCount     = pipeline.ErrColumnCount
	ErrMarkdown        = pipeline.ErrMarkdown
	ErrPreviewPayload  = pipeline.ErrPreviewPayload
)

// Encoder errors for QR and bar code lines.
var (
	ErrInvalidEncoderOption = encode.ErrInvalidOption
	ErrBarcodeLength        = encode.ErrInvalidLength
)

// Asset loading errors.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrScriptNotFound   = errors.New("script not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// ErrInternal reports a panic recovered while rendering, including one in
// a concurrently rendered line.
var ErrInternal = pipeline.ErrInternal
