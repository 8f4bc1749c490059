package main

import (
	"errors"
	"os"

	printdoc "github.com/alnah/go-printdoc"
	"github.com/alnah/go-printdoc/internal/assets"
	"github.com/alnah/go-printdoc/internal/config"
	"github.com/alnah/go-printdoc/internal/encode"
	"github.com/alnah/go-printdoc/internal/hints"
)

// Exit codes for printdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All documents rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or document content
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrDocumentFormat) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, printdoc.ErrStyleNotFound) ||
		errors.Is(err, printdoc.ErrScriptNotFound) ||
		errors.Is(err, printdoc.ErrInvalidAssetPath) ||
		errors.Is(err, printdoc.ErrUnsupportedType) ||
		errors.Is(err, printdoc.ErrMissingMIMEType) ||
		errors.Is(err, printdoc.ErrNoImageSource) ||
		errors.Is(err, printdoc.ErrTableRows) ||
		errors.Is(err, printdoc.ErrColumnCount) ||
		errors.Is(err, encode.ErrEmptyContent) ||
		errors.Is(err, encode.ErrInvalidLevel) ||
		errors.Is(err, encode.ErrUnsupportedFormat) ||
		errors.Is(err, encode.ErrInvalidLength) ||
		errors.Is(err, encode.ErrInvalidOption) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, ErrReadStyleSheet) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	return ExitGeneral
}

// withHint appends an actionable hint to the error message when one applies.
func withHint(err error) string {
	msg := err.Error()

	// Per-document failures were already reported with their hints.
	var be *batchError
	if errors.As(err, &be) {
		return msg
	}

	switch {
	case errors.Is(err, printdoc.ErrStyleNotFound):
		return msg + hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, ErrDocumentFormat):
		return msg + hints.ForDocumentFormat()
	case errors.Is(err, printdoc.ErrUnsupportedType):
		return msg + hints.ForUnsupportedType()
	case errors.Is(err, printdoc.ErrMissingMIMEType), errors.Is(err, printdoc.ErrNoImageSource):
		return msg + hints.ForImageSource()
	case errors.Is(err, printdoc.ErrColumnCount):
		return msg + hints.ForColumnCount()
	case errors.Is(err, ErrCreateOutputDir):
		return msg + hints.ForOutputDirectory()
	}
	return msg
}
