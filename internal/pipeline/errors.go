package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors for line validation.
var (
	ErrUnsupportedType = errors.New("line type not supported")
	ErrMissingMIMEType = errors.New("must specify mimeType for an image path")
	ErrNoImageSource   = errors.New("no src or path for image")
	ErrTableRows       = errors.New("table rows must be a non-empty list")
	ErrColumnCount     = errors.New("table column count mismatch")
	ErrMarkdown        = errors.New("markdown conversion failed")
	ErrPreviewPayload  = errors.New("encoding preview payload failed")
	ErrInternal        = errors.New("internal error")
)

// ColumnCountError reports a table row whose cell count differs from the first row.
type ColumnCountError struct {
	Row      int // zero-based index into Rows
	Expected int
	Actual   int
}

func (e *ColumnCountError) Error() string {
	relation := "too few"
	if e.Actual > e.Expected {
		relation = "too many"
	}
	return fmt.Sprintf("table row #%d has %s columns: expected %d, found %d",
		e.Row, relation, e.Expected, e.Actual)
}

func (e *ColumnCountError) Unwrap() error {
	return ErrColumnCount
}
