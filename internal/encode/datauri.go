package encode

import (
	"encoding/base64"

	"github.com/h2non/filetype"
)

// DataURI returns data as a base64 "data:" URI with the given MIME type.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// SniffMIME guesses the MIME type of binary content from its magic bytes.
// Returns "" when the type is not recognized (text formats such as SVG
// are never recognized).
func SniffMIME(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
