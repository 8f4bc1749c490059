// Package yamlutil decodes YAML input behind a size limit. JSON documents
// are valid YAML and decode through the same path.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Default size limits.
const (
	DefaultMaxSize  = 1 << 20 // config files
	DocumentMaxSize = 8 << 20 // document files may inline data URIs
)

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrDecode         = errors.New("yamlutil: decode failed")
)

// Decoder decodes YAML or JSON into Go values.
type Decoder struct {
	// MaxSize caps the input in bytes. Zero means DefaultMaxSize.
	MaxSize int
	// Strict rejects fields that do not exist in the destination struct.
	Strict bool
}

// Decode unmarshals data into v. Syntax errors carry the offending line.
func (d Decoder) Decode(data []byte, v any) error {
	maxSize := d.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), maxSize)
	}
	if v == nil {
		return ErrNilDestination
	}

	var opts []yaml.DecodeOption
	if d.Strict {
		opts = append(opts, yaml.Strict())
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, yaml.FormatError(err, false, true))
	}
	return nil
}

// Unmarshal decodes data with the default size limit, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	return Decoder{}.Decode(data, v)
}

// UnmarshalStrict decodes data with the default size limit and rejects
// unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	return Decoder{Strict: true}.Decode(data, v)
}
