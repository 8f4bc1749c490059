package encode

import "errors"

// Sentinel errors for encoding.
var (
	// ErrEmptyContent indicates there is no value to encode.
	ErrEmptyContent = errors.New("no value to encode")

	// ErrInvalidLevel indicates an unknown QR error correction level.
	ErrInvalidLevel = errors.New("invalid error correction level")

	// ErrUnsupportedFormat indicates an unknown bar code symbology.
	ErrUnsupportedFormat = errors.New("unsupported bar code format")

	// ErrInvalidLength indicates a value whose digit count does not fit the
	// fixed-length symbology requested.
	ErrInvalidLength = errors.New("value length does not match bar code format")

	// ErrInvalidOption indicates a size option out of range.
	ErrInvalidOption = errors.New("invalid encoder option")
)
