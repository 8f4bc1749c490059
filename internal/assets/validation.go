package assets

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxAssetNameLength bounds asset names taken from configuration.
const MaxAssetNameLength = 64

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty, too long, or contains
// path separators, dots (which could allow extension manipulation),
// whitespace or control characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, MaxAssetNameLength)
	}
	if strings.ContainsAny(name, "/\\.") || strings.ContainsFunc(name, isUnsafeRune) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func isUnsafeRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
