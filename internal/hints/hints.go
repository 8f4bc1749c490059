// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-printdoc") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForDocumentFormat returns hints for document files that do not decode.
func ForDocumentFormat() string {
	return format("a document is a list of lines, or a mapping with \"lines\" and optional \"options\"")
}

// ForUnsupportedType returns hints for unknown line types.
func ForUnsupportedType() string {
	return format("supported types: text, qrCode, barCode, image, table")
}

// ForImageSource returns hints for image lines without a usable source.
func ForImageSource() string {
	return formatHints([]string{
		"set \"path\" with \"mimeType\" (e.g. image/png) to embed a file",
		"or set \"src\" to reference a URL",
	})
}

// ForColumnCount returns hints for ragged tables.
func ForColumnCount() string {
	return format("every body row needs as many cells as the first row")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
