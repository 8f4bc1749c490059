// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteFileAtomic writes content to a temporary file next to path and
// renames it into place, so readers never see a partial document.
func WriteFileAtomic(path, content string) (err error) {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".printdoc-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("renaming temp file: %w", renameErr)
	}
	return nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// OutputPath returns the path of the file rendered from input: the input
// base name with extension replaced, in outDir or beside the input when
// outDir is empty.
func OutputPath(input, outDir, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}

	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "." + extension

	if outDir == "" {
		return filepath.Join(filepath.Dir(input), name), nil
	}
	return filepath.Join(outDir, name), nil
}

// ResolvePath joins a relative path to baseDir. Absolute paths and an
// empty baseDir leave path unchanged.
func ResolvePath(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "receipt" -> false (name)
//   - "./receipt.yaml" -> true (relative path)
//   - "/etc/printdoc/shop.yaml" -> true (absolute)
//   - "C:\printdoc\shop.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
