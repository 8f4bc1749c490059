package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	printdoc "github.com/alnah/go-printdoc"
	"github.com/alnah/go-printdoc/internal/fileutil"
	"github.com/alnah/go-printdoc/internal/yamlutil"
)

// Sentinel errors for document files.
var (
	ErrReadDocument   = errors.New("failed to read document file")
	ErrDocumentFormat = errors.New("invalid document file")
)

// documentFile is the mapping form of a document file.
type documentFile struct {
	Lines   []*printdoc.Line          `yaml:"lines"`
	Options *printdoc.DocumentOptions `yaml:"options"`

	// optionKeys records which options the file sets explicitly.
	optionKeys map[string]bool
}

// optionSet reports whether the file sets the named option.
func (d *documentFile) optionSet(key string) bool {
	return d.optionKeys[key]
}

// loadDocument reads a YAML or JSON document file. The file is either a
// list of lines or a mapping with "lines" and optional "options". Relative
// image paths are resolved against the file's directory.
func loadDocument(path string) (*documentFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	resolveImagePaths(doc.Lines, filepath.Dir(path))
	return doc, nil
}

// parseDocument decodes document content in either accepted shape.
// Unknown line fields are ignored.
func parseDocument(data []byte) (*documentFile, error) {
	dec := yamlutil.Decoder{MaxSize: yamlutil.DocumentMaxSize}

	var decoded any
	if err := dec.Decode(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentFormat, err)
	}

	doc := &documentFile{}
	switch top := decoded.(type) {
	case []any:
		if err := dec.Decode(data, &doc.Lines); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentFormat, err)
		}
	case map[string]any:
		if _, ok := top["lines"]; !ok {
			return nil, fmt.Errorf("%w: missing \"lines\"", ErrDocumentFormat)
		}
		if err := dec.Decode(data, doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentFormat, err)
		}
		if opts, ok := top["options"].(map[string]any); ok {
			doc.optionKeys = make(map[string]bool, len(opts))
			for key := range opts {
				doc.optionKeys[key] = true
			}
		}
	default:
		return nil, fmt.Errorf("%w: top level must be a list or a mapping, got %T", ErrDocumentFormat, decoded)
	}

	return doc, nil
}

// resolveImagePaths makes relative image paths absolute with respect to
// baseDir so documents can be rendered from any working directory.
func resolveImagePaths(lines []*printdoc.Line, baseDir string) {
	for _, line := range lines {
		if line == nil || line.Path == "" {
			continue
		}
		line.Path = fileutil.ResolvePath(baseDir, line.Path)
	}
}
