package main

import (
	"fmt"
	"maps"
	"os"
	"strings"

	printdoc "github.com/alnah/go-printdoc"
	"github.com/alnah/go-printdoc/internal/config"
)

// Option keys whose zero value is meaningful in a document file.
const (
	optionPreview = "preview"
	optionSilent  = "silent"
)

// baseOptions builds the document options shared by every file in a run:
// defaults, then config, then flags.
func baseOptions(cfg config.DocumentConfig, flags *cliFlags, styleSheet string) printdoc.DocumentOptions {
	opts := printdoc.DefaultDocumentOptions()

	opts.StyleSheet = styleSheet
	if cfg.Title != "" {
		opts.Title = cfg.Title
	}
	if cfg.PrinterName != "" {
		opts.PrinterName = cfg.PrinterName
	}
	if cfg.Copies > 0 {
		opts.Copies = cfg.Copies
	}
	if cfg.PageSize != "" {
		opts.PageSize = cfg.PageSize
	}
	opts.Preview = cfg.Preview
	opts.HTMLAttributes = mergeAttributes(nil, cfg.HTMLAttributes)
	opts.BodyAttributes = mergeAttributes(nil, cfg.BodyAttributes)
	opts.ContainerAttributes = mergeAttributes(nil, cfg.ContainerAttributes)

	if flags.title != "" {
		opts.Title = flags.title
	}
	if flags.documentID != "" {
		opts.DocumentID = flags.documentID
	}
	if flags.preview {
		opts.Preview = true
	}

	return opts
}

// documentOptions overlays a document file's own options on base. The
// file's stylesheet is appended to the configured one; attribute maps are
// merged key by key. Flags given on the command line still win.
func documentOptions(base printdoc.DocumentOptions, doc *documentFile, flags *cliFlags) printdoc.DocumentOptions {
	opts := base
	opts.HTMLAttributes = mergeAttributes(nil, base.HTMLAttributes)
	opts.BodyAttributes = mergeAttributes(nil, base.BodyAttributes)
	opts.ContainerAttributes = mergeAttributes(nil, base.ContainerAttributes)

	if doc.Options == nil {
		return opts
	}
	own := doc.Options

	if strings.TrimSpace(own.StyleSheet) != "" {
		if opts.StyleSheet != "" {
			opts.StyleSheet += "\n" + own.StyleSheet
		} else {
			opts.StyleSheet = own.StyleSheet
		}
	}
	if own.Title != "" && flags.title == "" {
		opts.Title = own.Title
	}
	if own.DocumentID != "" && flags.documentID == "" {
		opts.DocumentID = own.DocumentID
	}
	if own.PrinterName != "" {
		opts.PrinterName = own.PrinterName
	}
	if own.Copies > 0 {
		opts.Copies = own.Copies
	}
	if own.PageSize != "" {
		opts.PageSize = own.PageSize
	}
	if doc.optionSet(optionPreview) && !flags.preview {
		opts.Preview = own.Preview
	}
	if doc.optionSet(optionSilent) {
		opts.Silent = own.Silent
	}

	opts.HTMLAttributes = mergeAttributes(opts.HTMLAttributes, own.HTMLAttributes)
	opts.BodyAttributes = mergeAttributes(opts.BodyAttributes, own.BodyAttributes)
	opts.ContainerAttributes = mergeAttributes(opts.ContainerAttributes, own.ContainerAttributes)

	return opts
}

// mergeAttributes returns a new map with src applied over dst.
// Returns nil when both are empty.
func mergeAttributes(dst, src map[string]any) map[string]any {
	if len(dst) == 0 && len(src) == 0 {
		return nil
	}
	merged := make(map[string]any, len(dst)+len(src))
	maps.Copy(merged, dst)
	maps.Copy(merged, src)
	return merged
}

// readStyleSheet reads the configured CSS file. An empty path means none.
func readStyleSheet(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided stylesheet
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadStyleSheet, err)
	}
	return string(data), nil
}
