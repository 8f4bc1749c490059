package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-printdoc/internal/config"
	"github.com/alnah/go-printdoc/internal/fileutil"
)

// outputExtension is the extension of rendered documents.
const outputExtension = "html"

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("document file must have .yaml, .yml or .json extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToRender represents a single document to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// isDocumentFile reports whether path has a document file extension.
func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// discoverFiles expands the inputs into documents to render. Files must
// have a document extension; directories are walked and keep their layout
// under outputDir.
func discoverFiles(inputs []string, outputDir string) ([]FileToRender, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var files []FileToRender
	for _, input := range inputs {
		found, err := discoverInput(input, outputDir)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func discoverInput(inputPath, outputDir string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !isDocumentFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath, err := fileutil.OutputPath(inputPath, outputDir, outputExtension)
		if err != nil {
			return nil, err
		}
		return []FileToRender{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isDocumentFile(path) {
			return nil
		}

		dir := outputDir
		if dir != "" {
			if rel, relErr := filepath.Rel(inputPath, filepath.Dir(path)); relErr == nil {
				dir = filepath.Join(outputDir, rel)
			}
		}

		outPath, err := fileutil.OutputPath(path, dir, outputExtension)
		if err != nil {
			return err
		}
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > config > GOMAXPROCS (set by automaxprocs).
func resolveWorkers(flagWorkers, cfgWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if cfgWorkers > 0 {
		return cfgWorkers
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > config.MaxWorkers {
		return config.MaxWorkers
	}
	return n
}
