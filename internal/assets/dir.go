package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirLoader serves assets from a directory laid out like the embedded
// tree. Reads go through os.Root, so neither names nor symlinks can leave
// the directory.
type DirLoader struct {
	base string
}

// NewDirLoader checks that basePath is a readable directory.
// Returns ErrInvalidBasePath otherwise.
func NewDirLoader(basePath string) (*DirLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	defer func() { _ = root.Close() }()

	if _, err := fs.ReadDir(root.FS(), "."); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &DirLoader{base: abs}, nil
}

// LoadStyle reads {base}/styles/{name}.css.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	return d.load(styleKind, name)
}

// LoadScript reads {base}/scripts/{name}.js.
func (d *DirLoader) LoadScript(name string) (string, error) {
	return d.load(scriptKind, name)
}

func (d *DirLoader) load(k assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(d.base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()

	rel := filepath.FromSlash(k.file(name))
	content, err := root.ReadFile(rel)
	switch {
	case err == nil:
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", k.notFound, name)
	case d.escapes(root, rel):
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, rel)
	default:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}

// escapes reports whether rel resolves on disk but not inside root, which
// is how a symlink pointing out of the directory shows up.
func (d *DirLoader) escapes(root *os.Root, rel string) bool {
	if _, err := root.Stat(rel); err == nil {
		return false
	}
	_, err := os.Stat(filepath.Join(d.base, rel))
	return err == nil
}

// Compile-time interface check.
var _ AssetLoader = (*DirLoader)(nil)
