package assets

import (
	"errors"
	"fmt"
)

// AssetResolver asks its loaders in order. A missing asset moves on to the
// next loader; any other error ends the lookup.
type AssetResolver struct {
	loaders []AssetLoader
}

// NewAssetResolver layers a DirLoader for customBasePath over the embedded
// assets. An empty customBasePath yields the embedded assets alone.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	if customBasePath == "" {
		return Layered(NewEmbeddedLoader()), nil
	}

	dir, err := NewDirLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	return Layered(dir, NewEmbeddedLoader()), nil
}

// Layered returns a resolver over loaders, highest priority first.
func Layered(loaders ...AssetLoader) *AssetResolver {
	return &AssetResolver{loaders: loaders}
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.lookup(styleKind, name)
}

func (r *AssetResolver) LoadScript(name string) (string, error) {
	return r.lookup(scriptKind, name)
}

func (r *AssetResolver) lookup(k assetKind, name string) (string, error) {
	notFound := fmt.Errorf("%w: %q", k.notFound, name)
	for _, loader := range r.loaders {
		content, err := k.load(loader, name)
		if err == nil {
			return content, nil
		}
		if !isNotFoundError(err) {
			return "", err
		}
		notFound = err
	}
	return "", notFound
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrScriptNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
