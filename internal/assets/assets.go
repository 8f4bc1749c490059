package assets

import "path"

// Names of the assets every document uses.
const (
	DefaultStyleName  = "default"
	PreviewScriptName = "preview"
)

// assetKind describes where one family of assets lives and how a missing
// asset is reported.
type assetKind struct {
	dir      string
	ext      string
	notFound error
	load     func(AssetLoader, string) (string, error)
}

var (
	styleKind = assetKind{
		dir:      "styles",
		ext:      ".css",
		notFound: ErrStyleNotFound,
		load:     AssetLoader.LoadStyle,
	}
	scriptKind = assetKind{
		dir:      "scripts",
		ext:      ".js",
		notFound: ErrScriptNotFound,
		load:     AssetLoader.LoadScript,
	}
)

// file returns the slash-separated path of the named asset.
func (k assetKind) file(name string) string {
	return path.Join(k.dir, name+k.ext)
}
