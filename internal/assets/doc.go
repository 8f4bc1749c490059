// Package assets provides the baseline stylesheet and the preview script
// embedded in generated documents.
//
// Three loaders implement AssetLoader:
//
//	EmbeddedLoader  files compiled into the binary (styles/, scripts/)
//	DirLoader       the same layout in a directory on disk
//	AssetResolver   an ordered stack of loaders
//
// NewAssetResolver stacks a DirLoader over the embedded files, so a
// deployment can restyle documents or replace the preview behavior
// without rebuilding. Only a missing asset falls through to the next
// layer; invalid names and read errors are returned as is.
//
// Layout of a custom directory:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css    # default.css is the baseline
//	└── scripts/
//	    └── {name}.js     # preview.js drives the preview buttons
//
// Asset names are plain identifiers (see ValidateAssetName). DirLoader
// reads through os.Root and reports symlinks that leave the directory as
// ErrPathTraversal.
package assets
