package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewDirLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"directory", t.TempDir(), nil},
		{"empty path", "", ErrInvalidBasePath},
		{"missing directory", filepath.Join(t.TempDir(), "missing"), ErrInvalidBasePath},
		{"regular file", file, ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewDirLoader(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewDirLoader() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && loader == nil {
				t.Fatal("NewDirLoader() returned nil loader")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirLoader_Load - Styles and scripts from disk
// ---------------------------------------------------------------------------

func TestDirLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles/receipt.css", ".section { margin: 0; }")
	writeAsset(t, base, "scripts/preview.js", "function printdocCancelPrint(e) {}")
	if err := os.MkdirAll(filepath.Join(base, "styles", "broken.css"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		want    string
		wantErr error
	}{
		{"style", loader.LoadStyle, "receipt", ".section { margin: 0; }", nil},
		{"script", loader.LoadScript, PreviewScriptName, "function printdocCancelPrint(e) {}", nil},
		{"missing style", loader.LoadStyle, "label", "", ErrStyleNotFound},
		{"missing script", loader.LoadScript, "autoprint", "", ErrScriptNotFound},
		{"traversal name", loader.LoadStyle, "../receipt", "", ErrInvalidAssetName},
		{"extension in name", loader.LoadScript, "preview.js", "", ErrInvalidAssetName},
		{"directory in place of file", loader.LoadStyle, "broken", "", ErrAssetRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load(tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("load(%q) error = %v, want %v", tt.asset, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("load(%q) = %q, want %q", tt.asset, got, tt.want)
			}
		})
	}
}

func TestDirLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	writeAsset(t, outside, "secret.css", "secret")

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.css"), filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	got, err := loader.LoadStyle("evil")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle() error = %v, want ErrPathTraversal", err)
	}
	if got != "" {
		t.Errorf("LoadStyle() leaked %q", got)
	}
}

func TestDirLoader_SymlinkInside(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles/receipt.css", "receipt")
	if err := os.Symlink("receipt.css", filepath.Join(base, "styles", "alias.css")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	got, err := loader.LoadStyle("alias")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if got != "receipt" {
		t.Errorf("LoadStyle() = %q, want %q", got, "receipt")
	}
}
