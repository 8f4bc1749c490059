package assets

import (
	"errors"
	"slices"
	"testing"
)

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		wantErr error
	}{
		{"default style", loader.LoadStyle, DefaultStyleName, nil},
		{"preview script", loader.LoadScript, PreviewScriptName, nil},
		{"missing style", loader.LoadStyle, "thermal-80mm", ErrStyleNotFound},
		{"missing script", loader.LoadScript, "autoprint", ErrScriptNotFound},
		{"traversal", loader.LoadStyle, "../default", ErrInvalidAssetName},
		{"extension", loader.LoadScript, "preview.js", ErrInvalidAssetName},
		{"script name as style", loader.LoadStyle, PreviewScriptName, ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load(tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("load(%q) error = %v, want %v", tt.asset, err, tt.wantErr)
			}
			if tt.wantErr == nil && got == "" {
				t.Errorf("load(%q) returned empty content", tt.asset)
			}
		})
	}
}

func TestEmbeddedNames(t *testing.T) {
	t.Parallel()

	styles := StyleNames()
	if !slices.Contains(styles, DefaultStyleName) {
		t.Errorf("StyleNames() = %v, want to contain %q", styles, DefaultStyleName)
	}
	if !slices.IsSorted(styles) {
		t.Errorf("StyleNames() = %v, want sorted", styles)
	}

	if scripts := embeddedNames(scriptKind); !slices.Contains(scripts, PreviewScriptName) {
		t.Errorf("embeddedNames(scripts) = %v, want to contain %q", scripts, PreviewScriptName)
	}
}
