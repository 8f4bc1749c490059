package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{name: "simple name", input: "receipt", wantErr: nil},
		{name: "name with hyphen", input: "kitchen-ticket", wantErr: nil},
		{name: "name with underscore", input: "kitchen_ticket", wantErr: nil},
		{name: "name with numbers", input: "label58mm", wantErr: nil},
		{name: "mixed case", input: "Preview", wantErr: nil},
		{name: "max length", input: strings.Repeat("a", MaxAssetNameLength), wantErr: nil},

		// Invalid names
		{name: "empty", input: "", wantErr: ErrInvalidAssetName},
		{name: "too long", input: strings.Repeat("a", MaxAssetNameLength+1), wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "styles/default", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: `styles\default`, wantErr: ErrInvalidAssetName},
		{name: "parent traversal", input: "../secret", wantErr: ErrInvalidAssetName},
		{name: "dot for extension", input: "default.css", wantErr: ErrInvalidAssetName},
		{name: "single dot", input: ".", wantErr: ErrInvalidAssetName},
		{name: "space", input: "my style", wantErr: ErrInvalidAssetName},
		{name: "tab", input: "my\tstyle", wantErr: ErrInvalidAssetName},
		{name: "null byte", input: "style\x00", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssetName_ErrorMessages(t *testing.T) {
	t.Parallel()

	t.Run("empty name says so", func(t *testing.T) {
		t.Parallel()

		err := ValidateAssetName("")
		if err == nil || !strings.Contains(err.Error(), "empty name") {
			t.Errorf("ValidateAssetName(\"\") = %v, want empty name error", err)
		}
	})

	t.Run("invalid name includes the name in message", func(t *testing.T) {
		t.Parallel()

		err := ValidateAssetName("../evil")
		if err == nil || !strings.Contains(err.Error(), `"../evil"`) {
			t.Errorf("ValidateAssetName(\"../evil\") = %v, want message naming the input", err)
		}
	})
}
