package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
		excludes string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
			excludes: "create",
		},
		{
			name:     "with user path",
			paths:    []string{"foo.yaml", "/home/a/.config/go-printdoc/foo.yaml"},
			contains: "create /home/a/.config/go-printdoc/foo.yaml",
		},
		{
			name:     "local paths only",
			paths:    []string{"foo.yaml", "foo.yml"},
			contains: "--config",
			excludes: "create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("hint should not contain %q, got %q", tt.excludes, hint)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{"empty available", []string{}, ""},
		{"with styles", []string{"default", "receipt"}, "\n  hint: available: default, receipt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ForStyleNotFound(tt.available); got != tt.want {
				t.Errorf("ForStyleNotFound() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHintContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hint     string
		contains []string
	}{
		{"output directory", ForOutputDirectory(), []string{"parent directory"}},
		{"document format", ForDocumentFormat(), []string{"lines", "options"}},
		{"unsupported type", ForUnsupportedType(), []string{"qrCode", "barCode", "table"}},
		{"image source", ForImageSource(), []string{"mimeType", "src", "; "}},
		{"column count", ForColumnCount(), []string{"first row"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, want := range tt.contains {
				if !strings.Contains(tt.hint, want) {
					t.Errorf("hint %q should contain %q", tt.hint, want)
				}
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForConfigNotFound(nil),
		ForOutputDirectory(),
		ForDocumentFormat(),
		ForUnsupportedType(),
		ForImageSource(),
		ForColumnCount(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
